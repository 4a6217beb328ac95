package controllers

import (
	"bukubekas/dto"
	"bukubekas/models"
	"bukubekas/response"
	"bukubekas/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WishlistController struct {
	db    *gorm.DB
	promo *services.PromoService
}

func NewWishlistController(db *gorm.DB, promo *services.PromoService) *WishlistController {
	return &WishlistController{db: db, promo: promo}
}

func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var items []models.Wishlist
	if err := ctrl.db.Preload("Book").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	// tampilkan harga promo yang berlaku di wishlist juga
	responses := make([]dto.WishlistItemResponse, 0, len(items))
	for i := range items {
		book, err := toBookResponse(&items[i].Book, ctrl.promo)
		if err != nil {
			response.ServerError(c)
			return
		}
		responses = append(responses, dto.WishlistItemResponse{
			ID:   items[i].ID,
			Book: book,
		})
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

func (ctrl *WishlistController) AddWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.AddWishlistRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	var book models.Book
	if err := ctrl.db.First(&book, request.BookID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var existing models.Wishlist
	if err := ctrl.db.Where("user_id = ? AND book_id = ?", userID, request.BookID).
		First(&existing).Error; err == nil {
		response.Conflict(c, "Buku sudah ada di wishlist")
		return
	}

	item := models.Wishlist{UserID: userID, BookID: request.BookID}
	if err := ctrl.db.Create(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, item)
}

func (ctrl *WishlistController) DeleteWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	result := ctrl.db.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&models.Wishlist{})
	respondDelete(c, result)
}

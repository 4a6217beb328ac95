package controllers

import (
	"bukubekas/config"
	"bukubekas/dto"
	"bukubekas/models"
	"bukubekas/response"

	"github.com/gin-gonic/gin"
)

func GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var items []models.CartItem
	if err := config.DB.Preload("Book").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, items, len(items))
}

func AddCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}
	if request.Quantity <= 0 {
		request.Quantity = 1
	}

	var book models.Book
	if err := config.DB.First(&book, request.BookID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if book.Stock < request.Quantity {
		response.BadRequest(c, "Stok buku tidak mencukupi")
		return
	}

	// buku yang sama ditambah quantity-nya, bukan jadi baris baru
	var item models.CartItem
	err := config.DB.Where("user_id = ? AND book_id = ?", userID, request.BookID).First(&item).Error
	if err == nil {
		item.Quantity += request.Quantity
		if err := config.DB.Save(&item).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, item)
		return
	}

	item = models.CartItem{
		UserID:   userID,
		BookID:   request.BookID,
		Quantity: request.Quantity,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, item)
}

func DeleteCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	itemID := c.Param("id")
	result := config.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}, itemID)
	respondDelete(c, result)
}

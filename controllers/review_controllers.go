package controllers

import (
	"bukubekas/dto"
	"bukubekas/models"
	"bukubekas/response"
	"bukubekas/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

func (ctrl *ReviewController) GetBookReviews(c *gin.Context) {
	bookID := c.Param("id")

	var reviews []models.Review
	if err := ctrl.db.Preload("User").
		Where("book_id = ?", bookID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, dto.ReviewResponse{
			ID:        review.ID,
			UserName:  review.User.Name,
			Star:      review.Star,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}
	if err := validator.ValidateReview(&request); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var book models.Book
	if err := ctrl.db.First(&book, request.BookID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// satu user satu ulasan per buku
	var existing models.Review
	if err := ctrl.db.Where("user_id = ? AND book_id = ?", userID, request.BookID).
		First(&existing).Error; err == nil {
		response.Conflict(c, "Kamu sudah memberi ulasan untuk buku ini")
		return
	}

	review := models.Review{
		UserID:  userID,
		BookID:  request.BookID,
		Star:    request.Star,
		Comment: request.Comment,
	}
	if err := ctrl.db.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, review)
}

package controllers

import (
	"bukubekas/constants"
	"bukubekas/dto"
	"bukubekas/models"
	"bukubekas/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TestimonialController struct {
	db *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{db: db}
}

// GetTestimonials hanya menampilkan testimoni yang sudah disetujui admin
func (ctrl *TestimonialController) GetTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := ctrl.db.Preload("User").
		Where("status = ?", constants.TestimonialStatusApproved).
		Order("created_at desc").
		Find(&testimonials).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		responses = append(responses, dto.TestimonialResponse{
			ID:        t.ID,
			UserName:  t.User.Name,
			Content:   t.Content,
			CreatedAt: t.CreatedAt,
		})
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

func (ctrl *TestimonialController) GetAllTestimonials(c *gin.Context) {
	page, limit := parsePagination(c)

	var total int64
	if err := ctrl.db.Model(&models.Testimonial{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var testimonials []models.Testimonial
	if err := ctrl.db.Preload("User").
		Order("created_at desc").
		Offset(page * limit).Limit(limit).
		Find(&testimonials).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, testimonials, page, limit, int(total))
}

func (ctrl *TestimonialController) CreateTestimonial(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	testimonial := models.Testimonial{
		UserID:  userID,
		Content: request.Content,
		Status:  constants.TestimonialStatusPending,
	}
	if err := ctrl.db.Create(&testimonial).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, testimonial)
}

func (ctrl *TestimonialController) ChangeTestimonialStatus(c *gin.Context) {
	var request dto.ChangeTestimonialStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	var testimonial models.Testimonial
	if err := ctrl.db.First(&testimonial, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	testimonial.Status = request.Status
	if err := testimonial.ValidateStatus(); err != nil {
		response.BadRequest(c, "Status testimoni tidak valid")
		return
	}

	if err := ctrl.db.Model(&testimonial).Update("status", request.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, testimonial)
}

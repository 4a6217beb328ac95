package controllers

import (
	"strconv"

	"bukubekas/config"
	"bukubekas/dto"
	"bukubekas/response"
	"bukubekas/services"
	"bukubekas/validator"

	"github.com/gin-gonic/gin"
)

type PromotionController struct {
	service *services.PromoService
}

func NewPromotionController(service *services.PromoService) *PromotionController {
	return &PromotionController{service: service}
}

// GetPromotions listing promo untuk admin. Sweep promo kedaluwarsa
// selalu jalan dulu di dalam service.
func (ctrl *PromotionController) GetPromotions(c *gin.Context) {
	promos, err := ctrl.service.GetPromotions()
	if err != nil {
		respondAppError(c, err)
		return
	}

	nameFilter := c.Query("name")
	if nameFilter != "" {
		filtered := make([]dto.PromotionResponse, 0, len(promos))
		for _, p := range promos {
			if containsFold(p.Name, nameFilter) {
				filtered = append(filtered, p)
			}
		}
		promos = filtered
	}

	page, limit := parsePagination(c)
	total := len(promos)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	response.SuccessWithPagination(c, promos[start:end], page, limit, total)
}

func (ctrl *PromotionController) GetPromotionDetail(c *gin.Context) {
	promoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID promo tidak valid")
		return
	}

	promo, err := ctrl.service.GetPromotionDetail(uint(promoID))
	if err != nil {
		respondAppError(c, err)
		return
	}
	response.Success(c, promo)
}

func (ctrl *PromotionController) CreatePromotion(c *gin.Context) {
	var request dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	if err := validator.ValidateCreatePromotion(&request); err != nil {
		respondAppError(c, err)
		return
	}

	promo, err := ctrl.service.Create(request)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookCache()

	response.Success(c, promo)
}

func (ctrl *PromotionController) UpdatePromotion(c *gin.Context) {
	var request dto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	if err := validator.ValidateUpdatePromotion(&request); err != nil {
		respondAppError(c, err)
		return
	}

	promo, err := ctrl.service.Update(request)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookCache()

	response.Success(c, promo)
}

func (ctrl *PromotionController) DeletePromotion(c *gin.Context) {
	promoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID promo tidak valid")
		return
	}

	if err := ctrl.service.Delete(uint(promoID)); err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookCache()

	response.Success(c, nil)
}

// GetBookPrice endpoint resolusi harga: harga dasar plus promo yang
// sedang berlaku (null kalau tidak ada).
func (ctrl *PromotionController) GetBookPrice(c *gin.Context) {
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID buku tidak valid")
		return
	}

	book, promo, err := ctrl.service.ResolveBookPrice(uint(bookID))
	if err != nil {
		respondAppError(c, err)
		return
	}

	resp := dto.BookPriceResponse{
		BookID:    book.ID,
		BasePrice: book.Price,
	}
	if promo != nil {
		resp.Promo = &dto.PromoInfo{
			Name:            promo.Name,
			Percent:         promo.Percent,
			DiscountedPrice: promo.DiscountedPrice,
		}
	}

	response.Success(c, resp)
}

// invalidateBookCache buang cache etalase setelah mutasi promo karena
// harga tampil ikut berubah
func invalidateBookCache() {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, bookCacheKey)
}

package dto

import "time"

// PromotionBookInput pasangan buku dan persen diskon pada request promo
type PromotionBookInput struct {
	BookID   uint `json:"bookId" validate:"required"`
	Discount int  `json:"discount" validate:"required"`
}

// CreatePromotionRequest request pembuatan promo baru
type CreatePromotionRequest struct {
	Name      string               `json:"name" validate:"required"`
	StartDate string               `json:"startDate" validate:"required"`
	StartTime string               `json:"startTime" validate:"required"`
	EndDate   string               `json:"endDate" validate:"required"`
	EndTime   string               `json:"endTime"`
	Image     string               `json:"image" validate:"required"`
	Books     []PromotionBookInput `json:"books" validate:"required,min=1"`
}

// UpdatePromotionRequest request update promo; daftar buku mengganti
// seluruh daftar lama
type UpdatePromotionRequest struct {
	ID        uint                 `json:"id" validate:"required"`
	Name      string               `json:"name" validate:"required"`
	StartDate string               `json:"startDate" validate:"required"`
	StartTime string               `json:"startTime" validate:"required"`
	EndDate   string               `json:"endDate" validate:"required"`
	EndTime   string               `json:"endTime"`
	Image     string               `json:"image" validate:"required"`
	Books     []PromotionBookInput `json:"books" validate:"required,min=1"`
}

// PromotionBookResponse buku di dalam response promo
type PromotionBookResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Discount int    `json:"discount"`
}

// PromotionResponse response promo untuk admin
type PromotionResponse struct {
	ID        uint                    `json:"id"`
	Name      string                  `json:"name"`
	StartDate string                  `json:"startDate"`
	StartTime string                  `json:"startTime"`
	EndDate   string                  `json:"endDate"`
	EndTime   string                  `json:"endTime,omitempty"`
	Image     string                  `json:"image"`
	CreatedAt time.Time               `json:"createdAt"`
	Books     []PromotionBookResponse `json:"books"`
}

package dto

import "time"

// CreateReviewRequest request ulasan buku
type CreateReviewRequest struct {
	BookID  uint   `json:"bookId" binding:"required"`
	Star    int    `json:"star" binding:"required"`
	Comment string `json:"comment"`
}

// ReviewResponse ulasan untuk halaman detail buku
type ReviewResponse struct {
	ID        uint      `json:"id"`
	UserName  string    `json:"userName"`
	Star      int       `json:"star"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTestimonialRequest request testimoni pelanggan
type CreateTestimonialRequest struct {
	Content string `json:"content" binding:"required"`
}

// ChangeTestimonialStatusRequest request moderasi testimoni oleh admin
type ChangeTestimonialStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// TestimonialResponse testimoni yang sudah disetujui
type TestimonialResponse struct {
	ID        uint      `json:"id"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

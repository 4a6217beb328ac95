package dto

import "time"

// CreateBookRequest request pembuatan buku oleh admin
type CreateBookRequest struct {
	Title      string   `json:"title" validate:"required"`
	Author     string   `json:"author" validate:"required"`
	Publisher  string   `json:"publisher"`
	Stock      int      `json:"stock"`
	Condition  string   `json:"condition" validate:"required"`
	Price      int      `json:"price" validate:"required"`
	Weight     int      `json:"weight"`
	Categories []string `json:"categories"`
	Photo      string   `json:"photo"`
}

// UpdateBookRequest request update buku; field kosong tidak diubah
type UpdateBookRequest struct {
	ID         uint     `json:"id" validate:"required"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Publisher  string   `json:"publisher"`
	Stock      *int     `json:"stock"`
	Condition  string   `json:"condition"`
	Price      *int     `json:"price"`
	Weight     *int     `json:"weight"`
	Categories []string `json:"categories"`
	Photo      string   `json:"photo"`
}

// PromoInfo potongan promo yang sedang berlaku untuk sebuah buku
type PromoInfo struct {
	Name            string `json:"name"`
	Percent         int    `json:"percent"`
	DiscountedPrice int    `json:"discountedPrice"`
}

// BookResponse buku untuk etalase, sudah termasuk hasil resolusi promo
type BookResponse struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	Publisher  string     `json:"publisher"`
	Stock      int        `json:"stock"`
	Condition  string     `json:"condition"`
	Price      int        `json:"price"`
	Weight     int        `json:"weight"`
	Categories []string   `json:"categories"`
	Photo      string     `json:"photo"`
	CreatedAt  time.Time  `json:"createdAt"`
	Promo      *PromoInfo `json:"promo"`
}

// BookPriceResponse response endpoint resolusi harga
type BookPriceResponse struct {
	BookID    uint       `json:"bookId"`
	BasePrice int        `json:"basePrice"`
	Promo     *PromoInfo `json:"promo"`
}

// ScoredBook hasil pencarian fuzzy dengan skor kecocokan
type ScoredBook struct {
	Book  BookResponse `json:"book"`
	Score int          `json:"score"`
}

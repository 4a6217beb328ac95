package dto

import "time"

// CheckoutRequest request membuat order dari isi keranjang
type CheckoutRequest struct {
	RecipientName  string `json:"recipientName" validate:"required"`
	RecipientPhone string `json:"recipientPhone" validate:"required"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	Courier        string `json:"courier" validate:"required"`
}

// ChangeOrderStatusRequest request admin mengubah status order
type ChangeOrderStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// OrderItemResponse item dalam response order
type OrderItemResponse struct {
	BookID    uint   `json:"bookId"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	BasePrice int    `json:"basePrice"`
	Price     int    `json:"price"`
	PromoName string `json:"promoName,omitempty"`
}

// OrderResponse response order
type OrderResponse struct {
	ID             uint                `json:"id"`
	Status         int                 `json:"status"`
	RecipientName  string              `json:"recipientName"`
	RecipientPhone string              `json:"recipientPhone"`
	Address        string              `json:"address"`
	City           string              `json:"city"`
	Courier        string              `json:"courier"`
	ShippingCost   int                 `json:"shippingCost"`
	SubTotal       int                 `json:"subTotal"`
	Total          int                 `json:"total"`
	CreatedAt      time.Time           `json:"createdAt"`
	Items          []OrderItemResponse `json:"items"`
}

// AddCartItemRequest request menambah buku ke keranjang
type AddCartItemRequest struct {
	BookID   uint `json:"bookId" binding:"required"`
	Quantity int  `json:"quantity"`
}

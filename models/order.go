package models

import (
	"fmt"
	"time"

	"bukubekas/constants"
)

type Order struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	UserID         uint        `json:"userId"`
	User           User        `json:"user" gorm:"foreignKey:UserID"`
	Status         int         `json:"status" gorm:"default:0"`
	RecipientName  string      `json:"recipientName"`
	RecipientPhone string      `json:"recipientPhone"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	Courier        string      `json:"courier"`
	ShippingCost   int         `json:"shippingCost"`
	SubTotal       int         `json:"subTotal"` // total item setelah promo
	Total          int         `json:"total"`    // subTotal + ongkir
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	OrderID   uint   `json:"orderId" gorm:"index"`
	BookID    uint   `json:"bookId"`
	Quantity  int    `json:"quantity"`
	BasePrice int    `json:"basePrice"` // harga dasar saat checkout
	Price     int    `json:"price"`     // harga satuan setelah promo
	PromoName string `json:"promoName,omitempty"`
	Book      Book   `json:"book" gorm:"foreignKey:BookID"`
}

func (o *Order) ValidateStatus() error {
	if o.Status < constants.OrderStatusPending || o.Status > constants.OrderStatusCancelled {
		return fmt.Errorf("invalid status: %d, must be between 0 and 4", o.Status)
	}
	return nil
}

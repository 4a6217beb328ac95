package models

import "time"

type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	BookID    uint      `json:"bookId" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Book      Book      `json:"book" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

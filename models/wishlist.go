package models

import "time"

type Wishlist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	BookID    uint      `json:"bookId" gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Book      Book      `json:"book" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

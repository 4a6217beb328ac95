package models

import (
	"fmt"
	"time"

	"bukubekas/constants"

	"github.com/lib/pq"
)

type Book struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"userId"` // admin pemilik buku
	Title      string         `json:"title"`
	Author     string         `json:"author"`
	Publisher  string         `json:"publisher"`
	Stock      int            `json:"stock"`
	Condition  string         `json:"condition" gorm:"default:good"`
	Price      int            `json:"price"`  // harga dasar sebelum promo
	Weight     int            `json:"weight"` // gram, untuk ongkir
	Categories pq.StringArray `json:"categories" gorm:"type:text[]"`
	Photo      string         `json:"photo"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	User       User           `json:"user" gorm:"foreignKey:UserID"`
}

func (b *Book) ValidateCondition() error {
	switch b.Condition {
	case constants.BookConditionNew,
		constants.BookConditionGood,
		constants.BookConditionFair,
		constants.BookConditionDamaged,
		constants.BookConditionPoor:
		return nil
	}
	return fmt.Errorf("invalid condition: %s", b.Condition)
}

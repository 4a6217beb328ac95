package models

import "time"

// PromotionBook menghubungkan promo dengan buku beserta persen diskon
// per buku. Relasi dikelola eksplisit (bukan many2many gorm) supaya
// urutan detach-lalu-delete saat sweep bisa dikontrol.
type PromotionBook struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PromotionID uint      `json:"promotionId" gorm:"not null;index"`
	BookID      uint      `json:"bookId" gorm:"not null;index"`
	Discount    int       `json:"discount"` // persen 1-100
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Promotion Promotion `json:"promotion" gorm:"foreignKey:PromotionID"`
	Book      Book      `json:"book" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

package models

import (
	"time"
)

const (
	PromoDateLayout = "2006-01-02"
	PromoTimeLayout = "15:04"

	// EndTime kosong dianggap akhir hari
	promoEndOfDay = "23:59"
)

type Promotion struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	StartDate string    `json:"startDate"` // format 2006-01-02
	StartTime string    `json:"startTime"` // format 15:04
	EndDate   string    `json:"endDate"`
	EndTime   string    `json:"endTime"`
	Image     string    `json:"image"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Promotion) endTimeOrEOD() string {
	if p.EndTime == "" {
		return promoEndOfDay
	}
	return p.EndTime
}

// ActiveAt melaporkan apakah promo sedang berjalan pada waktu now.
// Perbandingan dipisah tanggal/jam: batas bawah inklusif, batas atas
// eksklusif. Promo dengan EndDate di masa depan aktif sepanjang hari
// tanpa melihat EndTime.
func (p *Promotion) ActiveAt(now time.Time) bool {
	today := now.Format(PromoDateLayout)
	clock := now.Format(PromoTimeLayout)

	startOK := p.StartDate < today || (p.StartDate == today && p.StartTime <= clock)
	endOK := p.EndDate > today || (p.EndDate == today && p.endTimeOrEOD() > clock)

	return startOK && endOK
}

// EndedBefore melaporkan apakah jendela promo sudah lewat seluruhnya
// (end < now). Dipakai sweep untuk menentukan promo kedaluwarsa; guard
// konflik memakai kebalikannya (end >= now berarti masih bisa bentrok).
func (p *Promotion) EndedBefore(now time.Time) bool {
	today := now.Format(PromoDateLayout)
	clock := now.Format(PromoTimeLayout)

	return p.EndDate < today || (p.EndDate == today && p.endTimeOrEOD() < clock)
}

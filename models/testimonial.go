package models

import (
	"fmt"
	"time"

	"bukubekas/constants"
)

type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId"`
	Content   string    `json:"content"`
	Status    int       `json:"status" gorm:"default:0"` // 0 pending, 1 approved, 2 rejected
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
}

func (t *Testimonial) ValidateStatus() error {
	if t.Status < constants.TestimonialStatusPending || t.Status > constants.TestimonialStatusRejected {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", t.Status)
	}
	return nil
}

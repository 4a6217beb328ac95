package dto

import "time"

// LoginInput request login dengan email atau nomor telepon
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RegisterInput request registrasi user baru
type RegisterInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
}

// ResendCodeInput request kirim ulang kode verifikasi
type ResendCodeInput struct {
	Email string `json:"email" binding:"required"`
}

// UserLoginResponse data user pada response login
type UserLoginResponse struct {
	UserID       uint      `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	UserVerified bool      `json:"userVerified"`
	UserPhone    string    `json:"userPhone"`
	UserRole     int       `json:"userRole"`
	UserAvatar   string    `json:"userAvatar"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

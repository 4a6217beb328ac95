package controllers

import (
	"strings"
	"time"

	"bukubekas/config"
	"bukubekas/dto"
	"bukubekas/models"
	"bukubekas/response"
	"bukubekas/services"
	"bukubekas/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email atau password salah")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email atau password salah")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UserAvatar:   user.Avatar,
		Address:      user.Address,
		City:         user.City,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	if err := validator.ValidateRegister(&input); err != nil {
		respondAppError(c, err)
		return
	}

	input.Email = strings.ToLower(input.Email)

	var existing models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Email, input.PhoneNumber).First(&existing).Error; err == nil {
		response.Conflict(c, "Email atau nomor telepon sudah terdaftar")
		return
	}

	hashed, err := services.HashPassword(input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	code, err := services.GenerateVerificationCode()
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:          input.Name,
		Email:         input.Email,
		Password:      hashed,
		PhoneNumber:   input.PhoneNumber,
		Address:       input.Address,
		City:          input.City,
		Code:          code,
		CodeCreatedAt: time.Now(),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	// registrasi tetap sukses walau email gagal terkirim, user bisa
	// minta kirim ulang
	if err := services.SendVerificationEmail(user.Email, code); err != nil {
		response.Success(c, gin.H{
			"userId":  user.ID,
			"warning": "Akun dibuat tapi email verifikasi gagal dikirim",
		})
		return
	}

	response.Success(c, gin.H{"userId": user.ID})
}

func VerifyEmail(c *gin.Context) {
	code := c.Query("token")
	if code == "" {
		response.BadRequest(c, "Kode verifikasi dibutuhkan")
		return
	}

	var user models.User
	if err := config.DB.Where("code = ?", code).First(&user).Error; err != nil {
		response.BadRequest(c, "Kode verifikasi tidak dikenal")
		return
	}

	// kode berlaku 5 menit
	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Kode verifikasi sudah kedaluwarsa. Silakan minta kode baru.")
		return
	}

	user.IsVerified = true
	user.Code = ""
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func ResendVerificationCode(c *gin.Context) {
	var input dto.ResendCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(input.Email)).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.IsVerified {
		response.BadRequest(c, "Akun sudah terverifikasi")
		return
	}

	code, err := services.GenerateVerificationCode()
	if err != nil {
		response.ServerError(c)
		return
	}

	user.Code = code
	user.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SendVerificationEmail(user.Email, code); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UserAvatar:   user.Avatar,
		Address:      user.Address,
		City:         user.City,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
}

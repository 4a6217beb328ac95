package validator

import (
	"regexp"
	"time"

	"bukubekas/constants"
	"bukubekas/dto"
	"bukubekas/errors"
	"bukubekas/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRegister validasi data registrasi user
func ValidateRegister(input *dto.RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Data registrasi tidak lengkap atau tidak valid", err)
	}

	if !isValidPhone(input.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Nomor telepon tidak valid", nil)
	}

	return nil
}

// ValidateBookPayload validasi data buku dari admin
func ValidateBookPayload(req *dto.CreateBookRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Data buku tidak lengkap atau tidak valid", err)
	}

	if req.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Harga buku harus lebih dari 0", nil)
	}

	if req.Stock < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Stok tidak boleh negatif", nil)
	}

	book := models.Book{Condition: req.Condition}
	if err := book.ValidateCondition(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidCondition,
			"Kondisi buku harus salah satu dari: new, good, fair, damaged, poor", err)
	}

	return nil
}

// ValidatePromotionPayload validasi bersama untuk create/update promo.
// Gambar wajib sudah ada sebelum promo ditulis (upload dilakukan caller
// lewat endpoint upload).
func ValidatePromotionPayload(name, startDate, startTime, endDate, endTime, image string, books []dto.PromotionBookInput) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nama promo tidak boleh kosong", nil)
	}
	if image == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Gambar promo wajib diunggah dulu", nil)
	}
	if len(books) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Promo harus punya minimal satu buku", nil)
	}

	start, err := parseDateTime(startDate, startTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat,
			"Format tanggal/jam mulai tidak valid (tanggal 2006-01-02, jam 15:04)", err)
	}

	if endTime == "" {
		endTime = "23:59"
	}
	end, err := parseDateTime(endDate, endTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat,
			"Format tanggal/jam berakhir tidak valid (tanggal 2006-01-02, jam 15:04)", err)
	}

	if !end.After(start) {
		return errors.NewAppError(errors.ErrCodeInvalidWindow, "Waktu berakhir harus setelah waktu mulai", nil)
	}

	seen := make(map[uint]bool, len(books))
	for _, b := range books {
		if b.BookID == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "ID buku tidak boleh kosong", nil)
		}
		if seen[b.BookID] {
			return errors.NewAppError(errors.ErrCodeValidation, "Ada buku yang muncul lebih dari sekali", nil)
		}
		seen[b.BookID] = true
		if b.Discount < 1 || b.Discount > 100 {
			return errors.NewAppError(errors.ErrCodeValidation, "Diskon harus di antara 1 sampai 100", nil)
		}
	}

	return nil
}

// ValidateCreatePromotion validasi request pembuatan promo
func ValidateCreatePromotion(req *dto.CreatePromotionRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Data promo tidak lengkap", err)
	}
	return ValidatePromotionPayload(req.Name, req.StartDate, req.StartTime, req.EndDate, req.EndTime, req.Image, req.Books)
}

// ValidateUpdatePromotion validasi request update promo
func ValidateUpdatePromotion(req *dto.UpdatePromotionRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Data promo tidak lengkap", err)
	}
	if req.ID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID promo tidak boleh kosong", nil)
	}
	return ValidatePromotionPayload(req.Name, req.StartDate, req.StartTime, req.EndDate, req.EndTime, req.Image, req.Books)
}

// ValidateReview validasi ulasan buku
func ValidateReview(req *dto.CreateReviewRequest) error {
	if req.BookID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID buku tidak boleh kosong", nil)
	}
	if req.Star < 1 || req.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Bintang harus di antara 1 sampai 5", nil)
	}
	return nil
}

func parseDateTime(date, clock string) (time.Time, error) {
	return time.Parse(models.PromoDateLayout+" "+models.PromoTimeLayout, date+" "+clock)
}

func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^08[0-9]{8,13}$`)
	return re.MatchString(phone)
}

func IsValidOrderStatus(status int) bool {
	return status >= constants.OrderStatusPending && status <= constants.OrderStatusCancelled
}

package validator

import (
	"testing"

	"bukubekas/dto"
	"bukubekas/errors"

	"github.com/stretchr/testify/assert"
)

func validPromoRequest() dto.CreatePromotionRequest {
	return dto.CreatePromotionRequest{
		Name:      "Promo Kemerdekaan",
		StartDate: "2025-08-10",
		StartTime: "08:00",
		EndDate:   "2025-08-17",
		EndTime:   "23:00",
		Image:     "https://res.cloudinary.com/demo/image/upload/promos/merdeka.png",
		Books: []dto.PromotionBookInput{
			{BookID: 1, Discount: 17},
			{BookID: 2, Discount: 45},
		},
	}
}

func TestValidateCreatePromotion(t *testing.T) {
	t.Run("request valid", func(t *testing.T) {
		req := validPromoRequest()
		assert.NoError(t, ValidateCreatePromotion(&req))
	})

	t.Run("tanpa gambar", func(t *testing.T) {
		req := validPromoRequest()
		req.Image = ""
		assert.Error(t, ValidateCreatePromotion(&req))
	})

	t.Run("tanpa buku", func(t *testing.T) {
		req := validPromoRequest()
		req.Books = nil
		assert.Error(t, ValidateCreatePromotion(&req))
	})

	t.Run("format tanggal salah", func(t *testing.T) {
		req := validPromoRequest()
		req.StartDate = "10-08-2025"
		err := ValidateCreatePromotion(&req)
		assert.Error(t, err)
		appErr := errors.GetAppError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeInvalidFormat, appErr.Code)
	})

	t.Run("format jam salah", func(t *testing.T) {
		req := validPromoRequest()
		req.EndTime = "25:00"
		assert.Error(t, ValidateCreatePromotion(&req))
	})

	t.Run("akhir tidak setelah mulai", func(t *testing.T) {
		req := validPromoRequest()
		req.EndDate = req.StartDate
		req.EndTime = req.StartTime
		err := ValidateCreatePromotion(&req)
		assert.Error(t, err)
		appErr := errors.GetAppError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeInvalidWindow, appErr.Code)
	})

	t.Run("EndTime kosong dianggap akhir hari", func(t *testing.T) {
		req := validPromoRequest()
		req.EndDate = req.StartDate
		req.EndTime = ""
		assert.NoError(t, ValidateCreatePromotion(&req))
	})

	t.Run("buku dobel", func(t *testing.T) {
		req := validPromoRequest()
		req.Books = append(req.Books, dto.PromotionBookInput{BookID: 1, Discount: 10})
		assert.Error(t, ValidateCreatePromotion(&req))
	})

	t.Run("diskon di luar rentang", func(t *testing.T) {
		req := validPromoRequest()
		req.Books[0].Discount = 0
		assert.Error(t, ValidateCreatePromotion(&req))

		req = validPromoRequest()
		req.Books[0].Discount = 101
		assert.Error(t, ValidateCreatePromotion(&req))
	})
}

func TestValidateUpdatePromotion(t *testing.T) {
	base := validPromoRequest()

	t.Run("request valid", func(t *testing.T) {
		req := dto.UpdatePromotionRequest{
			ID: 7, Name: base.Name,
			StartDate: base.StartDate, StartTime: base.StartTime,
			EndDate: base.EndDate, EndTime: base.EndTime,
			Image: base.Image, Books: base.Books,
		}
		assert.NoError(t, ValidateUpdatePromotion(&req))
	})

	t.Run("tanpa ID", func(t *testing.T) {
		req := dto.UpdatePromotionRequest{
			Name:      base.Name,
			StartDate: base.StartDate, StartTime: base.StartTime,
			EndDate: base.EndDate, EndTime: base.EndTime,
			Image: base.Image, Books: base.Books,
		}
		assert.Error(t, ValidateUpdatePromotion(&req))
	})
}

func TestValidateReview(t *testing.T) {
	assert.NoError(t, ValidateReview(&dto.CreateReviewRequest{BookID: 1, Star: 5}))
	assert.Error(t, ValidateReview(&dto.CreateReviewRequest{BookID: 0, Star: 5}))
	assert.Error(t, ValidateReview(&dto.CreateReviewRequest{BookID: 1, Star: 0}))
	assert.Error(t, ValidateReview(&dto.CreateReviewRequest{BookID: 1, Star: 6}))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, isValidPhone("081234567890"))
	assert.False(t, isValidPhone("62812345678"))
	assert.False(t, isValidPhone("0812"))
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(0))
	assert.True(t, IsValidOrderStatus(4))
	assert.False(t, IsValidOrderStatus(5))
	assert.False(t, IsValidOrderStatus(-1))
}

package services

import (
	"testing"
	"time"

	"bukubekas/dto"
	"bukubekas/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustTime(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDiscountedPrice(t *testing.T) {
	assert.Equal(t, 80000, DiscountedPrice(100000, 20))
	assert.Equal(t, 0, DiscountedPrice(100000, 100))
	assert.Equal(t, 100000, DiscountedPrice(100000, 0))

	// pembagian bulat membulatkan potongan ke bawah
	assert.Equal(t, 670, DiscountedPrice(999, 33))
	assert.Equal(t, 1, DiscountedPrice(1, 50))
}

func TestFirstActiveLink(t *testing.T) {
	now := mustTime("2025-01-15 12:00")

	expired := models.PromotionBook{
		PromotionID: 1,
		Discount:    30,
		Promotion: models.Promotion{
			ID: 1, StartDate: "2025-01-01", StartTime: "00:00",
			EndDate: "2025-01-10", EndTime: "23:59",
		},
	}
	active := models.PromotionBook{
		PromotionID: 2,
		Discount:    20,
		Promotion: models.Promotion{
			ID: 2, StartDate: "2025-01-12", StartTime: "00:00",
			EndDate: "2025-01-20", EndTime: "23:59",
		},
	}
	upcoming := models.PromotionBook{
		PromotionID: 3,
		Discount:    50,
		Promotion: models.Promotion{
			ID: 3, StartDate: "2025-02-01", StartTime: "00:00",
			EndDate: "2025-02-10", EndTime: "23:59",
		},
	}

	t.Run("lewati yang tidak aktif", func(t *testing.T) {
		link := firstActiveLink([]models.PromotionBook{expired, active, upcoming}, now)
		assert.NotNil(t, link)
		assert.Equal(t, uint(2), link.PromotionID)
	})

	t.Run("nil kalau tidak ada yang aktif", func(t *testing.T) {
		assert.Nil(t, firstActiveLink([]models.PromotionBook{expired, upcoming}, now))
		assert.Nil(t, firstActiveLink(nil, now))
	})

	t.Run("lebih dari satu aktif ambil yang pertama", func(t *testing.T) {
		other := active
		other.PromotionID = 9
		other.Promotion.ID = 9
		other.Discount = 5

		link := firstActiveLink([]models.PromotionBook{active, other}, now)
		assert.NotNil(t, link)
		assert.Equal(t, uint(2), link.PromotionID)
	})
}

func TestHasUnendedConflict(t *testing.T) {
	now := mustTime("2025-01-15 12:00")

	ended := models.PromotionBook{
		PromotionID: 1,
		Promotion: models.Promotion{
			ID: 1, StartDate: "2025-01-01", StartTime: "00:00",
			EndDate: "2025-01-10", EndTime: "23:59",
		},
	}
	running := models.PromotionBook{
		PromotionID: 2,
		Promotion: models.Promotion{
			ID: 2, StartDate: "2025-01-12", StartTime: "00:00",
			EndDate: "2025-01-20", EndTime: "23:59",
		},
	}
	upcoming := models.PromotionBook{
		PromotionID: 3,
		Promotion: models.Promotion{
			ID: 3, StartDate: "2025-02-01", StartTime: "00:00",
			EndDate: "2025-02-10", EndTime: "23:59",
		},
	}

	t.Run("promo lain masih jalan", func(t *testing.T) {
		assert.True(t, hasUnendedConflict([]models.PromotionBook{running}, 0, now))
	})

	t.Run("promo lain belum mulai tetap konflik", func(t *testing.T) {
		// sengaja kasar: yang dicek hanya promo lain belum berakhir,
		// bukan irisan jendela
		assert.True(t, hasUnendedConflict([]models.PromotionBook{upcoming}, 0, now))
	})

	t.Run("promo sudah berakhir tidak konflik", func(t *testing.T) {
		assert.False(t, hasUnendedConflict([]models.PromotionBook{ended}, 0, now))
	})

	t.Run("link milik promo sendiri dilewati saat update", func(t *testing.T) {
		assert.False(t, hasUnendedConflict([]models.PromotionBook{running}, 2, now))
		assert.True(t, hasUnendedConflict([]models.PromotionBook{running, upcoming}, 2, now))
	})

	t.Run("tanpa link tidak konflik", func(t *testing.T) {
		assert.False(t, hasUnendedConflict(nil, 0, now))
	})
}

type promoStoreMock struct {
	deleteLinksFn     func(promoID uint) error
	createLinksFn     func(links []models.PromotionBook) error
	deletePromotionFn func(promoID uint) error
	calls             []string
}

func (m *promoStoreMock) DeleteLinks(promoID uint) error {
	m.calls = append(m.calls, "deleteLinks")
	if m.deleteLinksFn != nil {
		return m.deleteLinksFn(promoID)
	}
	return nil
}

func (m *promoStoreMock) CreateLinks(links []models.PromotionBook) error {
	m.calls = append(m.calls, "createLinks")
	if m.createLinksFn != nil {
		return m.createLinksFn(links)
	}
	return nil
}

func (m *promoStoreMock) DeletePromotion(promoID uint) error {
	m.calls = append(m.calls, "deletePromotion")
	if m.deletePromotionFn != nil {
		return m.deletePromotionFn(promoID)
	}
	return nil
}

func TestReplacePromoLinks(t *testing.T) {
	t.Run("daftar lama diganti seluruhnya", func(t *testing.T) {
		var deletedPromo uint
		var created []models.PromotionBook
		mock := &promoStoreMock{
			deleteLinksFn: func(promoID uint) error {
				deletedPromo = promoID
				return nil
			},
			createLinksFn: func(links []models.PromotionBook) error {
				created = links
				return nil
			},
		}

		// promo 7 tadinya punya buku {1,2}; request baru {2,3}
		err := replacePromoLinks(mock, 7, []dto.PromotionBookInput{
			{BookID: 2, Discount: 10},
			{BookID: 3, Discount: 25},
		})
		assert.NoError(t, err)

		assert.Equal(t, uint(7), deletedPromo)
		assert.Equal(t, []models.PromotionBook{
			{PromotionID: 7, BookID: 2, Discount: 10},
			{PromotionID: 7, BookID: 3, Discount: 25},
		}, created)
		assert.Equal(t, []string{"deleteLinks", "createLinks"}, mock.calls)
	})

	t.Run("gagal hapus daftar lama tidak menulis daftar baru", func(t *testing.T) {
		mock := &promoStoreMock{
			deleteLinksFn: func(promoID uint) error {
				return assert.AnError
			},
		}

		err := replacePromoLinks(mock, 7, []dto.PromotionBookInput{{BookID: 2, Discount: 10}})
		assert.Error(t, err)
		assert.Equal(t, []string{"deleteLinks"}, mock.calls)
	})
}

func TestRemovePromo(t *testing.T) {
	t.Run("link dilepas dulu baru baris promo", func(t *testing.T) {
		mock := &promoStoreMock{}

		assert.NoError(t, removePromo(mock, 5))
		assert.Equal(t, []string{"deleteLinks", "deletePromotion"}, mock.calls)
	})

	t.Run("gagal lepas link tidak menghapus baris promo", func(t *testing.T) {
		mock := &promoStoreMock{
			deleteLinksFn: func(promoID uint) error {
				return assert.AnError
			},
		}

		assert.Error(t, removePromo(mock, 5))
		assert.Equal(t, []string{"deleteLinks"}, mock.calls)
	})
}

func TestExpiredPromos(t *testing.T) {
	now := mustTime("2025-01-15 12:00")

	ended := models.Promotion{ID: 1, StartDate: "2025-01-01", StartTime: "00:00", EndDate: "2025-01-10", EndTime: "23:59"}
	running := models.Promotion{ID: 2, StartDate: "2025-01-12", StartTime: "00:00", EndDate: "2025-01-20", EndTime: "23:59"}
	upcoming := models.Promotion{ID: 3, StartDate: "2025-02-01", StartTime: "00:00", EndDate: "2025-02-10", EndTime: "23:59"}

	expired := expiredPromos([]models.Promotion{ended, running, upcoming}, now)

	assert.Len(t, expired, 1)
	assert.Equal(t, uint(1), expired[0].ID)
}

func TestSortedUniqueBookIDs(t *testing.T) {
	assert.Equal(t, []uint{1, 3, 7}, sortedUniqueBookIDs([]uint{7, 3, 1, 3, 7}))
	assert.Equal(t, []uint{}, sortedUniqueBookIDs(nil))
}

func TestResolvePromoDBError(t *testing.T) {
	// koneksi ke alamat yang pasti gagal; query harus mengembalikan
	// error, bukan dianggap tanpa promo
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=x password=x dbname=x sslmode=disable"),
		&gorm.Config{DisableAutomaticPing: true})
	assert.NoError(t, err)

	svc := NewPromoService(PromoServiceOptions{DB: db})

	promo, err := svc.ResolvePromo(&models.Book{ID: 1, Price: 100000})
	assert.Error(t, err)
	assert.Nil(t, promo)
}

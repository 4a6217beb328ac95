package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(day string, clock string) time.Time {
	t, err := time.Parse(PromoDateLayout+" "+PromoTimeLayout, day+" "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPromotionActiveAt(t *testing.T) {
	promo := Promotion{
		Name:      "Promo Tahun Baru",
		StartDate: "2025-01-10",
		StartTime: "08:00",
		EndDate:   "2025-01-20",
		EndTime:   "17:00",
	}

	t.Run("di tengah jendela", func(t *testing.T) {
		assert.True(t, promo.ActiveAt(at("2025-01-15", "12:00")))
	})

	t.Run("sebelum mulai", func(t *testing.T) {
		assert.False(t, promo.ActiveAt(at("2025-01-09", "12:00")))
		assert.False(t, promo.ActiveAt(at("2025-01-10", "07:59")))
	})

	t.Run("batas mulai inklusif", func(t *testing.T) {
		assert.True(t, promo.ActiveAt(at("2025-01-10", "08:00")))
	})

	t.Run("batas akhir eksklusif", func(t *testing.T) {
		assert.True(t, promo.ActiveAt(at("2025-01-20", "16:59")))
		assert.False(t, promo.ActiveAt(at("2025-01-20", "17:00")))
	})

	t.Run("setelah berakhir", func(t *testing.T) {
		assert.False(t, promo.ActiveAt(at("2025-01-21", "00:00")))
	})

	t.Run("hari sebelum tanggal akhir aktif penuh tanpa lihat jam", func(t *testing.T) {
		assert.True(t, promo.ActiveAt(at("2025-01-19", "23:59")))
	})
}

func TestPromotionActiveAtEndTimeKosong(t *testing.T) {
	// EndTime kosong dianggap akhir hari
	promo := Promotion{
		StartDate: "2025-01-01",
		StartTime: "00:00",
		EndDate:   "2025-01-01",
		EndTime:   "",
	}

	assert.True(t, promo.ActiveAt(at("2025-01-01", "00:00")))
	assert.True(t, promo.ActiveAt(at("2025-01-01", "23:58")))
	assert.False(t, promo.ActiveAt(at("2025-01-01", "23:59")))
	assert.False(t, promo.ActiveAt(at("2025-01-02", "00:00")))
}

func TestPromotionEndedBefore(t *testing.T) {
	promo := Promotion{
		StartDate: "2025-01-10",
		StartTime: "08:00",
		EndDate:   "2025-01-20",
		EndTime:   "17:00",
	}

	t.Run("belum berakhir", func(t *testing.T) {
		assert.False(t, promo.EndedBefore(at("2025-01-15", "12:00")))
		assert.False(t, promo.EndedBefore(at("2025-01-20", "16:59")))
	})

	t.Run("tepat di waktu akhir belum dianggap lewat", func(t *testing.T) {
		// sweep hanya menghapus yang benar-benar sudah lewat (end < now)
		assert.False(t, promo.EndedBefore(at("2025-01-20", "17:00")))
	})

	t.Run("sudah lewat", func(t *testing.T) {
		assert.True(t, promo.EndedBefore(at("2025-01-20", "17:01")))
		assert.True(t, promo.EndedBefore(at("2025-01-21", "00:00")))
	})

	t.Run("EndTime kosong bertahan sampai akhir hari", func(t *testing.T) {
		eod := Promotion{StartDate: "2025-01-01", StartTime: "00:00", EndDate: "2025-01-20", EndTime: ""}
		assert.False(t, eod.EndedBefore(at("2025-01-20", "23:59")))
		assert.True(t, eod.EndedBefore(at("2025-01-21", "00:00")))
	})

	t.Run("promo belum mulai juga belum berakhir", func(t *testing.T) {
		// guard konflik menolak promo masa depan juga
		assert.False(t, promo.EndedBefore(at("2025-01-05", "12:00")))
	})
}

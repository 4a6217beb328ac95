package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// PromoSweeper pembersih promo kedaluwarsa
type PromoSweeper interface {
	SweepExpired() error
}

var promoSweeper PromoSweeper

// SetPromoSweeper pasang implementasi PromoSweeper untuk cron
func SetPromoSweeper(sweeper PromoSweeper) {
	promoSweeper = sweeper
}

// InitCronJobs daftarkan job terjadwal. Sweep promo juga jalan sebelum
// tiap listing promo; cron malam ini hanya jaring pengaman supaya promo
// kedaluwarsa tetap terhapus walau tidak ada yang membuka halaman admin.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		if promoSweeper == nil {
			log.Printf("PromoSweeper belum dipasang, sweep dilewati")
			return
		}
		if err := promoSweeper.SweepExpired(); err != nil {
			log.Printf("Gagal sweep promo kedaluwarsa: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs berhasil diinisialisasi")
	return nil
}

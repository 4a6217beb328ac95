package services

import "time"

// Clock sumber waktu aplikasi. Semua perhitungan jendela promo memakai
// waktu dari sini, bukan time.Now langsung, supaya bisa di-mock di test.
type Clock interface {
	Now() time.Time
}

type jakartaClock struct {
	loc *time.Location
}

// NewJakartaClock membuat Clock dengan zona waktu tetap Asia/Jakarta.
func NewJakartaClock() Clock {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.FixedZone("WIB", 7*60*60)
	}
	return &jakartaClock{loc: loc}
}

func (c *jakartaClock) Now() time.Time {
	return time.Now().In(c.loc)
}

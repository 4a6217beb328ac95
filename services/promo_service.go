package services

import (
	"context"
	"sort"
	"time"

	"bukubekas/dto"
	"bukubekas/errors"
	"bukubekas/models"
	"bukubekas/services/logger"

	"gorm.io/gorm"
)

// ImageDeleter penghapus gambar di penyimpanan eksternal. Gagal hapus
// tidak boleh menggagalkan operasi utama, cukup dicatat di log.
type ImageDeleter interface {
	Delete(ctx context.Context, url string) error
}

// PromoPrice hasil resolusi harga promo untuk satu buku
type PromoPrice struct {
	Name            string `json:"name"`
	Percent         int    `json:"percent"`
	DiscountedPrice int    `json:"discountedPrice"`
}

type PromoServiceOptions struct {
	DB     *gorm.DB
	Clock  Clock
	Images ImageDeleter
	Logger logger.Logger
}

type PromoService struct {
	db     *gorm.DB
	clock  Clock
	images ImageDeleter
	logger logger.Logger
}

func NewPromoService(opts PromoServiceOptions) *PromoService {
	if opts.Clock == nil {
		opts.Clock = NewJakartaClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PromoService{
		db:     opts.DB,
		clock:  opts.Clock,
		images: opts.Images,
		logger: opts.Logger,
	}
}

// DiscountedPrice hitung harga setelah diskon persen, dibulatkan ke
// bawah lewat pembagian bilangan bulat.
func DiscountedPrice(price, percent int) int {
	return price - price*percent/100
}

// firstActiveLink memilih satu link promo yang aktif pada waktu now.
// Kalau guard konflik bekerja benar paling banyak ada satu; kalau ada
// lebih dari satu, yang pertama menurut urutan query yang dipakai.
func firstActiveLink(links []models.PromotionBook, now time.Time) *models.PromotionBook {
	for i := range links {
		if links[i].Promotion.ActiveAt(now) {
			return &links[i]
		}
	}
	return nil
}

// hasUnendedConflict cek apakah ada link milik promo lain yang jendela
// promonya belum berakhir (end >= now). Sengaja kasar: tidak memeriksa
// irisan jendela waktu, cukup "promo lain belum selesai".
func hasUnendedConflict(links []models.PromotionBook, excludePromoID uint, now time.Time) bool {
	for i := range links {
		if links[i].PromotionID == excludePromoID {
			continue
		}
		if !links[i].Promotion.EndedBefore(now) {
			return true
		}
	}
	return false
}

// ResolvePromo mencari promo aktif untuk sebuah buku dan menghitung
// harga diskonnya. Promo nil tanpa error artinya memang tidak ada promo
// yang berlaku atau buku tidak dijual (harga <= 0); query yang gagal
// dikembalikan sebagai error, bukan dianggap tanpa promo. Read-only.
func (s *PromoService) ResolvePromo(book *models.Book) (*PromoPrice, error) {
	if book == nil || book.Price <= 0 {
		return nil, nil
	}

	var links []models.PromotionBook
	if err := s.db.Preload("Promotion").
		Where("book_id = ?", book.ID).
		Order("promotion_id asc").
		Find(&links).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal mengambil promo buku", err)
	}

	link := firstActiveLink(links, s.clock.Now())
	if link == nil {
		return nil, nil
	}

	return &PromoPrice{
		Name:            link.Promotion.Name,
		Percent:         link.Discount,
		DiscountedPrice: DiscountedPrice(book.Price, link.Discount),
	}, nil
}

// ResolveBookPrice ambil buku beserta hasil resolusi promonya.
func (s *PromoService) ResolveBookPrice(bookID uint) (*models.Book, *PromoPrice, error) {
	var book models.Book
	if err := s.db.First(&book, bookID).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeBookNotFound, "Buku tidak ditemukan", err)
	}
	promo, err := s.ResolvePromo(&book)
	if err != nil {
		return nil, nil, err
	}
	return &book, promo, nil
}

// promoStore operasi tulis link dan baris promo. gorm di baliknya,
// dipisah supaya urutan full-replace dan sweep bisa diuji tanpa
// postgres.
type promoStore interface {
	DeleteLinks(promoID uint) error
	CreateLinks(links []models.PromotionBook) error
	DeletePromotion(promoID uint) error
}

type gormPromoStore struct {
	tx *gorm.DB
}

func (g gormPromoStore) DeleteLinks(promoID uint) error {
	return g.tx.Where("promotion_id = ?", promoID).Delete(&models.PromotionBook{}).Error
}

func (g gormPromoStore) CreateLinks(links []models.PromotionBook) error {
	if len(links) == 0 {
		return nil
	}
	return g.tx.Create(&links).Error
}

func (g gormPromoStore) DeletePromotion(promoID uint) error {
	return g.tx.Delete(&models.Promotion{}, promoID).Error
}

// replacePromoLinks ganti seluruh daftar link sebuah promo dengan
// daftar dari request. Full replace, bukan merge: link lama dibuang
// dulu, baru daftar baru ditulis.
func replacePromoLinks(store promoStore, promoID uint, books []dto.PromotionBookInput) error {
	if err := store.DeleteLinks(promoID); err != nil {
		return err
	}
	links := make([]models.PromotionBook, len(books))
	for i, b := range books {
		links[i] = models.PromotionBook{
			PromotionID: promoID,
			BookID:      b.BookID,
			Discount:    b.Discount,
		}
	}
	return store.CreateLinks(links)
}

// removePromo lepaskan link dulu supaya tidak ada link yatim, baru
// hapus baris promonya
func removePromo(store promoStore, promoID uint) error {
	if err := store.DeleteLinks(promoID); err != nil {
		return err
	}
	return store.DeletePromotion(promoID)
}

// expiredPromos saring promo yang jendelanya sudah lewat seluruhnya
func expiredPromos(promos []models.Promotion, now time.Time) []models.Promotion {
	out := make([]models.Promotion, 0, len(promos))
	for _, p := range promos {
		if p.EndedBefore(now) {
			out = append(out, p)
		}
	}
	return out
}

func sortedUniqueBookIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// lockBooks serialisasi check-then-write antar request yang menyentuh
// buku yang sama: advisory lock per buku di dalam transaksi. Di READ
// COMMITTED dua create bersamaan sama-sama lolos pemeriksaan kalau
// tidak dikunci. Urut naik supaya dua transaksi tidak saling deadlock.
func lockBooks(tx *gorm.DB, bookIDs []uint) error {
	for _, id := range sortedUniqueBookIDs(bookIDs) {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(id)).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Gagal mengunci buku promo", err)
		}
	}
	return nil
}

// checkBookConflict guard konflik: tolak kalau ada promo lain yang
// belum berakhir memakai salah satu buku yang diajukan. Dipanggil di
// dalam transaksi yang sama dengan penulisan, setelah lockBooks.
func (s *PromoService) checkBookConflict(tx *gorm.DB, bookIDs []uint, excludePromoID uint) error {
	var links []models.PromotionBook
	if err := tx.Preload("Promotion").
		Where("book_id IN ?", bookIDs).
		Find(&links).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Gagal memeriksa konflik promo", err)
	}

	if hasUnendedConflict(links, excludePromoID, s.clock.Now()) {
		return errors.NewAppError(errors.ErrCodePromoConflict,
			"Buku sudah terdaftar di promo lain yang belum berakhir", nil)
	}
	return nil
}

func (s *PromoService) ensureBooksExist(tx *gorm.DB, bookIDs []uint) error {
	var count int64
	if err := tx.Model(&models.Book{}).Where("id IN ?", bookIDs).Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Gagal memeriksa buku", err)
	}
	if count != int64(len(bookIDs)) {
		return errors.NewAppError(errors.ErrCodeBookNotFound, "Ada buku yang tidak ditemukan", nil)
	}
	return nil
}

// Create simpan promo baru beserta link bukunya dalam satu transaksi.
func (s *PromoService) Create(req dto.CreatePromotionRequest) (*models.Promotion, error) {
	promo := models.Promotion{
		Name:      req.Name,
		StartDate: req.StartDate,
		StartTime: req.StartTime,
		EndDate:   req.EndDate,
		EndTime:   req.EndTime,
		Image:     req.Image,
	}

	bookIDs := make([]uint, len(req.Books))
	for i, b := range req.Books {
		bookIDs[i] = b.BookID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockBooks(tx, bookIDs); err != nil {
			return err
		}
		if err := s.ensureBooksExist(tx, bookIDs); err != nil {
			return err
		}
		if err := s.checkBookConflict(tx, bookIDs, 0); err != nil {
			return err
		}
		if err := tx.Create(&promo).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Gagal menyimpan promo", err)
		}

		links := make([]models.PromotionBook, len(req.Books))
		for i, b := range req.Books {
			links[i] = models.PromotionBook{
				PromotionID: promo.ID,
				BookID:      b.BookID,
				Discount:    b.Discount,
			}
		}
		if err := (gormPromoStore{tx}).CreateLinks(links); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Gagal menyimpan buku promo", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// Update ganti atribut promo dan seluruh daftar bukunya (full replace,
// bukan merge) dalam satu transaksi.
func (s *PromoService) Update(req dto.UpdatePromotionRequest) (*models.Promotion, error) {
	var promo models.Promotion
	if err := s.db.First(&promo, req.ID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodePromoNotFound, "Promo tidak ditemukan", err)
	}

	bookIDs := make([]uint, len(req.Books))
	for i, b := range req.Books {
		bookIDs[i] = b.BookID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockBooks(tx, bookIDs); err != nil {
			return err
		}
		if err := s.ensureBooksExist(tx, bookIDs); err != nil {
			return err
		}
		if err := s.checkBookConflict(tx, bookIDs, promo.ID); err != nil {
			return err
		}

		promo.Name = req.Name
		promo.StartDate = req.StartDate
		promo.StartTime = req.StartTime
		promo.EndDate = req.EndDate
		promo.EndTime = req.EndTime
		promo.Image = req.Image
		if err := tx.Save(&promo).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Gagal memperbarui promo", err)
		}

		if err := replacePromoLinks(gormPromoStore{tx}, promo.ID, req.Books); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Gagal menulis ulang buku promo", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// Delete hapus promo: detach link dulu, baru baris promonya, lalu
// hapus gambar di cloudinary secara best-effort.
func (s *PromoService) Delete(promoID uint) error {
	var promo models.Promotion
	if err := s.db.First(&promo, promoID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodePromoNotFound, "Promo tidak ditemukan", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := removePromo(gormPromoStore{tx}, promo.ID); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Gagal menghapus promo", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.deleteImage(&promo)
	return nil
}

// SweepExpired hapus semua promo yang jendelanya sudah lewat (end <
// now, EndTime kosong dihitung akhir hari). Dipanggil sebelum listing
// promo dan dari cron malam. Idempoten dan aman dijalankan bersamaan.
func (s *PromoService) SweepExpired() error {
	now := s.clock.Now()

	var promos []models.Promotion
	if err := s.db.Find(&promos).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Gagal mengambil daftar promo", err)
	}

	for _, promo := range expiredPromos(promos, now) {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			return removePromo(gormPromoStore{tx}, promo.ID)
		})
		if err != nil {
			s.logger.Error("gagal hapus promo kedaluwarsa %d: %v", promo.ID, err)
			continue
		}

		s.deleteImage(&promo)
	}
	return nil
}

func (s *PromoService) deleteImage(promo *models.Promotion) {
	if promo.Image == "" || s.images == nil {
		return
	}
	if err := s.images.Delete(context.Background(), promo.Image); err != nil {
		s.logger.Error("gagal hapus gambar promo %d: %v", promo.ID, err)
	}
}

// GetPromotions jalankan sweep dulu, lalu kembalikan daftar promo
// beserta buku dan diskonnya.
func (s *PromoService) GetPromotions() ([]dto.PromotionResponse, error) {
	if err := s.SweepExpired(); err != nil {
		s.logger.Error("sweep promo kedaluwarsa gagal: %v", err)
	}

	var promos []models.Promotion
	if err := s.db.Find(&promos).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal mengambil daftar promo", err)
	}

	responses := make([]dto.PromotionResponse, 0, len(promos))
	for i := range promos {
		resp, err := s.buildResponse(&promos[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// GetPromotionDetail ambil satu promo beserta bukunya.
func (s *PromoService) GetPromotionDetail(promoID uint) (*dto.PromotionResponse, error) {
	var promo models.Promotion
	if err := s.db.First(&promo, promoID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodePromoNotFound, "Promo tidak ditemukan", err)
	}
	return s.buildResponse(&promo)
}

func (s *PromoService) buildResponse(promo *models.Promotion) (*dto.PromotionResponse, error) {
	var links []models.PromotionBook
	if err := s.db.Preload("Book").
		Where("promotion_id = ?", promo.ID).
		Find(&links).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal mengambil buku promo", err)
	}

	books := make([]dto.PromotionBookResponse, 0, len(links))
	for _, link := range links {
		books = append(books, dto.PromotionBookResponse{
			ID:       link.BookID,
			Title:    link.Book.Title,
			Author:   link.Book.Author,
			Discount: link.Discount,
		})
	}

	return &dto.PromotionResponse{
		ID:        promo.ID,
		Name:      promo.Name,
		StartDate: promo.StartDate,
		StartTime: promo.StartTime,
		EndDate:   promo.EndDate,
		EndTime:   promo.EndTime,
		Image:     promo.Image,
		CreatedAt: promo.CreatedAt,
		Books:     books,
	}, nil
}

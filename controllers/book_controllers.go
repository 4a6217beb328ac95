package controllers

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"bukubekas/config"
	"bukubekas/dto"
	"bukubekas/models"
	"bukubekas/response"
	"bukubekas/services"
	"bukubekas/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const bookCacheKey = "books:all"

// bookListCache isi cache halaman pertama etalase, total ikut disimpan
// supaya bentuk response sama dengan jalur tanpa cache
type bookListCache struct {
	Books []dto.BookResponse `json:"books"`
	Total int                `json:"total"`
}

// respondBookPage satu-satunya bentuk response listing buku, dari
// cache maupun query
func respondBookPage(c *gin.Context, books []dto.BookResponse, page, limit, total int) {
	response.SuccessWithPagination(c, books, page, limit, total)
}

type BookController struct {
	db    *gorm.DB
	redis *redis.Client
	promo *services.PromoService
}

func NewBookController(db *gorm.DB, redisCli *redis.Client, promo *services.PromoService) *BookController {
	return &BookController{db: db, redis: redisCli, promo: promo}
}

func toBookResponse(book *models.Book, promo *services.PromoService) (dto.BookResponse, error) {
	resp := dto.BookResponse{
		ID:         book.ID,
		Title:      book.Title,
		Author:     book.Author,
		Publisher:  book.Publisher,
		Stock:      book.Stock,
		Condition:  book.Condition,
		Price:      book.Price,
		Weight:     book.Weight,
		Categories: book.Categories,
		Photo:      book.Photo,
		CreatedAt:  book.CreatedAt,
	}
	active, err := promo.ResolvePromo(book)
	if err != nil {
		return dto.BookResponse{}, err
	}
	if active != nil {
		resp.Promo = &dto.PromoInfo{
			Name:            active.Name,
			Percent:         active.Percent,
			DiscountedPrice: active.DiscountedPrice,
		}
	}
	return resp, nil
}

// GetAllBooks etalase buku dengan filter dan paginasi. Halaman pertama
// tanpa filter dilayani dari cache Redis.
func (ctrl *BookController) GetAllBooks(c *gin.Context) {
	page, limit := parsePagination(c)
	nameFilter := c.Query("name")
	authorFilter := c.Query("author")
	categoryFilter := c.Query("category")
	conditionFilter := c.Query("condition")
	minPriceStr := c.Query("minPrice")
	maxPriceStr := c.Query("maxPrice")

	noFilter := nameFilter == "" && authorFilter == "" && categoryFilter == "" &&
		conditionFilter == "" && minPriceStr == "" && maxPriceStr == ""

	if noFilter && page == 0 && ctrl.redis != nil {
		var cached bookListCache
		if err := services.GetFromRedis(config.Ctx, ctrl.redis, bookCacheKey, &cached); err == nil && len(cached.Books) > 0 {
			respondBookPage(c, cached.Books, page, limit, cached.Total)
			return
		}
	}

	tx := ctrl.db.Model(&models.Book{})
	if nameFilter != "" {
		decoded, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("title ILIKE ?", "%"+decoded+"%")
	}
	if authorFilter != "" {
		tx = tx.Where("author ILIKE ?", "%"+authorFilter+"%")
	}
	if categoryFilter != "" {
		tx = tx.Where("? = ANY(categories)", categoryFilter)
	}
	if conditionFilter != "" {
		tx = tx.Where("condition = ?", conditionFilter)
	}
	if minPriceStr != "" {
		if minPrice, err := strconv.Atoi(minPriceStr); err == nil {
			tx = tx.Where("price >= ?", minPrice)
		}
	}
	if maxPriceStr != "" {
		if maxPrice, err := strconv.Atoi(maxPriceStr); err == nil {
			tx = tx.Where("price <= ?", maxPrice)
		}
	}

	var totalBooks int64
	if err := tx.Count(&totalBooks).Error; err != nil {
		response.ServerError(c)
		return
	}

	var books []models.Book
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&books).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookResponses := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		resp, err := toBookResponse(&books[i], ctrl.promo)
		if err != nil {
			response.ServerError(c)
			return
		}
		bookResponses = append(bookResponses, resp)
	}

	if noFilter && page == 0 && ctrl.redis != nil {
		_ = services.SetToRedis(config.Ctx, ctrl.redis, bookCacheKey,
			bookListCache{Books: bookResponses, Total: int(totalBooks)}, 10*time.Minute)
	}

	respondBookPage(c, bookResponses, page, limit, int(totalBooks))
}

func (ctrl *BookController) GetBookDetail(c *gin.Context) {
	bookID := c.Param("id")

	var book models.Book
	if err := ctrl.db.First(&book, bookID).Error; err != nil {
		response.NotFound(c)
		return
	}

	resp, err := toBookResponse(&book, ctrl.promo)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, resp)
}

// SearchBooks pencarian fuzzy: judul, penulis, dan kategori diberi
// skor kecocokan lalu diurutkan dari skor tertinggi.
func (ctrl *BookController) SearchBooks(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Kata kunci pencarian tidak boleh kosong")
		return
	}

	var books []models.Book
	if err := ctrl.db.Find(&books).Error; err != nil {
		response.ServerError(c)
		return
	}

	cmAuthor := createMatcher(prepareUniqueAuthors(books))
	scored := filterAndScoreBooks(query, books, cmAuthor)

	results := make([]dto.ScoredBook, 0, len(scored))
	for _, s := range scored {
		resp, err := toBookResponse(s.book, ctrl.promo)
		if err != nil {
			response.ServerError(c)
			return
		}
		results = append(results, dto.ScoredBook{
			Book:  resp,
			Score: s.score,
		})
	}

	response.SuccessWithTotal(c, results, len(results))
}

func (ctrl *BookController) CreateBook(c *gin.Context) {
	var request dto.CreateBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	if err := validator.ValidateBookPayload(&request); err != nil {
		respondAppError(c, err)
		return
	}

	userID, _ := currentUserID(c)
	book := models.Book{
		UserID:     userID,
		Title:      request.Title,
		Author:     request.Author,
		Publisher:  request.Publisher,
		Stock:      request.Stock,
		Condition:  request.Condition,
		Price:      request.Price,
		Weight:     request.Weight,
		Categories: request.Categories,
		Photo:      request.Photo,
	}

	if err := ctrl.db.Create(&book).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctrl.invalidateCache()

	response.Success(c, book)
}

func (ctrl *BookController) UpdateBook(c *gin.Context) {
	var request dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	var book models.Book
	if err := ctrl.db.First(&book, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Title != "" {
		book.Title = request.Title
	}
	if request.Author != "" {
		book.Author = request.Author
	}
	if request.Publisher != "" {
		book.Publisher = request.Publisher
	}
	if request.Stock != nil {
		book.Stock = *request.Stock
	}
	if request.Condition != "" {
		book.Condition = request.Condition
		if err := book.ValidateCondition(); err != nil {
			response.BadRequest(c, "Kondisi buku tidak valid")
			return
		}
	}
	if request.Price != nil {
		if *request.Price <= 0 {
			response.BadRequest(c, "Harga buku harus lebih dari 0")
			return
		}
		book.Price = *request.Price
	}
	if request.Weight != nil {
		book.Weight = *request.Weight
	}
	if request.Categories != nil {
		book.Categories = request.Categories
	}
	if request.Photo != "" {
		book.Photo = request.Photo
	}

	if err := ctrl.db.Save(&book).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctrl.invalidateCache()

	response.Success(c, book)
}

// bookRemover urutan hapus buku: link promo dilepas dulu supaya tidak
// ada link yatim, baru barisnya
type bookRemover interface {
	DetachPromoLinks(bookID string) error
	DeleteRow(bookID string) error
}

type gormBookRemover struct {
	tx *gorm.DB
}

func (g gormBookRemover) DetachPromoLinks(bookID string) error {
	return g.tx.Where("book_id = ?", bookID).Delete(&models.PromotionBook{}).Error
}

func (g gormBookRemover) DeleteRow(bookID string) error {
	return g.tx.Delete(&models.Book{}, bookID).Error
}

func removeBook(r bookRemover, bookID string) error {
	if err := r.DetachPromoLinks(bookID); err != nil {
		return err
	}
	return r.DeleteRow(bookID)
}

func (ctrl *BookController) DeleteBook(c *gin.Context) {
	bookID := c.Param("id")

	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		return removeBook(gormBookRemover{tx}, bookID)
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	ctrl.invalidateCache()

	response.Success(c, nil)
}

func (ctrl *BookController) invalidateCache() {
	if ctrl.redis == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, ctrl.redis, bookCacheKey)
}

// --- helper pencarian fuzzy ---

type scoredBook struct {
	book  *models.Book
	score int
}

// normalizeInput bersihkan aksen dan besar-kecil huruf
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity kemiripan dua string berdasarkan jarak levenshtein
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

func prepareUniqueAuthors(books []models.Book) []string {
	uniqueValues := make(map[string]bool)
	for i := range books {
		if books[i].Author != "" {
			uniqueValues[normalizeInput(books[i].Author)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func calculateBookScore(query string, book *models.Book, cmAuthor *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedTitle := normalizeInput(book.Title)
	if strings.Contains(normalizedTitle, normalizedQuery) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedTitle) > 0.7 {
		score += 12
	}

	if cmAuthor.Closest(normalizedQuery) == normalizeInput(book.Author) &&
		calculateSimilarity(normalizedQuery, normalizeInput(book.Author)) > 0.5 {
		score += 10
	}

	for _, category := range book.Categories {
		normalizedCategory := normalizeInput(category)
		if strings.Contains(normalizedQuery, normalizedCategory) ||
			calculateSimilarity(normalizedQuery, normalizedCategory) > 0.7 {
			score += 5
			break
		}
	}

	return score
}

func filterAndScoreBooks(query string, books []models.Book, cmAuthor *closestmatch.ClosestMatch) []scoredBook {
	var filtered []scoredBook
	scoreCh := make(chan scoredBook, len(books))
	var wg sync.WaitGroup

	for i := range books {
		wg.Add(1)
		go func(book *models.Book) {
			defer wg.Done()
			score := calculateBookScore(query, book, cmAuthor)
			if score > 0 {
				scoreCh <- scoredBook{book: book, score: score}
			}
		}(&books[i])
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for sb := range scoreCh {
		filtered = append(filtered, sb)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].score > filtered[j].score
	})

	return filtered
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

package routes

import (
	"context"
	"net/http"

	"bukubekas/config"
	"bukubekas/constants"
	"bukubekas/controllers"
	middlewares "bukubekas/middleware"
	"bukubekas/services"
	"bukubekas/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.ErrorHandler())

	imageService := services.NewImageService(cld)
	promoService := services.NewPromoService(services.PromoServiceOptions{
		DB:     db,
		Images: imageService,
	})
	shippingService := services.NewShippingService()
	notifService := notification.NewMelodyService(m)

	promotionController := controllers.NewPromotionController(promoService)
	bookController := controllers.NewBookController(db, redisCli, promoService)
	orderController := controllers.NewOrderController(db, promoService, shippingService, notifService)
	reviewController := controllers.NewReviewController(db)
	wishlistController := controllers.NewWishlistController(db, promoService)
	testimonialController := controllers.NewTestimonialController(db)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.GET("/profile", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), controllers.GetProfile)

	v1.GET("/books", bookController.GetAllBooks)
	v1.GET("/books/:id", bookController.GetBookDetail)
	v1.GET("/books/:id/price", promotionController.GetBookPrice)
	v1.GET("/books/:id/reviews", reviewController.GetBookReviews)
	v1.GET("/searchBooks", bookController.SearchBooks)
	v1.POST("/books", middlewares.AuthMiddleware(constants.RoleAdmin), bookController.CreateBook)
	v1.PUT("/bookUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), bookController.UpdateBook)
	v1.DELETE("/books/:id", middlewares.AuthMiddleware(constants.RoleAdmin), bookController.DeleteBook)

	v1.GET("/promotion", promotionController.GetPromotions)
	v1.GET("/promotion/:id", promotionController.GetPromotionDetail)
	v1.POST("/promotion", middlewares.AuthMiddleware(constants.RoleAdmin), promotionController.CreatePromotion)
	v1.PUT("/promotionUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), promotionController.UpdatePromotion)
	v1.DELETE("/promotion/:id", middlewares.AuthMiddleware(constants.RoleAdmin), promotionController.DeletePromotion)

	v1.GET("/cart", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), controllers.GetCart)
	v1.POST("/cart", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), controllers.AddCartItem)
	v1.DELETE("/cart/:id", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), controllers.DeleteCartItem)

	v1.POST("/order", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), orderController.CreateOrder)
	v1.GET("/orderHistory", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), orderController.GetOrders)
	v1.GET("/order/:id", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), orderController.GetOrderDetail)
	v1.GET("/order", middlewares.AuthMiddleware(constants.RoleAdmin), orderController.GetAllOrders)
	v1.PUT("/orderUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), orderController.ChangeOrderStatus)

	v1.POST("/reviews", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), reviewController.CreateReview)

	v1.GET("/wishlist", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), wishlistController.GetWishlist)
	v1.POST("/wishlist", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), wishlistController.AddWishlist)
	v1.DELETE("/wishlist/:id", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), wishlistController.DeleteWishlist)

	v1.GET("/testimonial", testimonialController.GetTestimonials)
	v1.GET("/testimonialAll", middlewares.AuthMiddleware(constants.RoleAdmin), testimonialController.GetAllTestimonials)
	v1.POST("/testimonial", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleAdmin), testimonialController.CreateTestimonial)
	v1.PUT("/testimonialStatus", middlewares.AuthMiddleware(constants.RoleAdmin), testimonialController.ChangeTestimonialStatus)

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tidak ada file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal membuka file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "promos"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload gagal"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload berhasil",
			"url":     resp.SecureURL,
		})
	})

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tidak ada file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tidak ada file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal membuka file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "books"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload gagal"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload berhasil",
			"urls":    urls,
		})
	})
}

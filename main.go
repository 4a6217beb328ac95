package main

import (
	"log"
	"net/http"
	"os"

	"bukubekas/config"

	"bukubekas/jobs"
	"bukubekas/models"
	"bukubekas/routes"
	"bukubekas/services"
	"bukubekas/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Promotion{},
		&models.PromotionBook{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Wishlist{},
		&models.Testimonial{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: file .env tidak ditemukan, pakai environment yang ada: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	promoService := services.NewPromoService(services.PromoServiceOptions{
		DB:     config.DB,
		Images: services.NewImageService(config.Cloudinary),
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetPromoSweeper(promoService)

	migrateTables()

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

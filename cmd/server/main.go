package main

import (
	"time"

	"store-admin-backend/internal/config"
	"store-admin-backend/internal/models"
	"store-admin-backend/internal/routes"
	"store-admin-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on system env")
	}

	var st store.Store
	backend := config.StorageBackend()
	switch backend {
	case "memory":
		st = store.NewMemoryStore()
	default:
		db := config.InitDB()
		if err := db.AutoMigrate(
			&models.Product{},
			&models.Customer{},
			&models.Invoice{},
			&models.InvoiceItem{},
		); err != nil {
			logrus.WithError(err).Fatal("migration failed")
		}
		st = store.NewGormStore(db)
	}
	logrus.WithField("backend", backend).Info("entity store ready")

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, st)

	r.Run(":" + config.Port())
}

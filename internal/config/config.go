package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// StorageBackend selects the entity store implementation: "postgres"
// (default) or "memory".
func StorageBackend() string {
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		return v
	}
	return "postgres"
}

func Port() string {
	if v := os.Getenv("PORT"); v != "" {
		return v
	}
	return "8080"
}

func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=store_admin port=5432 sslmode=disable"
	}

	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey, which the store layer depends on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	return db
}

package db

import (
	"gamereviews/models"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres dbname=gamereviews password=postgres sslmode=disable"
	}

	var openErr error
	DB, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if openErr != nil {
		log.Fatal("failed to connect to the database:", openErr)
	}

	migrateErr := DB.AutoMigrate(&models.User{}, &models.Game{}, &models.ReviewItem{}, &models.Follow{})
	if migrateErr != nil {
		log.Fatal("failed to migrate:", migrateErr)
	}

	log.Println("Database connected and migrated")
}

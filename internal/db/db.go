package db

import (
	"log"
	"os"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=socialconnect port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")
}

// Migrate runs the schema migration. Exposed so tests can migrate an
// in-memory database.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.User{},
		&models.UserEdge{},
		&models.AuthToken{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Message{},
		&models.Notification{},
	)
}

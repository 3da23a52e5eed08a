package postgres

import (
	"fmt"
	"log"

	"blogapi/internal/config"
	"blogapi/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var DB *gorm.DB

// GetDB returns the global DB handle (for testing).
func GetDB() *gorm.DB {
	return DB
}

// InitDB opens the configured database and sets the global DB handle.
// DB_DRIVER selects postgres or sqlite3; sqlite3 keeps the same schema and
// constraints and needs no running server.
func InitDB(cfg *config.Config) error {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		)
		db, err = gorm.Open("postgres", dsn)
	case "sqlite3":
		db, err = gorm.Open("sqlite3", cfg.DBPath)
		if err == nil {
			db.Exec("PRAGMA foreign_keys = ON")
		}
	default:
		return fmt.Errorf("unknown DB driver: %s", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}

	DB = db
	log.Println("Successfully connected to the database.")
	return nil
}

// Migrate creates or updates the schema, including the composite unique
// index that backs the like toggle.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	).Error
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// CloseDB closes the database connection.
func CloseDB() error {
	if DB == nil {
		return nil
	}

	if err := DB.Close(); err != nil {
		return fmt.Errorf("failed to close the database connection: %w", err)
	}

	log.Println("Database connection closed.")
	return nil
}

// InitDBWithConnection allows injecting a DB connection (for testing).
func InitDBWithConnection(db *gorm.DB) {
	DB = db
}

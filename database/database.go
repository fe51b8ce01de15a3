package database

import (
	"fmt"
	"time"

	"github.com/Josip135/TattooStudio/config"
	"github.com/Josip135/TattooStudio/internal/domain/artists"
	"github.com/Josip135/TattooStudio/internal/domain/blogs"
	"github.com/Josip135/TattooStudio/internal/domain/clients"
	"github.com/Josip135/TattooStudio/internal/domain/media"
	"github.com/Josip135/TattooStudio/internal/domain/stories"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a pooled Postgres connection and migrates all domain
// models. The returned handle is shared by every handler; the pool
// replaces the single process-wide connection the original ran on.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	// TranslateError lets handlers match gorm.ErrDuplicatedKey instead
	// of driver-specific constraint errors.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate error: %w", err)
	}

	return db, nil
}

// Migrate is separate from Connect so tests can run it against their
// own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clients.Client{},
		&artists.Artist{},
		&stories.Story{},
		&media.Tattoo{},
		&blogs.Blog{},
		&blogs.Thumbnail{},
	)
}

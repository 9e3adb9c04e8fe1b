package database

import (
	"fmt"

	"github.com/rohitgunthal18/pixico-core/internal/config"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens a MySQL connection for the given DSN.
func Open(cfg *config.AppConfig, dsn string) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               dsn,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// Migrate runs GORM auto-migration for all models. Runs on the elevated handle
// when one is configured, since DDL needs it.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ProfileModel{},
		&models.SessionModel{},
		&models.CategoryModel{},
		&models.AiModelModel{},
		&models.PromptModel{},
		&models.BlogModel{},
		&models.SitePageModel{},
		&models.ContactQueryModel{},
	)
}

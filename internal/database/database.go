package database

import (
	"log"

	"loyalty/config"
	"loyalty/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.PartnerRate{},
	)
}

// SeedPartnerRates inserts configured partner overrides that are not
// already stored, so restarts don't clobber rates set at runtime.
func SeedPartnerRates(db *gorm.DB, rates map[string]float64) {
	for partner, rate := range rates {
		var count int64
		if err := db.Model(&models.PartnerRate{}).Where("partner_id = ?", partner).Count(&count).Error; err != nil {
			log.Printf("[seed] partner rate %s: %v", partner, err)
			continue
		}
		if count == 0 {
			if err := db.Create(&models.PartnerRate{PartnerID: partner, Rate: rate}).Error; err != nil {
				log.Printf("[seed] partner rate %s: %v", partner, err)
			}
		}
	}
}

package repository

import (
	"errors"
	"log"

	"loyalty/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateRepository stores per-partner accrual rates. The default rate is
// fixed at construction; partners without an override earn at it.
type RateRepository struct {
	db          *gorm.DB
	defaultRate float64
}

func NewRateRepository(db *gorm.DB, defaultRate float64) *RateRepository {
	return &RateRepository{db: db, defaultRate: defaultRate}
}

// RateFor never fails: unknown partners (and lookup errors) fall back to
// the default rate.
func (r *RateRepository) RateFor(partnerID string) float64 {
	var pr models.PartnerRate
	if err := r.db.First(&pr, "partner_id = ?", partnerID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[rates] lookup %s: %v", partnerID, err)
		}
		return r.defaultRate
	}
	return pr.Rate
}

// SetRate upserts a partner's rate. Zero and negative rates are
// accepted; the new rate applies to all subsequent lookups.
func (r *RateRepository) SetRate(partnerID string, rate float64) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "partner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(&models.PartnerRate{PartnerID: partnerID, Rate: rate}).Error
}

// Snapshot returns the default rate and all partner overrides.
func (r *RateRepository) Snapshot() (float64, map[string]float64, error) {
	var list []models.PartnerRate
	if err := r.db.Find(&list).Error; err != nil {
		return 0, nil, err
	}
	rates := make(map[string]float64, len(list))
	for _, pr := range list {
		rates[pr.PartnerID] = pr.Rate
	}
	return r.defaultRate, rates, nil
}

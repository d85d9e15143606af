package models

import "time"

// PartnerRate is a per-partner points rate override. Partners without a
// row accrue at the configured default rate.
type PartnerRate struct {
	PartnerID string    `gorm:"primaryKey;size:128" json:"partner_id"`
	Rate      float64   `gorm:"not null" json:"points_rate"`
	UpdatedAt time.Time `json:"-"`
}

func (PartnerRate) TableName() string {
	return "partner_rates"
}

package models

import "time"

// Transaction is a single accrual event. PointsEarned is fixed at
// recording time; later rate changes never touch past transactions.
type Transaction struct {
	Seq                  uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID                   string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	UserID               string    `gorm:"size:36;not null;index" json:"user_id"`
	PartnerID            string    `gorm:"size:128;not null" json:"partner_id"`
	Amount               float64   `gorm:"not null" json:"amount"`
	PointsEarned         int64     `gorm:"not null" json:"points_earned"`
	TransactionReference string    `gorm:"size:128;not null" json:"transaction_reference"` // caller-supplied, stored verbatim, not unique
	Timestamp            time.Time `json:"timestamp"`
}

func (Transaction) TableName() string {
	return "transactions"
}

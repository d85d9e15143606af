package models

import "time"

// User is a loyalty member. PointsBalance is only ever adjusted by
// recording transactions; no external adjustment path exists.
type User struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	PointsBalance int64     `gorm:"not null;default:0" json:"points_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

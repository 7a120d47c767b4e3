package entity

import "time"

// Admin holds the dashboard credentials. Seeded once from the environment
// at bootstrap; the plaintext never leaves the config.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
}

func (Admin) TableName() string { return "admins" }

package entity

import "time"

// User is read-only here: registration lives in the storefront.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
}

func (User) TableName() string { return "users" }

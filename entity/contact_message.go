package entity

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `gorm:"default:new" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

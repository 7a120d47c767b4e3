package entity

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	UserID *uint `json:"user_id,omitempty"`
	User   *User `json:"-"`

	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`
}

func (Review) TableName() string { return "reviews" }

// ReviewRow joins the reviewer and menu item names for list responses.
type ReviewRow struct {
	Review
	UserName     string `json:"user_name"`
	MenuItemName string `json:"menu_item_name"`
}

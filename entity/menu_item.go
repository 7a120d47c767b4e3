package entity

import "time"

type MenuItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	NameUz          string    `json:"name_uz"`
	NameRu          string    `json:"name_ru"`
	NameEn          string    `json:"name_en"`
	DescriptionUz   string    `json:"description_uz"`
	DescriptionRu   string    `json:"description_ru"`
	DescriptionEn   string    `json:"description_en"`
	Price           int64     `json:"price"`
	ImageURL        string    `json:"image_url"`
	// Defaults (available, 10 minutes, 0 kcal) are applied on create;
	// a column default would swallow an explicit false or zero.
	IsAvailable     bool      `json:"is_available"`
	PreparationTime int       `json:"preparation_time"`
	Calories        int       `json:"calories"`
	IngredientsUz   string    `json:"ingredients_uz"`
	IngredientsRu   string    `json:"ingredients_ru"`
	IngredientsEn   string    `json:"ingredients_en"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	CategoryID uint     `json:"category_id"`
	Category   Category `json:"-"` // preload only when the category names are needed

	OrderItems []OrderItem `gorm:"foreignKey:MenuItemID" json:"-"`
	Reviews    []Review    `gorm:"foreignKey:MenuItemID" json:"-"`
}

func (MenuItem) TableName() string { return "menu_items" }

// MenuItemRow is a menu item joined with its category names, the shape
// /api/menu and /api/admin/menu return. Rating fields are filled by the
// demo catalog only.
type MenuItemRow struct {
	MenuItem
	CategoryNameUz string  `json:"category_name_uz"`
	CategoryNameRu string  `json:"category_name_ru"`
	CategoryNameEn string  `json:"category_name_en"`
	Rating         float64 `json:"rating,omitempty"`
	ReviewsCount   int     `json:"reviews_count,omitempty"`
}

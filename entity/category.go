package entity

import "time"

type Category struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	NameUz        string    `json:"name_uz"`
	NameRu        string    `json:"name_ru"`
	NameEn        string    `json:"name_en"`
	DescriptionUz string    `json:"description_uz"`
	DescriptionRu string    `json:"description_ru"`
	DescriptionEn string    `json:"description_en"`
	CreatedAt     time.Time `json:"created_at"`

	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string { return "categories" }

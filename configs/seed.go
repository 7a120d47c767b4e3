package configs

import (
	"log"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the dashboard account on first boot.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Admin{
		Email:    cfg.AdminEmail,
		Password: string(hash),
	}
	return db.Create(&admin).Error
}

// SeedCategories fills the category table with the storefront's sections.
func SeedCategories(db *gorm.DB) error {
	seed := []entity.Category{
		{NameUz: "Pitsalar25cm", NameRu: "Пиццы25cm", NameEn: "Pizzas25cm"},
		{NameUz: "Pitsalar30cm", NameRu: "Пиццы30cm", NameEn: "Pizzas30cm"},
		{NameUz: "Pitsalar35cm", NameRu: "Пиццы35cm", NameEn: "Pizzas35cm"},
		{NameUz: "Ichimlik", NameRu: "Напиток", NameEn: "Drink"},
		{NameUz: "Lavash", NameRu: "Лаваш", NameEn: "Lavash"},
		{NameUz: "Hotdog", NameRu: "Хот-дог", NameEn: "Hot dog"},
		{NameUz: "Seteyk", NameRu: "Стейк", NameEn: "Steak"},
		{NameUz: "Soup", NameRu: "Суп", NameEn: "Soup"},
	}
	for _, cat := range seed {
		if err := db.FirstOrCreate(&entity.Category{}, entity.Category{NameUz: cat.NameUz, NameRu: cat.NameRu, NameEn: cat.NameEn}).Error; err != nil {
			return err
		}
	}
	log.Println("categories seeded")
	return nil
}

package configs

import (
	"github.com/Tinesuzb/milano-cafe-uzb/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the postgres connection named by DATABASE_URL. It returns
// nil (and no error) when the URL is empty: callers treat a nil handle as
// demo mode. The handle is constructed once here and injected everywhere,
// no package-level state.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Category{}, &entity.MenuItem{},
		&entity.User{}, &entity.Order{}, &entity.OrderItem{},
		&entity.ContactMessage{}, &entity.Review{},
		&entity.Admin{},
	)
}

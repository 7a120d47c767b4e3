package controllers

import (
	"net/http"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/fixture"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GET /api/menu serves the public catalog, available items only. Never errors
// toward the storefront; demo mode and query failures both serve the
// fixture catalog.
func (ctl *MenuController) List(c *gin.Context) {
	if ctl.DB == nil {
		fixture.OK(c, "menu")
		return
	}

	var items []entity.MenuItem
	if err := ctl.DB.Preload("Category").
		Where("is_available = ?", true).
		Order("category_id, name_uz").
		Find(&items).Error; err != nil {
		fixture.OK(c, "menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{"menuItems": menuRows(items)})
}

// menuRows flattens preloaded category names onto each item.
func menuRows(items []entity.MenuItem) []entity.MenuItemRow {
	rows := make([]entity.MenuItemRow, 0, len(items))
	for _, m := range items {
		rows = append(rows, entity.MenuItemRow{
			MenuItem:       m,
			CategoryNameUz: m.Category.NameUz,
			CategoryNameRu: m.Category.NameRu,
			CategoryNameEn: m.Category.NameEn,
		})
	}
	return rows
}

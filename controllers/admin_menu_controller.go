package controllers

import (
	"net/http"
	"strconv"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminMenuController struct {
	DB *gorm.DB
}

func NewAdminMenuController(db *gorm.DB) *AdminMenuController {
	return &AdminMenuController{DB: db}
}

// MenuItemReq carries a full menu item payload. Pointer fields distinguish
// "absent" from zero so the documented defaults apply on create:
// is_available true, preparation_time 10, calories 0.
type MenuItemReq struct {
	NameUz          string `json:"name_uz" binding:"required"`
	NameRu          string `json:"name_ru" binding:"required"`
	NameEn          string `json:"name_en" binding:"required"`
	DescriptionUz   string `json:"description_uz"`
	DescriptionRu   string `json:"description_ru"`
	DescriptionEn   string `json:"description_en"`
	Price           int64  `json:"price" binding:"required"`
	CategoryID      uint   `json:"category_id" binding:"required"`
	ImageURL        string `json:"image_url"`
	IsAvailable     *bool  `json:"is_available"`
	PreparationTime *int   `json:"preparation_time"`
	Calories        *int   `json:"calories"`
	IngredientsUz   string `json:"ingredients_uz"`
	IngredientsRu   string `json:"ingredients_ru"`
	IngredientsEn   string `json:"ingredients_en"`
}

func (req *MenuItemReq) toEntity() entity.MenuItem {
	item := entity.MenuItem{
		NameUz: req.NameUz, NameRu: req.NameRu, NameEn: req.NameEn,
		DescriptionUz: req.DescriptionUz, DescriptionRu: req.DescriptionRu, DescriptionEn: req.DescriptionEn,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		ImageURL:        req.ImageURL,
		IsAvailable:     true,
		PreparationTime: 10,
		IngredientsUz:   req.IngredientsUz, IngredientsRu: req.IngredientsRu, IngredientsEn: req.IngredientsEn,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}
	if req.Calories != nil {
		item.Calories = *req.Calories
	}
	return item
}

// GET /api/admin/menu returns every item, hidden ones included.
func (ctl *AdminMenuController) List(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}

	var items []entity.MenuItem
	if err := ctl.DB.Preload("Category").
		Order("category_id, created_at DESC").
		Find(&items).Error; err != nil {
		resp.ServerError(c, "Failed to fetch menu items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menuItems": menuRows(items)})
}

// POST /api/admin/menu
func (ctl *AdminMenuController) Create(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}

	var req MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := req.toEntity()
	if err := ctl.DB.Create(&item).Error; err != nil {
		resp.ServerError(c, "Failed to create menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "menuItem": item})
}

// PUT /api/admin/menu/:id is a full-column update, the admin form always
// submits every field.
func (ctl *AdminMenuController) Update(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var req MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := req.toEntity()
	fields := map[string]interface{}{
		"name_uz": item.NameUz, "name_ru": item.NameRu, "name_en": item.NameEn,
		"description_uz": item.DescriptionUz, "description_ru": item.DescriptionRu, "description_en": item.DescriptionEn,
		"price":            item.Price,
		"category_id":      item.CategoryID,
		"image_url":        item.ImageURL,
		"is_available":     item.IsAvailable,
		"preparation_time": item.PreparationTime,
		"calories":         item.Calories,
		"ingredients_uz":   item.IngredientsUz, "ingredients_ru": item.IngredientsRu, "ingredients_en": item.IngredientsEn,
	}
	if err := ctl.DB.Model(&entity.MenuItem{}).
		Where("id = ?", uint(id)).
		Updates(fields).Error; err != nil {
		resp.ServerError(c, "Failed to update menu item")
		return
	}

	var updated entity.MenuItem
	if err := ctl.DB.First(&updated, uint(id)).Error; err != nil {
		resp.ServerError(c, "Failed to update menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "menuItem": updated})
}

// DELETE /api/admin/menu/:id is unconditional; orders keep their price
// snapshots so nothing references the row afterwards.
func (ctl *AdminMenuController) Delete(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	if err := ctl.DB.Delete(&entity.MenuItem{}, uint(id)).Error; err != nil {
		resp.ServerError(c, "Failed to delete menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

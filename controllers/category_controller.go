package controllers

import (
	"net/http"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

type categoryRow struct {
	entity.Category
	ItemsCount int64 `json:"items_count"`
}

// GET /api/admin/categories lists categories with their derived item counts.
func (ctl *CategoryController) List(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}

	var cats []entity.Category
	if err := ctl.DB.Order("id").Find(&cats).Error; err != nil {
		resp.ServerError(c, "Failed to fetch categories")
		return
	}

	var counts []struct {
		CategoryID uint
		Count      int64
	}
	if err := ctl.DB.Model(&entity.MenuItem{}).
		Select("category_id, COUNT(*) AS count").
		Group("category_id").
		Scan(&counts).Error; err != nil {
		resp.ServerError(c, "Failed to fetch categories")
		return
	}
	byCat := make(map[uint]int64, len(counts))
	for _, row := range counts {
		byCat[row.CategoryID] = row.Count
	}

	rows := make([]categoryRow, 0, len(cats))
	for _, cat := range cats {
		rows = append(rows, categoryRow{Category: cat, ItemsCount: byCat[cat.ID]})
	}
	c.JSON(http.StatusOK, gin.H{"categories": rows})
}

type CategoryReq struct {
	NameUz        string `json:"name_uz" binding:"required"`
	NameRu        string `json:"name_ru" binding:"required"`
	NameEn        string `json:"name_en" binding:"required"`
	DescriptionUz string `json:"description_uz"`
	DescriptionRu string `json:"description_ru"`
	DescriptionEn string `json:"description_en"`
}

// POST /api/admin/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}

	var req CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{
		NameUz: req.NameUz, NameRu: req.NameRu, NameEn: req.NameEn,
		DescriptionUz: req.DescriptionUz, DescriptionRu: req.DescriptionRu, DescriptionEn: req.DescriptionEn,
	}
	if err := ctl.DB.Create(&cat).Error; err != nil {
		resp.ServerError(c, "Failed to create category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": cat})
}

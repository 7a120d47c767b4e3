package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/fixture"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// GET /api/reviews?menuItemId= is public and degrades to the demo reviews.
func (ctl *ReviewController) List(c *gin.Context) {
	menuItemID, _ := strconv.Atoi(c.Query("menuItemId"))

	if ctl.DB == nil {
		rows := fixture.Reviews()
		if menuItemID > 0 {
			filtered := rows[:0]
			for _, r := range rows {
				if r.MenuItemID == uint(menuItemID) {
					filtered = append(filtered, r)
				}
			}
			rows = filtered
		}
		c.JSON(http.StatusOK, gin.H{"reviews": rows})
		return
	}

	q := ctl.DB.Preload("User").Preload("MenuItem").Order("created_at DESC")
	if menuItemID > 0 {
		q = q.Where("menu_item_id = ?", uint(menuItemID))
	} else {
		q = q.Limit(50)
	}

	var reviews []entity.Review
	if err := q.Find(&reviews).Error; err != nil {
		fixture.OK(c, "reviews")
		return
	}

	rows := make([]entity.ReviewRow, 0, len(reviews))
	for _, r := range reviews {
		row := entity.ReviewRow{Review: r, MenuItemName: r.MenuItem.NameUz}
		if r.User != nil {
			row.UserName = r.User.Name
		}
		rows = append(rows, row)
	}
	c.JSON(http.StatusOK, gin.H{"reviews": rows})
}

type ReviewReq struct {
	UserID     *uint  `json:"userId"`
	MenuItemID uint   `json:"menuItemId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// POST /api/reviews
func (ctl *ReviewController) Create(c *gin.Context) {
	var req ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		resp.BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	if ctl.DB == nil {
		demo := gin.H{
			"id":           time.Now().UnixMilli(),
			"user_name":    "Demo User",
			"menu_item_id": req.MenuItemID,
			"rating":       req.Rating,
			"comment":      req.Comment,
			"created_at":   time.Now(),
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "review": demo})
		return
	}

	review := entity.Review{
		UserID:     req.UserID,
		MenuItemID: req.MenuItemID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := ctl.DB.Create(&review).Error; err != nil {
		resp.ServerError(c, "Failed to create review")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
}

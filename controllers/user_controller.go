package controllers

import (
	"net/http"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/admin/users
func (ctl *UserController) List(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}

	var users []entity.User
	if err := ctl.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		resp.ServerError(c, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

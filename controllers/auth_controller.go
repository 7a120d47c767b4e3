package controllers

import (
	"net/http"

	"github.com/Tinesuzb/milano-cafe-uzb/configs"
	"github.com/Tinesuzb/milano-cafe-uzb/entity"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/resp"
	"github.com/Tinesuzb/milano-cafe-uzb/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/admin/login
// In demo mode there is no admins table, so credentials are checked against
// the configured values directly.
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if ctl.DB == nil {
		if req.Email != ctl.Cfg.AdminEmail || req.Password != ctl.Cfg.AdminPassword {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
	} else {
		var admin entity.Admin
		if err := ctl.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
	}

	token, err := utils.GenerateToken(req.Email, "admin", ctl.Cfg.JWTSecret, ctl.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, "could not issue token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

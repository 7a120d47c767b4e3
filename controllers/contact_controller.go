package controllers

import (
	"net/http"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

type ContactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

// POST /api/contact is the public form submission. Demo mode acknowledges
// without persisting, so the storefront form never breaks.
func (ctl *ContactController) Create(c *gin.Context) {
	var req ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		resp.BadRequest(c, "Name, email and message are required")
		return
	}

	if ctl.DB == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully!"})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "No subject"
	}
	msg := entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: subject,
		Message: req.Message,
		Phone:   req.Phone,
		Status:  "new",
	}
	if err := ctl.DB.Create(&msg).Error; err != nil {
		resp.ServerError(c, "Failed to send message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully! We'll get back to you soon.",
		"id":      msg.ID,
	})
}

// GET /api/contact is the admin inbox, latest 50.
func (ctl *ContactController) List(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}

	var messages []entity.ContactMessage
	if err := ctl.DB.Order("created_at DESC").Limit(50).Find(&messages).Error; err != nil {
		resp.ServerError(c, "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

package middlewares

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware opens the API to the dashboard origin. ALLOWED_ORIGINS is a
// comma-separated list; unset means any origin, which suits local work.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"*"}
	}
	return cors.New(cfg)
}

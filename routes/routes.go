package routes

import (
	"github.com/Tinesuzb/milano-cafe-uzb/configs"
	"github.com/Tinesuzb/milano-cafe-uzb/controllers"
	"github.com/Tinesuzb/milano-cafe-uzb/middlewares"
	"github.com/Tinesuzb/milano-cafe-uzb/repository"
	"github.com/Tinesuzb/milano-cafe-uzb/services"
	"github.com/Tinesuzb/milano-cafe-uzb/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires every endpoint. db may be nil (demo mode); every
// controller carries the handle and answers accordingly.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, feed *ws.OrderFeed) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", middlewares.MetricsHandler())

	orderRepo := repository.NewOrderRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	orderSvc := services.NewOrderService(orderRepo)

	authCtl := controllers.NewAuthController(db, cfg)
	menuCtl := controllers.NewMenuController(db)
	adminMenuCtl := controllers.NewAdminMenuController(db)
	categoryCtl := controllers.NewCategoryController(db)
	orderCtl := controllers.NewOrderController(db, orderSvc, feed)
	userCtl := controllers.NewUserController(db)
	contactCtl := controllers.NewContactController(db)
	reviewCtl := controllers.NewReviewController(db)
	statsCtl := controllers.NewStatsController(db, statsRepo)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	api := r.Group("/api")
	{
		// Public storefront surface
		api.GET("/menu", menuCtl.List)
		api.POST("/contact", contactCtl.Create)
		api.GET("/reviews", reviewCtl.List)
		api.POST("/reviews", reviewCtl.Create)

		// Order triage (admin)
		api.GET("/orders", auth, orderCtl.List)
		api.GET("/orders/:id", auth, orderCtl.Detail)
		api.PATCH("/orders/:id", auth, orderCtl.UpdateStatus)

		// Admin inbox
		api.GET("/contact", auth, contactCtl.List)

		admin := api.Group("/admin")
		{
			admin.POST("/login", authCtl.Login)

			admin.GET("/menu", auth, adminMenuCtl.List)
			admin.POST("/menu", auth, adminMenuCtl.Create)
			admin.PUT("/menu/:id", auth, adminMenuCtl.Update)
			admin.DELETE("/menu/:id", auth, adminMenuCtl.Delete)

			admin.GET("/categories", auth, categoryCtl.List)
			admin.POST("/categories", auth, categoryCtl.Create)

			admin.GET("/users", auth, userCtl.List)
			admin.GET("/stats", auth, statsCtl.Get)
		}
	}

	// Live order events for the dashboard (token via ?token= query).
	r.GET("/ws/admin/orders", auth, feed.HandleWebSocket)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/fixture"
	"github.com/Tinesuzb/milano-cafe-uzb/pkg/resp"
	"github.com/Tinesuzb/milano-cafe-uzb/services"
	"github.com/Tinesuzb/milano-cafe-uzb/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderController reads and triages orders; creation belongs to the
// storefront, not this service.
type OrderController struct {
	DB      *gorm.DB
	Service *services.OrderService
	Feed    *ws.OrderFeed
}

func NewOrderController(db *gorm.DB, svc *services.OrderService, feed *ws.OrderFeed) *OrderController {
	return &OrderController{DB: db, Service: svc, Feed: feed}
}

// GET /api/orders
func (ctl *OrderController) List(c *gin.Context) {
	if ctl.DB == nil {
		fixture.OK(c, "orders")
		return
	}

	orders, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GET /api/orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := ctl.Service.Get(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, order)
}

type UpdateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
	// Force lets an administrator set any known status out of order.
	Force bool `json:"force"`
}

// PATCH /api/orders/:id validates the transition along the status chain.
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	if ctl.DB == nil {
		resp.NoDatabase(c)
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.SetStatus(uint(id), req.Status, req.Force)
	switch {
	case errors.Is(err, services.ErrUnknownStatus):
		resp.BadRequest(c, "unknown status: "+string(req.Status))
		return
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, "status "+string(req.Status)+" does not follow the current status")
		return
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "order status changed concurrently, refetch and retry")
		return
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "order not found")
		return
	case err != nil:
		resp.ServerError(c, "Failed to update order status")
		return
	}

	if ctl.Feed != nil {
		ctl.Feed.Publish(ws.Event{Type: "order.updated", Order: order})
	}
	c.JSON(http.StatusOK, order)
}

package controllers

import (
	"errors"

	"github.com/RitheshHB23/cafeteriaa/pkg/resp"
	"github.com/RitheshHB23/cafeteriaa/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /api/orders
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/history/:session_id
func (h *OrderController) History(c *gin.Context) {
	orders, err := h.Svc.History(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:order_id
func (h *OrderController) Detail(c *gin.Context) {
	order, err := h.Svc.Get(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

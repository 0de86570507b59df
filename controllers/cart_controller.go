package controllers

import (
	"errors"

	"github.com/RitheshHB23/cafeteriaa/pkg/resp"
	"github.com/RitheshHB23/cafeteriaa/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /api/cart/:session_id
func (h *CartController) Get(c *gin.Context) {
	items, err := h.Svc.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Add(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			resp.NotFound(c, "Dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /api/cart/update
func (h *CartController) Update(c *gin.Context) {
	var req services.UpdateCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	removed, err := h.Svc.UpdateQty(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, "Cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if removed {
		resp.Message(c, "Item removed from cart")
		return
	}
	resp.Message(c, "Cart updated successfully")
}

// DELETE /api/cart/remove/:session_id/:dish_id
func (h *CartController) Remove(c *gin.Context) {
	err := h.Svc.Remove(c.Request.Context(), c.Param("session_id"), c.Param("dish_id"))
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, "Cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Item removed from cart")
}

// DELETE /api/cart/clear/:session_id
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), c.Param("session_id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Cart cleared")
}

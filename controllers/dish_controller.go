package controllers

import (
	"github.com/RitheshHB23/cafeteriaa/pkg/resp"
	"github.com/RitheshHB23/cafeteriaa/services"

	"github.com/gin-gonic/gin"
)

type DishController struct{ Svc *services.DishService }

func NewDishController(s *services.DishService) *DishController {
	return &DishController{Svc: s}
}

// GET /api/dishes?category=
func (h *DishController) List(c *gin.Context) {
	dishes, err := h.Svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /api/dishes/popular
func (h *DishController) Popular(c *gin.Context) {
	dishes, err := h.Svc.Popular(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// POST /api/dishes
func (h *DishController) Create(c *gin.Context) {
	var req services.CreateDishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, dish)
}

package controllers

import (
	"github.com/RitheshHB23/cafeteriaa/pkg/resp"
	"github.com/RitheshHB23/cafeteriaa/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /api/categories
func (h *CategoryController) List(c *gin.Context) {
	cats, err := h.Svc.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /api/categories
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CreateCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

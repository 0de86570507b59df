package controllers

import (
	"errors"
	"net/http"

	"github.com/RitheshHB23/cafeteriaa/pkg/resp"
	"github.com/RitheshHB23/cafeteriaa/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{ Svc *services.NotificationService }

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{Svc: s}
}

// GET /api/notifications
func (h *NotificationController) List(c *gin.Context) {
	notifs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, notifs)
}

// PUT /api/notifications/:id/read
func (h *NotificationController) MarkRead(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			resp.NotFound(c, "Notification not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Notification marked as read")
}

// GET /api/notifications/unread/count
func (h *NotificationController) UnreadCount(c *gin.Context) {
	count, err := h.Svc.UnreadCount(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

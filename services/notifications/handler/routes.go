package handler

import (
	"github.com/fundlink/backoffice/services/notifications/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the notification service HTTP handlers
type Handler struct {
	notificationHandler *http.NotificationHandler
}

// NewHandler creates and initializes the notification handlers
func NewHandler(notificationHandler *http.NotificationHandler) *Handler {
	return &Handler{notificationHandler: notificationHandler}
}

// RegisterRoutes registers the notification endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/notifications")
	group.POST("/send-email", h.notificationHandler.SendEmail)
	group.POST("/send-sms", h.notificationHandler.SendSMS)
}

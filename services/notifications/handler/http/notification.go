package http

import (
	"net/http"

	"github.com/fundlink/backoffice/internal/pkg/logger"
	"github.com/fundlink/backoffice/internal/utils"
	"github.com/fundlink/backoffice/services/notifications"
	"github.com/labstack/echo/v4"
)

// SendEmailRequest is the admin payload for direct email dispatch
type SendEmailRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendSMSRequest is the admin payload for direct SMS dispatch
type SendSMSRequest struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

// NotificationHandler exposes direct dispatch endpoints (admin surface)
type NotificationHandler struct {
	gateway notifications.NotificationGW
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(gateway notifications.NotificationGW) *NotificationHandler {
	return &NotificationHandler{gateway: gateway}
}

// SendEmail handles direct email dispatch requests
func (h *NotificationHandler) SendEmail(c echo.Context) error {
	var req SendEmailRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email address is required")
	}

	sent, err := h.gateway.SendEmail(c.Request().Context(), req.Subject, req.Message, req.Email)
	if err != nil {
		logger.Error("Failed to dispatch email", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to dispatch email")
	}
	if !sent {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Provider rejected the email")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email sent successfully", nil)
}

// SendSMS handles direct SMS dispatch requests
func (h *NotificationHandler) SendSMS(c echo.Context) error {
	var req SendSMSRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	sent, err := h.gateway.SendSMS(c.Request().Context(), req.Message, req.PhoneNumber)
	if err != nil {
		logger.Error("Failed to dispatch SMS", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to dispatch SMS")
	}
	if !sent {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Provider rejected the SMS")
	}

	return utils.SuccessResponse(c, http.StatusOK, "SMS sent successfully", nil)
}

package gateway

import (
	"context"
	"fmt"
	"net/http"

	pkghttp "github.com/fundlink/backoffice/internal/pkg/http"
	"github.com/fundlink/backoffice/internal/pkg/logger"
	"github.com/fundlink/backoffice/services/notifications"
)

// emailRequest is the provider payload for email delivery
type emailRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

// smsRequest is the provider payload for SMS delivery
type smsRequest struct {
	Message     string `json:"message"`
	PhoneNumber string `json:"phone_number"`
}

// ProviderGW dispatches notifications through the provider's REST API
type ProviderGW struct {
	client *pkghttp.Client
}

// NewProviderGW creates a new notification provider gateway
func NewProviderGW(client *pkghttp.Client) notifications.NotificationGW {
	return &ProviderGW{client: client}
}

// SendEmail delivers an email through the provider
func (g *ProviderGW) SendEmail(ctx context.Context, subject, message, email string) (bool, error) {
	resp, err := g.client.Post(ctx, "/v1/email", emailRequest{
		Subject: subject,
		Message: message,
		Email:   email,
	})
	if err != nil {
		return false, fmt.Errorf("failed to reach notification provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("Email notification rejected by provider",
			logger.Int("status", resp.StatusCode),
		)
		return false, nil
	}

	return true, nil
}

// SendSMS delivers an SMS through the provider
func (g *ProviderGW) SendSMS(ctx context.Context, message, phoneNumber string) (bool, error) {
	resp, err := g.client.Post(ctx, "/v1/sms", smsRequest{
		Message:     message,
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		return false, fmt.Errorf("failed to reach notification provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("SMS notification rejected by provider",
			logger.Int("status", resp.StatusCode),
		)
		return false, nil
	}

	return true, nil
}

package notifications

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fundlink/backoffice/services/notifications NotificationGW

// NotificationGW delivers human-readable messages through an external
// provider. The returned bool reports delivery success; transport failures
// are returned as errors. Callers decide whether a failed delivery is fatal
// (the transaction workflow treats it as best-effort).
type NotificationGW interface {
	SendEmail(ctx context.Context, subject, message, email string) (bool, error)
	SendSMS(ctx context.Context, message, phoneNumber string) (bool, error)
}

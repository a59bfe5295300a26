package customers

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fundlink/backoffice/services/customers CustomerRepo

// CustomerRepo defines read/write access to customer records.
// Lookups return (nil, nil) when no customer exists for the given id.
type CustomerRepo interface {
	GetByID(ctx context.Context, customerID string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, customerID string) error
}

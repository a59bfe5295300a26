package customers

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fundlink/backoffice/services/customers CustomerUC

// CustomerUC represents the customer usecase interface
type CustomerUC interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByID(ctx context.Context, customerID string) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
}

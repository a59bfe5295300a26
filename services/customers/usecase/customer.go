package usecase

import (
	"context"
	"fmt"

	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/services/customers"
)

// CustomerUC implements the customers.CustomerUC interface
type CustomerUC struct {
	repo customers.CustomerRepo
}

// NewCustomerUC creates a new customer use case
func NewCustomerUC(repo customers.CustomerRepo) customers.CustomerUC {
	return &CustomerUC{repo: repo}
}

// CreateCustomer validates and stores a new customer record
func (uc *CustomerUC) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.IdentificationNumber == "" {
		return fmt.Errorf("identification number is required")
	}
	if customer.Name == "" {
		return fmt.Errorf("customer name is required")
	}
	if customer.AvailableBalance.IsNegative() {
		return fmt.Errorf("available balance must not be negative")
	}

	return uc.repo.Create(ctx, customer)
}

// GetCustomerByID retrieves a customer; (nil, nil) when it does not exist
func (uc *CustomerUC) GetCustomerByID(ctx context.Context, customerID string) (*models.Customer, error) {
	return uc.repo.GetByID(ctx, customerID)
}

// UpdateCustomer overwrites an existing customer record (administrative edit)
func (uc *CustomerUC) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.AvailableBalance.IsNegative() {
		return fmt.Errorf("available balance must not be negative")
	}

	existing, err := uc.repo.GetByID(ctx, customer.IdentificationNumber)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("customer with ID %s does not exist", customer.IdentificationNumber)
	}

	return uc.repo.Update(ctx, customer)
}

// DeleteCustomer removes a customer record
func (uc *CustomerUC) DeleteCustomer(ctx context.Context, customerID string) error {
	return uc.repo.Delete(ctx, customerID)
}

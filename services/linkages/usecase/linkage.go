package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/services/linkages"
)

// LinkageUC implements the linkages.LinkageUC interface
type LinkageUC struct {
	repo linkages.LinkageRepo
}

// NewLinkageUC creates a new linkage use case
func NewLinkageUC(repo linkages.LinkageRepo) linkages.LinkageUC {
	return &LinkageUC{repo: repo}
}

// CreateLinkage stores a linkage directly (administrative surface; the
// transaction workflow is the normal path for openings).
func (uc *LinkageUC) CreateLinkage(ctx context.Context, linkage *models.ActiveLinkage) error {
	if linkage.CustomerID == "" {
		return fmt.Errorf("customer ID is required")
	}
	if linkage.FundID <= 0 {
		return fmt.Errorf("fund ID must be positive")
	}
	if linkage.LinkageDate.IsZero() {
		linkage.LinkageDate = time.Now().UTC()
	}

	created, err := uc.repo.CreateIfAbsent(ctx, linkage)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("linkage already exists for customer %s and fund %d", linkage.CustomerID, linkage.FundID)
	}

	return nil
}

// GetLinkageByKey retrieves the linkage for a pair; (nil, nil) when absent
func (uc *LinkageUC) GetLinkageByKey(ctx context.Context, customerID string, fundID int) (*models.ActiveLinkage, error) {
	return uc.repo.GetByKey(ctx, customerID, fundID)
}

// GetLinkagesByCustomer returns all of a customer's open positions
func (uc *LinkageUC) GetLinkagesByCustomer(ctx context.Context, customerID string) ([]*models.ActiveLinkage, error) {
	return uc.repo.GetByCustomer(ctx, customerID)
}

// GetLinkagesByCategory returns the customer's open positions in a category
func (uc *LinkageUC) GetLinkagesByCategory(ctx context.Context, customerID, category string) ([]*models.ActiveLinkage, error) {
	return uc.repo.GetByCustomerAndCategory(ctx, customerID, category)
}

// DeleteLinkage removes the linkage for a pair
func (uc *LinkageUC) DeleteLinkage(ctx context.Context, customerID string, fundID int) error {
	return uc.repo.Delete(ctx, customerID, fundID)
}

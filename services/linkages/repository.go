package linkages

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fundlink/backoffice/services/linkages LinkageRepo

// LinkageRepo defines access to active linkage records, keyed by
// (customerID, fundID). GetByKey returns (nil, nil) when no linkage exists.
type LinkageRepo interface {
	GetByKey(ctx context.Context, customerID string, fundID int) (*models.ActiveLinkage, error)
	// CreateIfAbsent atomically creates the linkage only when none exists
	// for the pair; it reports whether the record was created.
	CreateIfAbsent(ctx context.Context, linkage *models.ActiveLinkage) (bool, error)
	Delete(ctx context.Context, customerID string, fundID int) error
	GetByCustomer(ctx context.Context, customerID string) ([]*models.ActiveLinkage, error)
	GetByCustomerAndCategory(ctx context.Context, customerID, category string) ([]*models.ActiveLinkage, error)
}

package linkages

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fundlink/backoffice/services/linkages LinkageUC

// LinkageUC represents the active linkage usecase interface
type LinkageUC interface {
	CreateLinkage(ctx context.Context, linkage *models.ActiveLinkage) error
	GetLinkageByKey(ctx context.Context, customerID string, fundID int) (*models.ActiveLinkage, error)
	GetLinkagesByCustomer(ctx context.Context, customerID string) ([]*models.ActiveLinkage, error)
	GetLinkagesByCategory(ctx context.Context, customerID, category string) ([]*models.ActiveLinkage, error)
	DeleteLinkage(ctx context.Context, customerID string, fundID int) error
}

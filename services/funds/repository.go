package funds

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fundlink/backoffice/services/funds FundRepo

// FundRepo defines read/write access to fund definitions.
// Lookups return (nil, nil) when no fund exists for the given id.
type FundRepo interface {
	GetByID(ctx context.Context, fundID int) (*models.Fund, error)
	GetAll(ctx context.Context) ([]*models.Fund, error)
	Create(ctx context.Context, fund *models.Fund) error
	Update(ctx context.Context, fund *models.Fund) error
	Delete(ctx context.Context, fundID int) error
}

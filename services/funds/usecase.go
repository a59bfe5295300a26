package funds

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fundlink/backoffice/services/funds FundUC

// FundUC represents the fund usecase interface
type FundUC interface {
	CreateFund(ctx context.Context, fund *models.Fund) error
	GetFundByID(ctx context.Context, fundID int) (*models.Fund, error)
	GetAllFunds(ctx context.Context) ([]*models.Fund, error)
	UpdateFund(ctx context.Context, fund *models.Fund) error
	DeleteFund(ctx context.Context, fundID int) error
}

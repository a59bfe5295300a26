package usecase

import (
	"context"
	"fmt"

	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/services/funds"
)

// FundUC implements the funds.FundUC interface
type FundUC struct {
	repo funds.FundRepo
}

// NewFundUC creates a new fund use case
func NewFundUC(repo funds.FundRepo) funds.FundUC {
	return &FundUC{repo: repo}
}

// CreateFund validates and stores a new fund definition
func (uc *FundUC) CreateFund(ctx context.Context, fund *models.Fund) error {
	if fund.ID <= 0 {
		return fmt.Errorf("fund id must be positive")
	}
	if fund.Name == "" {
		return fmt.Errorf("fund name is required")
	}
	if fund.MinimumAmount.IsNegative() {
		return fmt.Errorf("minimum amount must not be negative")
	}

	return uc.repo.Create(ctx, fund)
}

// GetFundByID retrieves a fund by id; (nil, nil) when it does not exist
func (uc *FundUC) GetFundByID(ctx context.Context, fundID int) (*models.Fund, error) {
	return uc.repo.GetByID(ctx, fundID)
}

// GetAllFunds retrieves every fund definition
func (uc *FundUC) GetAllFunds(ctx context.Context) ([]*models.Fund, error) {
	return uc.repo.GetAll(ctx)
}

// UpdateFund overwrites an existing fund definition. Historical linkage and
// transaction records keep their own snapshots of the fund name.
func (uc *FundUC) UpdateFund(ctx context.Context, fund *models.Fund) error {
	if fund.MinimumAmount.IsNegative() {
		return fmt.Errorf("minimum amount must not be negative")
	}

	existing, err := uc.repo.GetByID(ctx, fund.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("fund with ID %d does not exist", fund.ID)
	}

	return uc.repo.Update(ctx, fund)
}

// DeleteFund removes a fund definition
func (uc *FundUC) DeleteFund(ctx context.Context, fundID int) error {
	return uc.repo.Delete(ctx, fundID)
}

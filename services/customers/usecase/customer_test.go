package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/services/customers/mocks"
)

func validCustomer() *models.Customer {
	return &models.Customer{
		IdentificationNumber: "CUST-001",
		Name:                 "Maria Gomez",
		AvailableBalance:     decimal.NewFromInt(500000),
		Email:                "maria.gomez@example.com",
		Phone:                "+573001112233",
	}
}

func TestCreateCustomer(t *testing.T) {
	testCases := []struct {
		name      string
		customer  *models.Customer
		mockSetup func(ctx context.Context, repo *mocks.MockCustomerRepo)
		wantErr   bool
	}{
		{
			name:     "Success",
			customer: validCustomer(),
			mockSetup: func(ctx context.Context, repo *mocks.MockCustomerRepo) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "Missing Identification Number",
			customer: &models.Customer{
				Name:             "Maria Gomez",
				AvailableBalance: decimal.NewFromInt(500000),
			},
			mockSetup: func(ctx context.Context, repo *mocks.MockCustomerRepo) {},
			wantErr:   true,
		},
		{
			name: "Missing Name",
			customer: &models.Customer{
				IdentificationNumber: "CUST-001",
				AvailableBalance:     decimal.NewFromInt(500000),
			},
			mockSetup: func(ctx context.Context, repo *mocks.MockCustomerRepo) {},
			wantErr:   true,
		},
		{
			name: "Negative Balance",
			customer: &models.Customer{
				IdentificationNumber: "CUST-001",
				Name:                 "Maria Gomez",
				AvailableBalance:     decimal.NewFromInt(-1),
			},
			mockSetup: func(ctx context.Context, repo *mocks.MockCustomerRepo) {},
			wantErr:   true,
		},
		{
			name:     "Repository Error",
			customer: validCustomer(),
			mockSetup: func(ctx context.Context, repo *mocks.MockCustomerRepo) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCustomerRepo(ctrl)
			uc := NewCustomerUC(repo)

			ctx := context.Background()
			tc.mockSetup(ctx, repo)

			err := uc.CreateCustomer(ctx, tc.customer)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepo(ctrl)
	uc := NewCustomerUC(repo)

	ctx := context.Background()
	customer := validCustomer()

	repo.EXPECT().GetByID(ctx, "CUST-001").Return(validCustomer(), nil)
	repo.EXPECT().Update(ctx, customer).Return(nil)

	err := uc.UpdateCustomer(ctx, customer)
	assert.NoError(t, err)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepo(ctrl)
	uc := NewCustomerUC(repo)

	ctx := context.Background()
	repo.EXPECT().GetByID(ctx, "GHOST").Return(nil, nil)

	customer := validCustomer()
	customer.IdentificationNumber = "GHOST"

	err := uc.UpdateCustomer(ctx, customer)
	assert.Error(t, err)
}

func TestGetCustomerByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepo(ctrl)
	uc := NewCustomerUC(repo)

	ctx := context.Background()
	repo.EXPECT().GetByID(ctx, "CUST-001").Return(validCustomer(), nil)

	customer, err := uc.GetCustomerByID(ctx, "CUST-001")
	assert.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "Maria Gomez", customer.Name)
}

func TestGetCustomerByIDAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepo(ctrl)
	uc := NewCustomerUC(repo)

	ctx := context.Background()
	repo.EXPECT().GetByID(ctx, "GHOST").Return(nil, nil)

	customer, err := uc.GetCustomerByID(ctx, "GHOST")
	assert.NoError(t, err)
	assert.Nil(t, customer)
}

func TestDeleteCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepo(ctrl)
	uc := NewCustomerUC(repo)

	ctx := context.Background()
	repo.EXPECT().Delete(ctx, "CUST-001").Return(nil)

	assert.NoError(t, uc.DeleteCustomer(ctx, "CUST-001"))
}

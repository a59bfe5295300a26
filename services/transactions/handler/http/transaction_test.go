package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/services/transactions"
	"github.com/fundlink/backoffice/services/transactions/mocks"
)

func TestCreateTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	e := echo.New()
	requestBody := `{"customer_id":"CUST-001","fund_id":1,"operation_type":"OPENING","amount":"100000","notification_type":"EMAIL"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			assert.Equal(t, "CUST-001", tx.CustomerID)
			assert.Equal(t, 1, tx.FundID)
			assert.Equal(t, models.OperationOpening, tx.OperationType)
			assert.True(t, tx.Amount.Equal(decimal.NewFromInt(100000)))
			return nil
		})

	err := handler.CreateTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Transaction created successfully", response["message"])
}

func TestCreateTransaction_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTransaction_ErrorClassification(t *testing.T) {
	testCases := []struct {
		name         string
		workflowErr  error
		expectedCode int
	}{
		{
			name:         "Fund Not Found",
			workflowErr:  fmt.Errorf("the fund with ID 99 does not exist: %w", transactions.ErrFundNotFound),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Customer Not Found",
			workflowErr:  fmt.Errorf("the customer with ID GHOST does not exist: %w", transactions.ErrCustomerNotFound),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Amount Below Minimum",
			workflowErr:  fmt.Errorf("the amount must be greater than or equal to the minimum required for the fund FPV: %w", transactions.ErrAmountBelowMinimum),
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Insufficient Balance",
			workflowErr:  fmt.Errorf("insufficient balance to link to the fund FPV: %w", transactions.ErrInsufficientBalance),
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Duplicate Linkage",
			workflowErr:  fmt.Errorf("the fund FPV already has an opening for the customer Maria: %w", transactions.ErrDuplicateLinkage),
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Linkage Not Found",
			workflowErr:  fmt.Errorf("the fund FPV does not have an opening for the customer Maria: %w", transactions.ErrLinkageNotFound),
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid Operation Type",
			workflowErr:  fmt.Errorf("operation type %q is not supported: %w", "TRANSFER", transactions.ErrInvalidOperationType),
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid Amount",
			workflowErr:  fmt.Errorf("the amount -5 is not positive: %w", transactions.ErrInvalidAmount),
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Infrastructure Failure",
			workflowErr:  errors.New("connection refused"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTransactionUC(ctrl)
			handler := NewTransactionHandler(mockUC)

			e := echo.New()
			requestBody := `{"customer_id":"CUST-001","fund_id":1,"operation_type":"OPENING","amount":"100000"}`
			req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(requestBody))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mockUC.EXPECT().
				CreateTransaction(gomock.Any(), gomock.Any()).
				Return(tc.workflowErr)

			err := handler.CreateTransaction(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)

			var response map[string]interface{}
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, false, response["success"])
		})
	}
}

func TestGetTransactionByID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/id-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("transactionId")
	c.SetParamValues("id-1")

	mockUC.EXPECT().
		GetTransactionByID(gomock.Any(), "id-1").
		Return(&models.Transaction{TransactionID: "id-1", CustomerID: "CUST-001"}, nil)

	err := handler.GetTransactionByID(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("transactionId")
	c.SetParamValues("missing")

	mockUC.EXPECT().
		GetTransactionByID(gomock.Any(), "missing").
		Return(nil, nil)

	err := handler.GetTransactionByID(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllTransactions_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		GetAllTransactions(gomock.Any()).
		Return([]*models.Transaction{{TransactionID: "id-1"}}, nil)

	err := handler.GetAllTransactions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTransactionsByFundID_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/fund/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("fundId")
	c.SetParamValues("abc")

	err := handler.GetTransactionsByFundID(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTransactionsByCustomerID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/customer/CUST-001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customerId")
	c.SetParamValues("CUST-001")

	mockUC.EXPECT().
		GetTransactionsByCustomerID(gomock.Any(), "CUST-001").
		Return([]*models.Transaction{{TransactionID: "id-1", CustomerID: "CUST-001"}}, nil)

	err := handler.GetTransactionsByCustomerID(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/id-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("transactionId")
	c.SetParamValues("id-1")

	mockUC.EXPECT().
		DeleteTransaction(gomock.Any(), "id-1").
		Return(nil)

	err := handler.DeleteTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

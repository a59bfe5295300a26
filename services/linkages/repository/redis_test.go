package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

func setupLinkageRepoTest(t *testing.T) (*LinkageRepository, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() { db.Close() })
	return &LinkageRepository{client: db}, mock
}

func testLinkage() *models.ActiveLinkage {
	return &models.ActiveLinkage{
		FundID:       1,
		FundName:     "FPV_BTG_PACTUAL_RECAUDADORA",
		CustomerID:   "CUST-001",
		LinkedAmount: decimal.NewFromInt(100000),
		LinkageDate:  time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC),
		Category:     "FPV",
	}
}

func TestGetByKey(t *testing.T) {
	repo, mock := setupLinkageRepoTest(t)
	linkage := testLinkage()

	data, err := json.Marshal(linkage)
	require.NoError(t, err)
	mock.ExpectGet("linkage:CUST-001:1").SetVal(string(data))

	got, err := repo.GetByKey(context.Background(), "CUST-001", 1)
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "FPV_BTG_PACTUAL_RECAUDADORA", got.FundName)
	assert.True(t, got.LinkedAmount.Equal(decimal.NewFromInt(100000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByKeyAbsent(t *testing.T) {
	repo, mock := setupLinkageRepoTest(t)

	mock.ExpectGet("linkage:CUST-001:9").RedisNil()

	got, err := repo.GetByKey(context.Background(), "CUST-001", 9)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsent(t *testing.T) {
	repo, mock := setupLinkageRepoTest(t)
	linkage := testLinkage()

	data, err := json.Marshal(linkage)
	require.NoError(t, err)
	mock.ExpectSetNX("linkage:CUST-001:1", data, time.Duration(0)).SetVal(true)

	created, err := repo.CreateIfAbsent(context.Background(), linkage)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsentLosesRace(t *testing.T) {
	repo, mock := setupLinkageRepoTest(t)
	linkage := testLinkage()

	data, err := json.Marshal(linkage)
	require.NoError(t, err)
	mock.ExpectSetNX("linkage:CUST-001:1", data, time.Duration(0)).SetVal(false)

	created, err := repo.CreateIfAbsent(context.Background(), linkage)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLinkage(t *testing.T) {
	repo, mock := setupLinkageRepoTest(t)

	mock.ExpectDel("linkage:CUST-001:1").SetVal(1)

	err := repo.Delete(context.Background(), "CUST-001", 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByCustomer(t *testing.T) {
	repo, mock := setupLinkageRepoTest(t)

	first := testLinkage()
	second := testLinkage()
	second.FundID = 3
	second.FundName = "DEUDAPRIVADA"
	second.Category = "FIC"

	firstData, err := json.Marshal(first)
	require.NoError(t, err)
	secondData, err := json.Marshal(second)
	require.NoError(t, err)

	mock.ExpectScan(0, "linkage:CUST-001:*", 0).
		SetVal([]string{"linkage:CUST-001:1", "linkage:CUST-001:3"}, 0)
	mock.ExpectGet("linkage:CUST-001:1").SetVal(string(firstData))
	mock.ExpectGet("linkage:CUST-001:3").SetVal(string(secondData))

	got, err := repo.GetByCustomer(context.Background(), "CUST-001")
	assert.NoError(t, err)
	require.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByCustomerAndCategory(t *testing.T) {
	repo, mock := setupLinkageRepoTest(t)

	fpv := testLinkage()
	fic := testLinkage()
	fic.FundID = 3
	fic.Category = "FIC"

	fpvData, err := json.Marshal(fpv)
	require.NoError(t, err)
	ficData, err := json.Marshal(fic)
	require.NoError(t, err)

	mock.ExpectScan(0, "linkage:CUST-001:*", 0).
		SetVal([]string{"linkage:CUST-001:1", "linkage:CUST-001:3"}, 0)
	mock.ExpectGet("linkage:CUST-001:1").SetVal(string(fpvData))
	mock.ExpectGet("linkage:CUST-001:3").SetVal(string(ficData))

	got, err := repo.GetByCustomerAndCategory(context.Background(), "CUST-001", "FIC")
	assert.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].FundID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

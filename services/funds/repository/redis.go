package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fundlink/backoffice/internal/pkg/database"
	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/services/funds"
	"github.com/go-redis/redis/v8"
)

const fundKeyPrefix = "fund:"

func fundKey(fundID int) string {
	return fmt.Sprintf("%s%d", fundKeyPrefix, fundID)
}

// FundRepository stores fund definitions as JSON documents in Redis
type FundRepository struct {
	client *redis.Client
}

// NewFundRepository creates a new fund repository
func NewFundRepository(redisClient *database.RedisClient) funds.FundRepo {
	return &FundRepository{
		client: redisClient.GetClient(),
	}
}

// Create stores a new fund document
func (r *FundRepository) Create(ctx context.Context, fund *models.Fund) error {
	data, err := json.Marshal(fund)
	if err != nil {
		return fmt.Errorf("failed to marshal fund: %w", err)
	}

	return r.client.Set(ctx, fundKey(fund.ID), data, 0).Err()
}

// GetByID retrieves a fund by id, returning (nil, nil) when absent
func (r *FundRepository) GetByID(ctx context.Context, fundID int) (*models.Fund, error) {
	data, err := r.client.Get(ctx, fundKey(fundID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fund %d: %w", fundID, err)
	}

	var fund models.Fund
	if err := json.Unmarshal(data, &fund); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fund %d: %w", fundID, err)
	}

	return &fund, nil
}

// GetAll scans the fund keyspace and returns every fund document
func (r *FundRepository) GetAll(ctx context.Context) ([]*models.Fund, error) {
	result := []*models.Fund{}

	iter := r.client.Scan(ctx, 0, fundKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue // deleted between scan and get
			}
			return nil, fmt.Errorf("failed to get fund key %s: %w", iter.Val(), err)
		}

		var fund models.Fund
		if err := json.Unmarshal(data, &fund); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fund key %s: %w", iter.Val(), err)
		}
		result = append(result, &fund)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan funds: %w", err)
	}

	return result, nil
}

// Update overwrites an existing fund document
func (r *FundRepository) Update(ctx context.Context, fund *models.Fund) error {
	data, err := json.Marshal(fund)
	if err != nil {
		return fmt.Errorf("failed to marshal fund: %w", err)
	}

	return r.client.Set(ctx, fundKey(fund.ID), data, 0).Err()
}

// Delete removes a fund document
func (r *FundRepository) Delete(ctx context.Context, fundID int) error {
	return r.client.Del(ctx, fundKey(fundID)).Err()
}

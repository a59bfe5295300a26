package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fundlink/backoffice/internal/pkg/database"
	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/services/linkages"
	"github.com/go-redis/redis/v8"
)

const linkageKeyPrefix = "linkage:"

func linkageKey(customerID string, fundID int) string {
	return fmt.Sprintf("%s%s:%d", linkageKeyPrefix, customerID, fundID)
}

// LinkageRepository stores active linkages as JSON documents in Redis, one
// document per (customer, fund) pair.
type LinkageRepository struct {
	client *redis.Client
}

// NewLinkageRepository creates a new linkage repository
func NewLinkageRepository(redisClient *database.RedisClient) linkages.LinkageRepo {
	return &LinkageRepository{
		client: redisClient.GetClient(),
	}
}

// GetByKey retrieves the linkage for a pair, (nil, nil) when absent
func (r *LinkageRepository) GetByKey(ctx context.Context, customerID string, fundID int) (*models.ActiveLinkage, error) {
	data, err := r.client.Get(ctx, linkageKey(customerID, fundID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get linkage %s/%d: %w", customerID, fundID, err)
	}

	var linkage models.ActiveLinkage
	if err := json.Unmarshal(data, &linkage); err != nil {
		return nil, fmt.Errorf("failed to unmarshal linkage %s/%d: %w", customerID, fundID, err)
	}

	return &linkage, nil
}

// CreateIfAbsent writes the linkage with SETNX so that concurrent openings
// for the same pair cannot both succeed.
func (r *LinkageRepository) CreateIfAbsent(ctx context.Context, linkage *models.ActiveLinkage) (bool, error) {
	data, err := json.Marshal(linkage)
	if err != nil {
		return false, fmt.Errorf("failed to marshal linkage: %w", err)
	}

	created, err := r.client.SetNX(ctx, linkageKey(linkage.CustomerID, linkage.FundID), data, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to create linkage %s/%d: %w", linkage.CustomerID, linkage.FundID, err)
	}

	return created, nil
}

// Delete removes the linkage for a pair
func (r *LinkageRepository) Delete(ctx context.Context, customerID string, fundID int) error {
	return r.client.Del(ctx, linkageKey(customerID, fundID)).Err()
}

// GetByCustomer scans all linkages belonging to a customer
func (r *LinkageRepository) GetByCustomer(ctx context.Context, customerID string) ([]*models.ActiveLinkage, error) {
	result := []*models.ActiveLinkage{}

	iter := r.client.Scan(ctx, 0, linkageKeyPrefix+customerID+":*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue // closed between scan and get
			}
			return nil, fmt.Errorf("failed to get linkage key %s: %w", iter.Val(), err)
		}

		var linkage models.ActiveLinkage
		if err := json.Unmarshal(data, &linkage); err != nil {
			return nil, fmt.Errorf("failed to unmarshal linkage key %s: %w", iter.Val(), err)
		}
		result = append(result, &linkage)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan linkages: %w", err)
	}

	return result, nil
}

// GetByCustomerAndCategory returns the customer's linkages filtered by the
// category snapshot taken at opening time.
func (r *LinkageRepository) GetByCustomerAndCategory(ctx context.Context, customerID, category string) ([]*models.ActiveLinkage, error) {
	all, err := r.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result := []*models.ActiveLinkage{}
	for _, linkage := range all {
		if linkage.Category == category {
			result = append(result, linkage)
		}
	}

	return result, nil
}

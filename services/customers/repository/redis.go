package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fundlink/backoffice/internal/pkg/database"
	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/services/customers"
	"github.com/go-redis/redis/v8"
)

const customerKeyPrefix = "customer:"

func customerKey(customerID string) string {
	return customerKeyPrefix + customerID
}

// CustomerRepository stores customer records as JSON documents in Redis,
// keyed by identification number.
type CustomerRepository struct {
	client *redis.Client
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(redisClient *database.RedisClient) customers.CustomerRepo {
	return &CustomerRepository{
		client: redisClient.GetClient(),
	}
}

// Create stores a new customer document
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	data, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("failed to marshal customer: %w", err)
	}

	return r.client.Set(ctx, customerKey(customer.IdentificationNumber), data, 0).Err()
}

// GetByID retrieves a customer by identification number, (nil, nil) when absent
func (r *CustomerRepository) GetByID(ctx context.Context, customerID string) (*models.Customer, error) {
	data, err := r.client.Get(ctx, customerKey(customerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}

	var customer models.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer %s: %w", customerID, err)
	}

	return &customer, nil
}

// Update overwrites an existing customer document
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	data, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("failed to marshal customer: %w", err)
	}

	return r.client.Set(ctx, customerKey(customer.IdentificationNumber), data, 0).Err()
}

// Delete removes a customer document
func (r *CustomerRepository) Delete(ctx context.Context, customerID string) error {
	return r.client.Del(ctx, customerKey(customerID)).Err()
}

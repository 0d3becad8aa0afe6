// File: database/repository/availability/redis.go
package availabilityRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/utils"
)

// AvailableDaysKey is the single key holding the configured days.
const AvailableDaysKey = "available-days"

type redisAvailabilityRepo struct {
	client *redis.Client
}

// NewRedisAvailabilityRepo constructs an AvailabilityRepository backed by Redis.
func NewRedisAvailabilityRepo(client *redis.Client) AvailabilityRepository {
	return &redisAvailabilityRepo{client: client}
}

// Save replaces the persisted collection with records (full overwrite, not a merge).
func (r *redisAvailabilityRepo) Save(ctx context.Context, records []models.DayAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if records == nil {
		records = []models.DayAvailability{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal available days: %w", err)
	}
	if err := r.client.Set(ctx, AvailableDaysKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist available days: %w", err)
	}
	return nil
}

// Load returns the persisted collection. A missing or unreadable value is
// treated as "no configuration", never as a fatal error.
func (r *redisAvailabilityRepo) Load(ctx context.Context) ([]models.DayAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, AvailableDaysKey).Result()
	if err == redis.Nil {
		return []models.DayAvailability{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read available days: %w", err)
	}

	return decodeAvailableDays([]byte(data)), nil
}

// decodeAvailableDays parses the stored JSON document. An unreadable value is
// logged and treated as "no configuration".
func decodeAvailableDays(data []byte) []models.DayAvailability {
	var records []models.DayAvailability
	if err := json.Unmarshal(data, &records); err != nil {
		utils.GetLogger().Warn("Discarding corrupt available-days value", zap.Error(err))
		return []models.DayAvailability{}
	}
	if records == nil {
		records = []models.DayAvailability{}
	}
	return records
}

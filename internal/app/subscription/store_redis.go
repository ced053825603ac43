package subscription

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

// RedisStore keeps one hash per user. Usage lives in its own hash field so
// HIncrByFloat gives atomic per-user read-modify-write without a lock.
type RedisStore struct {
	db *redis.Client
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return &RedisStore{db: client}, nil
}

func subscriptionKey(userID string) string {
	return "subscription:" + userID
}

// Save writes the subscription and expires the record with the plan window.
func (s *RedisStore) Save(ctx context.Context, sub *model.UserSubscription) error {
	key := subscriptionKey(sub.UserID)
	fields := map[string]interface{}{
		"plan_id":    sub.PlanID,
		"start_date": sub.StartDate.UTC().Format(time.RFC3339),
		"end_date":   sub.EndDate.UTC().Format(time.RFC3339),
		"is_active":  strconv.FormatBool(sub.IsActive),
		"hours_used": sub.AudioHoursUsed,
	}
	pipe := s.db.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	if ttl := time.Until(sub.EndDate); ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

// Get loads a subscription hash back into the model.
func (s *RedisStore) Get(ctx context.Context, userID string) (*model.UserSubscription, error) {
	fields, err := s.db.HGetAll(ctx, subscriptionKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read subscription: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	startDate, err := time.Parse(time.RFC3339, fields["start_date"])
	if err != nil {
		return nil, fmt.Errorf("corrupt subscription record for %s: %w", userID, err)
	}
	endDate, err := time.Parse(time.RFC3339, fields["end_date"])
	if err != nil {
		return nil, fmt.Errorf("corrupt subscription record for %s: %w", userID, err)
	}
	hoursUsed, _ := strconv.ParseFloat(fields["hours_used"], 64)
	isActive, _ := strconv.ParseBool(fields["is_active"])

	return &model.UserSubscription{
		UserID:         userID,
		PlanID:         fields["plan_id"],
		StartDate:      startDate,
		EndDate:        endDate,
		IsActive:       isActive,
		AudioHoursUsed: hoursUsed,
	}, nil
}

// AddUsage atomically increments hours used and returns the new total.
func (s *RedisStore) AddUsage(ctx context.Context, userID string, hours float64) (float64, error) {
	key := subscriptionKey(userID)
	exists, err := s.db.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check subscription: %w", err)
	}
	if exists == 0 {
		return 0, ErrNotFound
	}
	total, err := s.db.HIncrByFloat(ctx, key, "hours_used", hours).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to update usage: %w", err)
	}
	return total, nil
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.db.Close()
}

package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedService(store Store, now time.Time) *Service {
	s := NewService(store)
	s.now = func() time.Time { return now }
	return s
}

func TestCreate(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		planID  string
		wantEnd time.Time
	}{
		{"starter", now.Add(72 * time.Hour)},
		{"professional", now.Add(7 * 24 * time.Hour)},
		{"business", now.Add(30 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.planID, func(t *testing.T) {
			svc := newFixedService(NewMemoryStore(), now)

			sub, err := svc.Create(context.Background(), "user-1", tt.planID)
			require.NoError(t, err)
			assert.Equal(t, "user-1", sub.UserID)
			assert.Equal(t, tt.planID, sub.PlanID)
			assert.True(t, sub.IsActive)
			assert.Zero(t, sub.AudioHoursUsed)
			assert.Equal(t, tt.wantEnd, sub.EndDate)

			stored, err := svc.store.Get(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.planID, stored.PlanID)
		})
	}
}

func TestCreateUnknownPlan(t *testing.T) {
	svc := NewService(NewMemoryStore())
	_, err := svc.Create(context.Background(), "user-1", "free-forever")
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestQuota(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("demo fallback when no record exists", func(t *testing.T) {
		svc := newFixedService(NewMemoryStore(), now)

		quota, err := svc.Quota(context.Background(), "user-without-sub")
		require.NoError(t, err)
		assert.Equal(t, 8.0, quota.RemainingHours)
		assert.Equal(t, 10.0, quota.TotalHours)
		assert.Equal(t, now.Add(7*24*time.Hour), quota.ExpiresAt)
	})

	t.Run("computed from stored subscription", func(t *testing.T) {
		store := NewMemoryStore()
		svc := newFixedService(store, now)

		_, err := svc.Create(context.Background(), "user-1", "starter")
		require.NoError(t, err)
		_, err = store.AddUsage(context.Background(), "user-1", 0.5)
		require.NoError(t, err)

		quota, err := svc.Quota(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1.5, quota.RemainingHours)
		assert.Equal(t, 2.0, quota.TotalHours)
	})

	t.Run("remaining clamps to zero when over quota", func(t *testing.T) {
		store := NewMemoryStore()
		svc := newFixedService(store, now)

		_, err := svc.Create(context.Background(), "user-1", "starter")
		require.NoError(t, err)
		_, err = store.AddUsage(context.Background(), "user-1", 5)
		require.NoError(t, err)

		quota, err := svc.Quota(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 0.0, quota.RemainingHours)
		assert.Equal(t, 2.0, quota.TotalHours)
	})
}

func TestAddUsage(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("rejects non-positive hours", func(t *testing.T) {
		svc := NewService(NewMemoryStore())
		_, err := svc.AddUsage(context.Background(), "user-1", 0)
		assert.ErrorIs(t, err, ErrInvalidHours)
		_, err = svc.AddUsage(context.Background(), "user-1", -1)
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("accumulates and returns refreshed quota", func(t *testing.T) {
		svc := newFixedService(NewMemoryStore(), now)
		_, err := svc.Create(context.Background(), "user-1", "professional")
		require.NoError(t, err)

		quota, err := svc.AddUsage(context.Background(), "user-1", 1.5)
		require.NoError(t, err)
		assert.Equal(t, 8.5, quota.RemainingHours)

		quota, err = svc.AddUsage(context.Background(), "user-1", 2.5)
		require.NoError(t, err)
		assert.Equal(t, 6.0, quota.RemainingHours)
	})

	t.Run("without a stored record falls back to demo quota", func(t *testing.T) {
		svc := newFixedService(NewMemoryStore(), now)
		quota, err := svc.AddUsage(context.Background(), "user-1", 1)
		require.NoError(t, err)
		assert.Equal(t, 8.0, quota.RemainingHours)
	})
}

func TestMemoryStoreConcurrentUsage(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	_, err := svc.Create(context.Background(), "user-1", "enterprise")
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = store.AddUsage(context.Background(), "user-1", 0.5)
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	sub, err := store.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, sub.AudioHoursUsed)
}

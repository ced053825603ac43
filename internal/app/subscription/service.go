package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nuworldagency/SpeechScribe/internal/app/model"
	"github.com/nuworldagency/SpeechScribe/internal/app/plan"
)

// ErrInvalidPlan is returned when a subscription references an unknown plan.
var ErrInvalidPlan = errors.New("invalid plan")

// ErrInvalidHours is returned for non-positive usage updates.
var ErrInvalidHours = errors.New("invalid audio hours")

// Service owns subscription lifecycle and quota computation on top of a
// Store. Plans come from the static catalog and are never mutated.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a subscription service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Plans returns the full tier catalog.
func (s *Service) Plans() []model.Plan {
	return plan.All()
}

// Create starts a new subscription for the user. The end date derives from
// the plan's duration class (72h, 7d or 30d).
func (s *Service) Create(ctx context.Context, userID, planID string) (*model.UserSubscription, error) {
	p, ok := plan.Find(planID)
	if !ok {
		return nil, ErrInvalidPlan
	}
	window, ok := p.Duration.Window()
	if !ok {
		return nil, fmt.Errorf("plan %s has invalid duration %q", p.ID, p.Duration)
	}

	start := s.now()
	sub := &model.UserSubscription{
		UserID:         userID,
		PlanID:         planID,
		StartDate:      start,
		EndDate:        start.Add(window),
		IsActive:       true,
		AudioHoursUsed: 0,
	}
	if err := s.store.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Quota computes the remaining-hours view for a user. Users with no stored
// subscription fall back to the demo professional tier with two hours used,
// which keeps the dashboard functional before checkout is wired up.
func (s *Service) Quota(ctx context.Context, userID string) (*model.TranscriptionQuota, error) {
	sub, err := s.store.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		sub = s.demoSubscription(userID)
	} else if err != nil {
		return nil, err
	}

	p, ok := plan.Find(sub.PlanID)
	if !ok {
		return nil, ErrInvalidPlan
	}

	remaining := p.MaxAudioHours - sub.AudioHoursUsed
	if remaining < 0 {
		remaining = 0
	}
	return &model.TranscriptionQuota{
		RemainingHours: remaining,
		TotalHours:     p.MaxAudioHours,
		ExpiresAt:      sub.EndDate,
	}, nil
}

// AddUsage records consumed audio hours and returns the refreshed quota.
func (s *Service) AddUsage(ctx context.Context, userID string, hours float64) (*model.TranscriptionQuota, error) {
	if hours <= 0 {
		return nil, ErrInvalidHours
	}
	if _, err := s.store.AddUsage(ctx, userID, hours); err != nil {
		if errors.Is(err, ErrNotFound) {
			// No stored record to update; the demo fallback is read-only.
			return s.Quota(ctx, userID)
		}
		return nil, err
	}
	return s.Quota(ctx, userID)
}

func (s *Service) demoSubscription(userID string) *model.UserSubscription {
	window, _ := model.Duration7d.Window()
	start := s.now()
	return &model.UserSubscription{
		UserID:         userID,
		PlanID:         "professional",
		StartDate:      start,
		EndDate:        start.Add(window),
		IsActive:       true,
		AudioHoursUsed: 2,
	}
}

package services

import (
	"context"
	"errors"

	apierrors "github.com/nuworldagency/SpeechScribe/internal/api/errors"
	"github.com/nuworldagency/SpeechScribe/internal/app/model"
	"github.com/nuworldagency/SpeechScribe/internal/app/subscription"
)

// SubscriptionServiceImpl adapts the subscription domain service to the API
// error taxonomy.
type SubscriptionServiceImpl struct {
	service *subscription.Service
}

// NewSubscriptionService wraps the domain subscription service.
func NewSubscriptionService(service *subscription.Service) SubscriptionService {
	return &SubscriptionServiceImpl{service: service}
}

func (s *SubscriptionServiceImpl) Plans(_ context.Context) []model.Plan {
	return s.service.Plans()
}

func (s *SubscriptionServiceImpl) Quota(ctx context.Context, userID string) (*model.TranscriptionQuota, error) {
	quota, err := s.service.Quota(ctx, userID)
	if err != nil {
		return nil, apierrors.NewInternalError(err.Error())
	}
	return quota, nil
}

func (s *SubscriptionServiceImpl) Create(ctx context.Context, userID, planID string) (*model.UserSubscription, error) {
	sub, err := s.service.Create(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, subscription.ErrInvalidPlan) {
			return nil, apierrors.NewBadRequestError("Invalid plan")
		}
		return nil, apierrors.NewInternalError(err.Error())
	}
	return sub, nil
}

func (s *SubscriptionServiceImpl) AddUsage(ctx context.Context, userID string, hours float64) (*model.TranscriptionQuota, error) {
	quota, err := s.service.AddUsage(ctx, userID, hours)
	if err != nil {
		if errors.Is(err, subscription.ErrInvalidHours) {
			return nil, apierrors.NewBadRequestError("Invalid audio hours")
		}
		return nil, apierrors.NewInternalError(err.Error())
	}
	return quota, nil
}

package subscription

import (
	"context"
	"errors"

	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

// ErrNotFound is returned when a user has no stored subscription.
var ErrNotFound = errors.New("subscription not found")

// Store persists user subscriptions. AddUsage must be an atomic
// read-modify-write so concurrent usage updates for the same user never
// lose increments.
type Store interface {
	Save(ctx context.Context, sub *model.UserSubscription) error
	Get(ctx context.Context, userID string) (*model.UserSubscription, error)
	AddUsage(ctx context.Context, userID string, hours float64) (float64, error)
}

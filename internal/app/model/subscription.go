package model

import "time"

// PlanDuration is the access window a plan grants after purchase.
type PlanDuration string

const (
	Duration72h PlanDuration = "72h"
	Duration7d  PlanDuration = "7d"
	Duration30d PlanDuration = "30d"
)

// Window returns the concrete time offset for the duration class.
func (d PlanDuration) Window() (time.Duration, bool) {
	switch d {
	case Duration72h:
		return 72 * time.Hour, true
	case Duration7d:
		return 7 * 24 * time.Hour, true
	case Duration30d:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Plan is an immutable subscription tier from the static catalog.
type Plan struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Price         int          `json:"price"`
	Duration      PlanDuration `json:"duration"`
	MaxAudioHours float64      `json:"maxAudioHours"`
	Features      []string     `json:"features"`
}

// UserSubscription ties a user to a plan for a bounded window.
type UserSubscription struct {
	UserID         string    `json:"userId"`
	PlanID         string    `json:"planId"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	IsActive       bool      `json:"isActive"`
	AudioHoursUsed float64   `json:"audioHoursUsed"`
}

// TranscriptionQuota is the derived usage view for a subscription.
// RemainingHours is clamped at zero when usage exceeds the plan ceiling.
type TranscriptionQuota struct {
	RemainingHours float64   `json:"remainingHours"`
	TotalHours     float64   `json:"totalHours"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

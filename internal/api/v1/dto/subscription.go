package dto

// CreateSubscriptionRequest starts a subscription on the named plan.
type CreateSubscriptionRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

// UpdateUsageRequest records consumed audio hours.
type UpdateUsageRequest struct {
	AudioHours float64 `json:"audioHours" binding:"required,gt=0"`
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nuworldagency/SpeechScribe/internal/api/middleware"
	"github.com/nuworldagency/SpeechScribe/internal/api/v1/dto"
	"github.com/nuworldagency/SpeechScribe/internal/api/v1/services"
)

// SubscriptionHandler handles the quota and subscription endpoints. All
// routes sit behind the auth middleware; the user id comes from the request
// context.
type SubscriptionHandler struct {
	service services.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(service services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// GetQuota handles GET /subscription.
// Returns the remaining/total hours and expiry for the caller's plan.
func (h *SubscriptionHandler) GetQuota(c *gin.Context) {
	quota, err := h.service.Quota(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quota)
}

// Create handles POST /subscription.
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := middleware.BindJSON(c, &req, "Plan ID is required"); err != nil {
		middleware.HandleError(c, err)
		return
	}

	sub, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req.PlanID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// UpdateUsage handles PUT /subscription.
// Records consumed audio hours and returns the refreshed quota.
func (h *SubscriptionHandler) UpdateUsage(c *gin.Context) {
	var req dto.UpdateUsageRequest
	if err := middleware.BindJSON(c, &req, "Invalid audio hours"); err != nil {
		middleware.HandleError(c, err)
		return
	}

	quota, err := h.service.AddUsage(c.Request.Context(), middleware.UserID(c), req.AudioHours)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quota)
}

// ListPlans handles GET /plans.
// The catalog is public; no auth required.
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Plans(c.Request.Context()))
}

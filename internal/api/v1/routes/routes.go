package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/nuworldagency/SpeechScribe/internal/api/middleware"
	"github.com/nuworldagency/SpeechScribe/internal/api/v1/handlers"
	"github.com/nuworldagency/SpeechScribe/internal/api/v1/services"
)

// ServiceContainer holds everything the handlers need.
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	SubscriptionService  services.SubscriptionService
	WebhookAuthToken     string
	AuthSecret           string
	Logger               *slog.Logger
}

// RegisterRoutes wires the public API onto the router. Paths mirror the
// dashboard front-end's expectations.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	router.POST("/transcribe", middleware.RateLimit(rate.Limit(1), 3), transcriptionHandler.Transcribe)
	router.GET("/transcribe", transcriptionHandler.GetStatus)

	webhookHandler := handlers.NewWebhookHandler(container.WebhookAuthToken, container.Logger)
	router.POST("/webhook/assemblyai", webhookHandler.HandleAssemblyAI)

	subscriptionHandler := handlers.NewSubscriptionHandler(container.SubscriptionService)
	router.GET("/plans", subscriptionHandler.ListPlans)

	subscription := router.Group("/subscription")
	subscription.Use(middleware.RequireUser(container.AuthSecret))
	{
		subscription.GET("", subscriptionHandler.GetQuota)
		subscription.POST("", subscriptionHandler.Create)
		subscription.PUT("", subscriptionHandler.UpdateUsage)
	}
}

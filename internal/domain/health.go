package domain

import "context"

// HealthStatus reports the state of the service and its collaborators.
type HealthStatus struct {
	Status          string `json:"status"`
	EmailConfigured bool   `json:"email_configured"`
	RedisAvailable  bool   `json:"redis_available"`
	Environment     string `json:"environment"`
}

// HealthUsecase defines the interface for the health check.
type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

package usecase

import (
	"context"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/redis"
)

// MailerStatus is the health-check view of the email dispatcher.
type MailerStatus interface {
	IsConfigured() bool
}

type healthUsecase struct {
	mailer      MailerStatus
	environment string
}

// NewHealthUsecase creates a new health usecase
func NewHealthUsecase(mailer MailerStatus, environment string) domain.HealthUsecase {
	return &healthUsecase{
		mailer:      mailer,
		environment: environment,
	}
}

func (uc *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		Status:          "operational",
		EmailConfigured: uc.mailer.IsConfigured(),
		RedisAvailable:  redis.HealthCheck(ctx) == nil,
		Environment:     uc.environment,
	}
}

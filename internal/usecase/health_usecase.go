package usecase

import (
	"context"
	"time"

	"portfolio-backend/internal/domain"
)

type healthUsecase struct {
	startedAt time.Time
}

func NewHealthUsecase() domain.HealthUsecase {
	return &healthUsecase{startedAt: time.Now()}
}

func (u *healthUsecase) Check(ctx context.Context) *domain.Health {
	return &domain.Health{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(u.startedAt).Round(time.Second).String(),
	}
}

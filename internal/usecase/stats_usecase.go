package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

// statsUsecase keeps the visit counter in process memory. Counts reset on
// restart; message totals come from the contact store and survive.
type statsUsecase struct {
	store     domain.ContactStore
	visits    atomic.Int64
	lastVisit atomic.Int64 // unix nanos, 0 until the first visit
}

func NewStatsUsecase(store domain.ContactStore) domain.StatsUsecase {
	return &statsUsecase{store: store}
}

func (u *statsUsecase) RecordVisit() {
	u.visits.Add(1)
	u.lastVisit.Store(time.Now().UnixNano())
}

func (u *statsUsecase) Snapshot(ctx context.Context) (*domain.Stats, error) {
	messages, err := u.store.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	lastUpdated := time.Now().UTC()
	if nanos := u.lastVisit.Load(); nanos > 0 {
		lastUpdated = time.Unix(0, nanos).UTC()
	}

	return &domain.Stats{
		TotalVisits:   u.visits.Load(),
		TotalMessages: messages,
		LastUpdated:   lastUpdated,
	}, nil
}

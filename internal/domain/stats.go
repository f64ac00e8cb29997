package domain

import (
	"context"
	"time"
)

// Health is the payload of the health endpoint.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime"`
}

// Stats is the payload of the public stats endpoint.
type Stats struct {
	TotalVisits   int64     `json:"totalVisits"`
	TotalMessages int64     `json:"totalMessages"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

type HealthUsecase interface {
	Check(ctx context.Context) *Health
}

type StatsUsecase interface {
	// RecordVisit counts one incoming request. Safe for concurrent use.
	RecordVisit()
	Snapshot(ctx context.Context) (*Stats, error)
}

// AdminUsecase exposes the read side of the contact store.
type AdminUsecase interface {
	ListMessages(ctx context.Context, limit int) ([]StoredContact, error)
}

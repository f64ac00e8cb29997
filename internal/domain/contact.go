package domain

import (
	"context"
	"errors"
	"time"
)

// ErrStoreDisabled is returned by read operations when no persistent store is
// configured. The write path treats the disabled store as a successful no-op.
var ErrStoreDisabled = errors.New("contact store is not configured")

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// StoredContact is a persisted contact-form submission. Records are append-only:
// they are never mutated or deleted by this service.
type StoredContact struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Message  string    `json:"message"`
	SourceIP string    `json:"sourceAddress"`
	StoredAt time.Time `json:"timestamp"`
}

// ContactStore is the persistence adapter for submissions. Two implementations
// exist: the Postgres-backed store and a disabled no-op used when DATABASE_URL
// is absent, so call sites never branch on configuration.
type ContactStore interface {
	Store(ctx context.Context, contact *StoredContact) error
	Count(ctx context.Context) (int64, error)
	// ListRecent returns at most limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]StoredContact, error)
}

// ContactNotifier dispatches the two notification messages for an accepted
// submission: the operator notice first, then the sender acknowledgment.
// When no mail transport is configured it succeeds without sending.
type ContactNotifier interface {
	Notify(ctx context.Context, contact *StoredContact) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates, persists and dispatches a submission. sourceIP is the
	// originating client address. Returns the completion timestamp.
	Submit(ctx context.Context, req *ContactRequest, sourceIP string) (time.Time, error)
}

// Package noop provides the disabled variant of the contact store, used when
// DATABASE_URL is not set. Writes succeed without storing anything so the
// submission pipeline proceeds as if persistence had happened; reads report
// the store as unavailable.
package noop

import (
	"context"

	"portfolio-backend/internal/domain"
)

type contactStore struct{}

func NewContactStore() domain.ContactStore {
	return &contactStore{}
}

func (s *contactStore) Store(ctx context.Context, contact *domain.StoredContact) error {
	return nil
}

func (s *contactStore) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *contactStore) ListRecent(ctx context.Context, limit int) ([]domain.StoredContact, error) {
	return nil, domain.ErrStoreDisabled
}

package usecase

import (
	"context"
	"errors"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

// maxAdminListLimit caps the admin message listing.
const maxAdminListLimit = 50

type adminUsecase struct {
	store domain.ContactStore
}

func NewAdminUsecase(store domain.ContactStore) domain.AdminUsecase {
	return &adminUsecase{store: store}
}

func (u *adminUsecase) ListMessages(ctx context.Context, limit int) ([]domain.StoredContact, error) {
	if limit <= 0 || limit > maxAdminListLimit {
		limit = maxAdminListLimit
	}

	contacts, err := u.store.ListRecent(ctx, limit)
	if err != nil {
		if errors.Is(err, domain.ErrStoreDisabled) {
			return nil, apperror.Unavailable("Contact store is not available")
		}
		return nil, err
	}
	return contacts, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// opTimeout bounds each outbound call (store write, mail dispatch) so a hung
// database or relay cannot hold a request open indefinitely.
const opTimeout = 10 * time.Second

// emailPattern accepts the simple local@domain.tld shape: no whitespace, an @,
// and at least one dot after it. Intentionally looser than full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s]+$`)

type contactUsecase struct {
	store    domain.ContactStore
	notifier domain.ContactNotifier
	validate *validator.Validate
}

// NewContactUsecase creates the submission pipeline. The store and notifier may
// be disabled variants; the pipeline never branches on configuration.
func NewContactUsecase(store domain.ContactStore, notifier domain.ContactNotifier, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		store:    store,
		notifier: notifier,
		validate: validate,
	}
}

// Submit runs the pipeline for one submission: validate, persist, notify.
// Persistence strictly precedes notification so an acknowledgment email is
// never sent for a submission that failed to be recorded. A validation error
// is reported precisely; store and dispatch failures surface as opaque
// internal errors.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest, sourceIP string) (time.Time, error) {
	submission := &domain.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}

	if err := uc.validateRequest(submission); err != nil {
		return time.Time{}, err
	}

	contact := &domain.StoredContact{
		ID:       uuid.New().String(),
		Name:     submission.Name,
		Email:    submission.Email,
		Message:  submission.Message,
		SourceIP: sourceIP,
		StoredAt: time.Now().UTC(),
	}

	storeCtx, cancelStore := context.WithTimeout(ctx, opTimeout)
	defer cancelStore()
	if err := uc.store.Store(storeCtx, contact); err != nil {
		// Fatal: no notification is attempted for a submission that was
		// not recorded while a store is configured.
		return time.Time{}, apperror.Internal(fmt.Errorf("failed to store submission: %w", err))
	}

	notifyCtx, cancelNotify := context.WithTimeout(ctx, opTimeout)
	defer cancelNotify()
	if err := uc.notifier.Notify(notifyCtx, contact); err != nil {
		return time.Time{}, apperror.Internal(fmt.Errorf("failed to dispatch notifications: %w", err))
	}

	return time.Now().UTC(), nil
}

// validateRequest checks the rules in order: required fields first, then the
// email shape. The first violated rule wins.
func (uc *contactUsecase) validateRequest(req *domain.ContactRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperror.BadRequest(strings.ToLower(verrs[0].Field()) + " is required")
		}
		return apperror.BadRequest("invalid request payload")
	}

	if !emailPattern.MatchString(req.Email) {
		return apperror.BadRequest("invalid email format")
	}

	return nil
}

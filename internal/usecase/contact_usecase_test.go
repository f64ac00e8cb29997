package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock collaborators

type MockContactStore struct {
	mock.Mock
}

func (m *MockContactStore) Store(ctx context.Context, contact *domain.StoredContact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactStore) ListRecent(ctx context.Context, limit int) ([]domain.StoredContact, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoredContact), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, contact *domain.StoredContact) error {
	return m.Called(ctx, contact).Error(0)
}

func newPipeline() (*MockContactStore, *MockNotifier, domain.ContactUsecase) {
	store := new(MockContactStore)
	notifier := new(MockNotifier)
	uc := usecase.NewContactUsecase(store, notifier, validator.New())
	return store, notifier, uc
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Ann",
		Email:   "ann@x.com",
		Message: "Hi",
	}
}

func TestSubmitValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.ContactRequest)
		wantErr string
	}{
		{"missing name", func(r *domain.ContactRequest) { r.Name = "" }, "name is required"},
		{"missing email", func(r *domain.ContactRequest) { r.Email = "" }, "email is required"},
		{"missing message", func(r *domain.ContactRequest) { r.Message = "" }, "message is required"},
		{"whitespace-only name", func(r *domain.ContactRequest) { r.Name = "   " }, "name is required"},
		{"whitespace-only message", func(r *domain.ContactRequest) { r.Message = "\n\t" }, "message is required"},
		{"email without at", func(r *domain.ContactRequest) { r.Email = "ann.x.com" }, "invalid email format"},
		{"email without dot after at", func(r *domain.ContactRequest) { r.Email = "ann@xcom" }, "invalid email format"},
		{"email with space", func(r *domain.ContactRequest) { r.Email = "ann @x.com" }, "invalid email format"},
		{"email with empty local part", func(r *domain.ContactRequest) { r.Email = "@x.com" }, "invalid email format"},
		{"email ending in dot", func(r *domain.ContactRequest) { r.Email = "ann@x." }, "invalid email format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, notifier, uc := newPipeline()
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Submit(context.Background(), req, "203.0.113.7")

			assert.Error(t, err)
			var appErr *apperror.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, tc.wantErr, appErr.Message)

			// An invalid submission never reaches persistence or dispatch
			store.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
			notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitMissingFieldCheckedBeforeEmailShape(t *testing.T) {
	store, notifier, uc := newPipeline()
	req := &domain.ContactRequest{Name: "", Email: "not-an-email", Message: "Hi"}

	_, err := uc.Submit(context.Background(), req, "203.0.113.7")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "name is required", appErr.Message)
	store.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestSubmitSuccess(t *testing.T) {
	store, notifier, uc := newPipeline()

	var stored *domain.StoredContact
	store.On("Store", mock.Anything, mock.AnythingOfType("*domain.StoredContact")).
		Return(nil).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.StoredContact)
		})
	notifier.On("Notify", mock.Anything, mock.AnythingOfType("*domain.StoredContact")).Return(nil)

	before := time.Now().UTC()
	completedAt, err := uc.Submit(context.Background(), &domain.ContactRequest{
		Name:    "  Ann  ",
		Email:   " ann@x.com ",
		Message: " Hi ",
	}, "203.0.113.7")

	assert.NoError(t, err)
	assert.False(t, completedAt.IsZero())
	assert.False(t, completedAt.Before(before))

	// Stored record carries trimmed fields, the captured source address and
	// a server-assigned ID and timestamp
	if assert.NotNil(t, stored) {
		assert.Equal(t, "Ann", stored.Name)
		assert.Equal(t, "ann@x.com", stored.Email)
		assert.Equal(t, "Hi", stored.Message)
		assert.Equal(t, "203.0.113.7", stored.SourceIP)
		assert.NotEmpty(t, stored.ID)
		assert.False(t, stored.StoredAt.Before(before))
	}

	// The notifier sees the exact record that was stored
	notifier.AssertCalled(t, "Notify", mock.Anything, stored)
}

func TestSubmitStoreFailureSkipsNotification(t *testing.T) {
	store, notifier, uc := newPipeline()
	store.On("Store", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := uc.Submit(context.Background(), validRequest(), "203.0.113.7")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestSubmitDispatchFailureIsInternal(t *testing.T) {
	store, notifier, uc := newPipeline()
	store.On("Store", mock.Anything, mock.Anything).Return(nil)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("smtp auth failed"))

	_, err := uc.Submit(context.Background(), validRequest(), "203.0.113.7")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
}

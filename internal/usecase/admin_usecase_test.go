package usecase_test

import (
	"context"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/noop"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminListMessages(t *testing.T) {
	t.Run("Should report 503 when the store is disabled", func(t *testing.T) {
		uc := usecase.NewAdminUsecase(noop.NewContactStore())

		_, err := uc.ListMessages(context.Background(), 10)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 503, appErr.Code)
	})

	t.Run("Should cap the limit at 50", func(t *testing.T) {
		store := new(MockContactStore)
		store.On("ListRecent", mock.Anything, 50).Return([]domain.StoredContact{}, nil)
		uc := usecase.NewAdminUsecase(store)

		_, err := uc.ListMessages(context.Background(), 500)

		assert.NoError(t, err)
		store.AssertCalled(t, "ListRecent", mock.Anything, 50)
	})

	t.Run("Should default a non-positive limit to 50", func(t *testing.T) {
		store := new(MockContactStore)
		store.On("ListRecent", mock.Anything, 50).Return([]domain.StoredContact{}, nil)
		uc := usecase.NewAdminUsecase(store)

		_, err := uc.ListMessages(context.Background(), 0)

		assert.NoError(t, err)
		store.AssertCalled(t, "ListRecent", mock.Anything, 50)
	})
}

func TestStatsSnapshot(t *testing.T) {
	t.Run("Should combine visit counter and store count", func(t *testing.T) {
		store := new(MockContactStore)
		store.On("Count", mock.Anything).Return(int64(3), nil)
		uc := usecase.NewStatsUsecase(store)

		uc.RecordVisit()
		uc.RecordVisit()

		stats, err := uc.Snapshot(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(2), stats.TotalVisits)
		assert.Equal(t, int64(3), stats.TotalMessages)
		assert.False(t, stats.LastUpdated.IsZero())
	})

	t.Run("Should report zero messages with a disabled store", func(t *testing.T) {
		uc := usecase.NewStatsUsecase(noop.NewContactStore())

		stats, err := uc.Snapshot(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalMessages)
	})
}

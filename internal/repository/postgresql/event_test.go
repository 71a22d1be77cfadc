package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_db "github.com/bidhuripriyanshu/transport-scheduler/internal/db/mocks"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository/postgresql"
)

func TestEventRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("status notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewEventRepo(mockDB)

		now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
		event := &repository.Event{
			Kind:       repository.EventKindStatusNotification,
			ShipmentID: "abc123",
			Status:     "approved",
			Message:    "Ready for pickup",
			RideNo:     444,
			CreatedAt:  now,
		}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(event.Kind),
			gomock.Eq(event.ShipmentID),
			gomock.Eq(event.Status),
			gomock.Eq(event.Message),
			gomock.Eq(event.RideNo),
			gomock.Eq(""),
			gomock.Eq(""),
			gomock.Eq(""),
			gomock.Eq(now),
		).Return(nil, nil)

		err := repo.Create(ctx, event)
		assert.NoError(t, err)
	})

	t.Run("confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewEventRepo(mockDB)

		event := &repository.Event{
			Kind:           repository.EventKindConfirmation,
			ConfirmationID: "conf-7",
			Name:           "Priya",
			Action:         "accept",
			CreatedAt:      time.Now().UTC(),
		}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(event.Kind),
			gomock.Eq(""),
			gomock.Eq(""),
			gomock.Eq(""),
			gomock.Eq(0),
			gomock.Eq(event.ConfirmationID),
			gomock.Eq(event.Name),
			gomock.Eq(event.Action),
			gomock.Eq(event.CreatedAt),
		).Return(nil, nil)

		err := repo.Create(ctx, event)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewEventRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Create(ctx, &repository.Event{Kind: repository.EventKindStatusNotification})
		assert.Equal(t, expectedErr, err)
	})
}

func TestEventRepo_GetNotifications(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_db.NewMockDB(ctrl)
	repo := postgresql.NewEventRepo(mockDB)

	mockDB.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(repository.EventKindStatusNotification)).
		DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
			assert.Contains(t, query, "ORDER BY created_at DESC")
			*dest.(*[]*repository.Event) = []*repository.Event{
				{ID: 2, Kind: repository.EventKindStatusNotification, ShipmentID: "abc123"},
				{ID: 1, Kind: repository.EventKindStatusNotification, ShipmentID: "def456"},
			}
			return nil
		})

	events, err := repo.GetNotifications(ctx)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, int64(2), events[0].ID)
}

func TestEventRepo_GetConfirmations(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_db.NewMockDB(ctrl)
	repo := postgresql.NewEventRepo(mockDB)

	mockDB.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(repository.EventKindConfirmation)).
		DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
			assert.Contains(t, query, "ORDER BY created_at ASC")
			*dest.(*[]*repository.Event) = []*repository.Event{
				{ID: 1, Kind: repository.EventKindConfirmation, ConfirmationID: "conf-7"},
			}
			return nil
		})

	events, err := repo.GetConfirmations(ctx)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "conf-7", events[0].ConfirmationID)
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/cache"
	mock_db "github.com/bidhuripriyanshu/transport-scheduler/internal/db/mocks"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	mock_storage "github.com/bidhuripriyanshu/transport-scheduler/internal/storage/mocks"
)

type storageFixture struct {
	storage      *Storage
	db           *mock_db.MockDB
	tx           *mock_db.MockTx
	shipmentRepo *mock_storage.MockShipmentRepository
	eventRepo    *mock_storage.MockEventRepository
	feedbackRepo *mock_storage.MockFeedbackRepository
	outboxRepo   *mock_storage.MockOutboxTaskRepository
}

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newStorageFixture(t *testing.T) *storageFixture {
	ctrl := gomock.NewController(t)

	f := &storageFixture{
		db:           mock_db.NewMockDB(ctrl),
		tx:           mock_db.NewMockTx(ctrl),
		shipmentRepo: mock_storage.NewMockShipmentRepository(ctrl),
		eventRepo:    mock_storage.NewMockEventRepository(ctrl),
		feedbackRepo: mock_storage.NewMockFeedbackRepository(ctrl),
		outboxRepo:   mock_storage.NewMockOutboxTaskRepository(ctrl),
	}

	shipmentCache := cache.NewShipmentCache(f.shipmentRepo)
	f.storage = NewStorage(f.db, f.shipmentRepo, f.eventRepo, f.feedbackRepo, f.outboxRepo, shipmentCache, "shipment_events")
	f.storage.timeNow = func() time.Time { return fixedNow }
	f.storage.newID = func() string { return "ship-fixed-id" }

	return f
}

func (f *storageFixture) expectTx() {
	f.db.EXPECT().BeginTx(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func validShipment() Shipment {
	return Shipment{
		UserID:           "user-1",
		Location:         "Delhi",
		Pickup:           "Warehouse 4",
		Destination:      "Mumbai",
		DateTime:         time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		GoodsDescription: "Electronics",
		VehicleType:      "truck",
		Photo:            "https://img.example.com/goods.jpg",
	}
}

func TestCreateShipment(t *testing.T) {
	t.Run("new shipment starts pending with a fresh id", func(t *testing.T) {
		f := newStorageFixture(t)
		f.expectTx()

		f.shipmentRepo.EXPECT().
			CreateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, shipment *repository.Shipment) error {
				assert.Equal(t, "ship-fixed-id", shipment.ID)
				assert.Equal(t, string(StatusPending), shipment.Status)
				assert.Equal(t, fixedNow, shipment.CreatedAt)
				return nil
			})
		f.outboxRepo.EXPECT().
			CreateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Equal(t, "shipment_events", task.Topic)
				var payload repository.ShipmentEventPayload
				require.NoError(t, json.Unmarshal(task.Payload, &payload))
				assert.Equal(t, "shipment_created", payload.Action)
				assert.Equal(t, "ship-fixed-id", payload.ShipmentID)
				assert.Equal(t, string(StatusPending), payload.NewStatus)
				return nil
			})
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		created, err := f.storage.CreateShipment(context.Background(), validShipment())
		require.NoError(t, err)
		assert.Equal(t, "ship-fixed-id", created.ID)
		assert.Equal(t, StatusPending, created.Status)

		// Created shipment is immediately served from cache.
		fromCache, err := f.storage.GetShipment(context.Background(), "ship-fixed-id")
		require.NoError(t, err)
		assert.Equal(t, StatusPending, fromCache.Status)
	})

	t.Run("all violations are reported together", func(t *testing.T) {
		f := newStorageFixture(t)

		_, err := f.storage.CreateShipment(context.Background(), Shipment{UserID: "user-1"})
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{
			"Date and time are required",
			"Photo is required",
			"Goods description is required",
			"Vehicle type is required",
		}, validationErr.Violations)
	})
}

func TestTransitionShipment(t *testing.T) {
	t.Run("writes notification and outbox task with the update", func(t *testing.T) {
		f := newStorageFixture(t)
		f.expectTx()

		existing := &repository.Shipment{
			ID:     "abc123",
			UserID: "user-1",
			Status: string(StatusPending),
		}

		f.shipmentRepo.EXPECT().
			GetByIDTx(gomock.Any(), f.tx, "abc123").
			Return(existing, nil)
		f.shipmentRepo.EXPECT().
			UpdateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, shipment *repository.Shipment) error {
				assert.Equal(t, string(StatusConfirmed), shipment.Status)
				assert.Equal(t, fixedNow, shipment.UpdatedAt)
				return nil
			})
		f.eventRepo.EXPECT().
			CreateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, event *repository.Event) error {
				assert.Equal(t, repository.EventKindStatusNotification, event.Kind)
				assert.Equal(t, "abc123", event.ShipmentID)
				assert.Equal(t, NotificationApproved, event.Status)
				assert.Equal(t, 444, event.RideNo)
				assert.Equal(t, "Your shipment is now confirmed", event.Message)
				return nil
			})
		f.outboxRepo.EXPECT().
			CreateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				var payload repository.ShipmentEventPayload
				require.NoError(t, json.Unmarshal(task.Payload, &payload))
				assert.Equal(t, "shipment_transitioned", payload.Action)
				assert.Equal(t, string(StatusPending), payload.OldStatus)
				assert.Equal(t, string(StatusConfirmed), payload.NewStatus)
				assert.Equal(t, 444, payload.RideNo)
				return nil
			})
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		shipment, err := f.storage.TransitionShipment(context.Background(), "abc123", StatusConfirmed, "", "dispatch@example.com")
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, shipment.Status)
	})

	t.Run("missing shipment writes nothing", func(t *testing.T) {
		f := newStorageFixture(t)
		f.expectTx()

		f.shipmentRepo.EXPECT().
			GetByIDTx(gomock.Any(), f.tx, "missing").
			Return(nil, repository.ErrObjectNotFound)

		_, err := f.storage.TransitionShipment(context.Background(), "missing", StatusDelivered, "", "dispatch@example.com")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("status outside the lifecycle is rejected before any work", func(t *testing.T) {
		f := newStorageFixture(t)

		_, err := f.storage.TransitionShipment(context.Background(), "abc123", Status("teleported"), "", "dispatch@example.com")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Invalid status: teleported", validationErr.Error())
	})

	t.Run("custom message is stored unchanged", func(t *testing.T) {
		f := newStorageFixture(t)
		f.expectTx()

		f.shipmentRepo.EXPECT().
			GetByIDTx(gomock.Any(), f.tx, "abc123").
			Return(&repository.Shipment{ID: "abc123", Status: string(StatusConfirmed)}, nil)
		f.shipmentRepo.EXPECT().
			UpdateTx(gomock.Any(), f.tx, gomock.Any()).
			Return(nil)
		f.eventRepo.EXPECT().
			CreateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, event *repository.Event) error {
				assert.Equal(t, "Driver called ahead", event.Message)
				return nil
			})
		f.outboxRepo.EXPECT().
			CreateTx(gomock.Any(), f.tx, gomock.Any()).
			Return(nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		_, err := f.storage.TransitionShipment(context.Background(), "abc123", StatusInTransit, "Driver called ahead", "dispatch@example.com")
		require.NoError(t, err)
	})
}

func TestNotify(t *testing.T) {
	t.Run("ride number is derived from the shipment id", func(t *testing.T) {
		f := newStorageFixture(t)

		f.shipmentRepo.EXPECT().
			GetByID(gomock.Any(), "abc123").
			Return(&repository.Shipment{ID: "abc123"}, nil)
		f.eventRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *repository.Event) error {
				assert.Equal(t, repository.EventKindStatusNotification, event.Kind)
				assert.Equal(t, 444, event.RideNo)
				assert.Equal(t, "Out for delivery", event.Message)
				return nil
			})

		notification, err := f.storage.Notify(context.Background(), "abc123", NotificationApproved, "Out for delivery")
		require.NoError(t, err)
		assert.Equal(t, 444, notification.RideNo)
		assert.Equal(t, "Out for delivery", notification.Message)
	})

	t.Run("unknown shipment is rejected", func(t *testing.T) {
		f := newStorageFixture(t)

		f.shipmentRepo.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(nil, repository.ErrObjectNotFound)

		_, err := f.storage.Notify(context.Background(), "missing", NotificationApproved, "Out for delivery")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("missing fields are listed together", func(t *testing.T) {
		f := newStorageFixture(t)

		_, err := f.storage.Notify(context.Background(), "", "", "")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Shipment ID is required, Status is required, Message is required", validationErr.Error())
	})

	t.Run("status outside the notification vocabulary is rejected", func(t *testing.T) {
		f := newStorageFixture(t)

		_, err := f.storage.Notify(context.Background(), "abc123", "lost", "Out for delivery")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Invalid status: lost", validationErr.Error())
	})
}

func TestConfirm(t *testing.T) {
	t.Run("confirmation recorded", func(t *testing.T) {
		f := newStorageFixture(t)

		f.eventRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *repository.Event) error {
				assert.Equal(t, repository.EventKindConfirmation, event.Kind)
				assert.Equal(t, "conf-7", event.ConfirmationID)
				assert.Equal(t, "Priya", event.Name)
				assert.Equal(t, "accept", event.Action)
				return nil
			})

		confirmation, err := f.storage.Confirm(context.Background(), "conf-7", "Priya", "accept")
		require.NoError(t, err)
		assert.Equal(t, "conf-7", confirmation.ConfirmationID)
	})

	t.Run("missing fields are listed together", func(t *testing.T) {
		f := newStorageFixture(t)

		_, err := f.storage.Confirm(context.Background(), "", "", "")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Confirmation ID is required, Name is required, Action is required", validationErr.Error())
	})
}

func TestRecordFeedback(t *testing.T) {
	t.Run("valid feedback is stored", func(t *testing.T) {
		f := newStorageFixture(t)

		f.feedbackRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fb *repository.Feedback) error {
				assert.Equal(t, "abc123", fb.ShipmentID)
				assert.Equal(t, 444, fb.RideNo)
				assert.Equal(t, 5, fb.Rating)
				return nil
			})

		feedback, err := f.storage.RecordFeedback(context.Background(), "abc123", 444, 5, "Great service")
		require.NoError(t, err)
		assert.Equal(t, 5, feedback.Rating)
	})

	t.Run("rating above five persists nothing", func(t *testing.T) {
		f := newStorageFixture(t)

		_, err := f.storage.RecordFeedback(context.Background(), "abc123", 444, 6, "")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), "Rating must be between 1 and 5")
	})

	t.Run("zero rating reads as missing", func(t *testing.T) {
		f := newStorageFixture(t)

		_, err := f.storage.RecordFeedback(context.Background(), "abc123", 444, 0, "")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), "Rating is required")
	})
}

func TestGetShipment(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f := newStorageFixture(t)

		f.shipmentRepo.EXPECT().
			GetByID(gomock.Any(), "ship-2").
			Return(&repository.Shipment{ID: "ship-2", Status: string(StatusInTransit)}, nil)

		shipment, err := f.storage.GetShipment(context.Background(), "ship-2")
		require.NoError(t, err)
		assert.Equal(t, StatusInTransit, shipment.Status)

		// Second read is served from cache, no further repo call.
		again, err := f.storage.GetShipment(context.Background(), "ship-2")
		require.NoError(t, err)
		assert.Equal(t, shipment.ID, again.ID)
	})

	t.Run("repository errors pass through", func(t *testing.T) {
		f := newStorageFixture(t)

		f.shipmentRepo.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(nil, repository.ErrObjectNotFound)

		_, err := f.storage.GetShipment(context.Background(), "missing")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestListOperations(t *testing.T) {
	t.Run("shipments keep repository order", func(t *testing.T) {
		f := newStorageFixture(t)

		f.shipmentRepo.EXPECT().
			GetAll(gomock.Any()).
			Return([]*repository.Shipment{
				{ID: "first"},
				{ID: "second"},
			}, nil)

		shipments, err := f.storage.ListShipments(context.Background())
		require.NoError(t, err)
		require.Len(t, shipments, 2)
		assert.Equal(t, "first", shipments[0].ID)
		assert.Equal(t, "second", shipments[1].ID)
	})

	t.Run("notifications map event fields", func(t *testing.T) {
		f := newStorageFixture(t)

		f.eventRepo.EXPECT().
			GetNotifications(gomock.Any()).
			Return([]*repository.Event{
				{ID: 2, ShipmentID: "abc123", Status: NotificationApproved, Message: "Ready", RideNo: 444},
			}, nil)

		notifications, err := f.storage.ListNotifications(context.Background())
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, "abc123", notifications[0].ShipmentID)
		assert.Equal(t, 444, notifications[0].RideNo)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		f := newStorageFixture(t)

		f.feedbackRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, errors.New("connection reset"))

		_, err := f.storage.ListFeedback(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get feedback")
	})
}

func TestStatusEcho(t *testing.T) {
	assert.Equal(t, NotificationApproved, statusEcho(StatusConfirmed))
	assert.Equal(t, NotificationRejected, statusEcho(StatusRejected))
	assert.Equal(t, NotificationPending, statusEcho(StatusPending))
	assert.Equal(t, NotificationPending, statusEcho(StatusInTransit))
	assert.Equal(t, NotificationPending, statusEcho(StatusDelivered))
}

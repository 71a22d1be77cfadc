package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_db "github.com/bidhuripriyanshu/transport-scheduler/internal/db/mocks"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	mock_storage "github.com/bidhuripriyanshu/transport-scheduler/internal/storage/mocks"
)

type recordingProducer struct {
	mu       sync.Mutex
	messages []struct {
		topic string
		key   []byte
		value []byte
	}
	failSend bool
	closed   bool
}

func (p *recordingProducer) SendMessage(ctx context.Context, topic string, key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failSend {
		return errors.New("broker unavailable")
	}
	p.messages = append(p.messages, struct {
		topic string
		key   []byte
		value []byte
	}{topic, key, value})
	return nil
}

func (p *recordingProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func publisherFixture(t *testing.T, producer Producer) (*Publisher, *mock_db.MockDB, *mock_db.MockTx, *mock_storage.MockOutboxTaskRepository) {
	ctrl := gomock.NewController(t)
	mockDB := mock_db.NewMockDB(ctrl)
	mockTx := mock_db.NewMockTx(ctrl)
	mockRepo := mock_storage.NewMockOutboxTaskRepository(ctrl)

	p := NewPublisher(mockDB, mockRepo, producer, PublisherConfig{
		PollInterval: 10 * time.Millisecond,
		BatchSize:    10,
		MaxAttempts:  3,
	}, zap.NewNop())

	return p, mockDB, mockTx, mockRepo
}

func TestPublisher_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("sends task and marks it done", func(t *testing.T) {
		producer := &recordingProducer{}
		p, mockDB, mockTx, mockRepo := publisherFixture(t, producer)

		task := &repository.OutboxTask{
			ID:      uuid.New(),
			Status:  repository.TaskStatusCreated,
			Payload: []byte(`{"action":"shipment_created"}`),
			Topic:   "shipment_events",
		}

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		mockRepo.EXPECT().
			GetProcessableTasks(gomock.Any(), mockTx, 10).
			Return([]*repository.OutboxTask{task}, nil)
		mockRepo.EXPECT().
			UpdateTaskStatusTx(gomock.Any(), mockTx, task.ID, repository.TaskStatusProcessing, 0, nil, nil).
			Return(nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
		mockRepo.EXPECT().
			UpdateTaskStatus(gomock.Any(), mockDB, task.ID, repository.TaskStatusDone, 0, nil, gomock.Any()).
			Return(nil)

		require.NoError(t, p.processBatch(ctx))

		require.Len(t, producer.messages, 1)
		assert.Equal(t, "shipment_events", producer.messages[0].topic)
		assert.Equal(t, task.ID.String(), string(producer.messages[0].key))
		assert.Equal(t, []byte(`{"action":"shipment_created"}`), producer.messages[0].value)
	})

	t.Run("send failure marks task failed with the error", func(t *testing.T) {
		producer := &recordingProducer{failSend: true}
		p, mockDB, mockTx, mockRepo := publisherFixture(t, producer)

		task := &repository.OutboxTask{
			ID:       uuid.New(),
			Status:   repository.TaskStatusCreated,
			Payload:  []byte(`{}`),
			Topic:    "shipment_events",
			Attempts: 1,
		}

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		mockRepo.EXPECT().
			GetProcessableTasks(gomock.Any(), mockTx, 10).
			Return([]*repository.OutboxTask{task}, nil)
		mockRepo.EXPECT().
			UpdateTaskStatusTx(gomock.Any(), mockTx, task.ID, repository.TaskStatusProcessing, 1, nil, nil).
			Return(nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
		mockRepo.EXPECT().
			UpdateTaskStatus(gomock.Any(), mockDB, task.ID, repository.TaskStatusFailed, 2, gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ interface{}, _ uuid.UUID, _ repository.TaskStatus, _ int, lastError *string, _ *time.Time) error {
				require.NotNil(t, lastError)
				assert.Equal(t, "broker unavailable", *lastError)
				return nil
			})

		require.NoError(t, p.processBatch(ctx))
		assert.Empty(t, producer.messages)
	})

	t.Run("empty batch just commits", func(t *testing.T) {
		producer := &recordingProducer{}
		p, mockDB, mockTx, mockRepo := publisherFixture(t, producer)

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		mockRepo.EXPECT().
			GetProcessableTasks(gomock.Any(), mockTx, 10).
			Return(nil, nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		require.NoError(t, p.processBatch(ctx))
		assert.Empty(t, producer.messages)
	})
}

func TestPublisher_ShutdownClosesProducer(t *testing.T) {
	producer := &recordingProducer{}
	p, _, _, _ := publisherFixture(t, producer)

	p.Shutdown()

	producer.mu.Lock()
	defer producer.mu.Unlock()
	assert.True(t, producer.closed)
}

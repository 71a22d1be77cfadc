package postgresql_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_db "github.com/bidhuripriyanshu/transport-scheduler/internal/db/mocks"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository/postgresql"
)

func TestOutboxTaskRepo_GetProcessableTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("claims rows on the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_db.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		taskID := uuid.New()
		mockTx.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Eq(repository.TaskStatusCreated),
				gomock.Eq(repository.TaskStatusFailed),
				gomock.Any(),
				gomock.Eq(10),
			).
			DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
				assert.Contains(t, query, "FOR UPDATE SKIP LOCKED")
				tasks := dest.(*[]*repository.OutboxTask)
				*tasks = []*repository.OutboxTask{{ID: taskID, Status: repository.TaskStatusCreated}}
				return nil
			})

		tasks, err := repo.GetProcessableTasks(ctx, mockTx, 10)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, taskID, tasks[0].ID)
	})

	t.Run("select error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_db.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		mockTx.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		tasks, err := repo.GetProcessableTasks(ctx, mockTx, 5)
		assert.Nil(t, tasks)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "processable"))
	})
}

func TestOutboxTaskRepo_UpdateTaskStatusTx(t *testing.T) {
	ctx := context.Background()

	t.Run("marks task processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_db.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		taskID := uuid.New()
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq(taskID),
				gomock.Eq(repository.TaskStatusProcessing),
				gomock.Eq(0),
				gomock.Nil(),
				gomock.Nil(),
			).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateTaskStatusTx(ctx, mockTx, taskID, repository.TaskStatusProcessing, 0, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("missing task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_db.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateTaskStatusTx(ctx, mockTx, uuid.New(), repository.TaskStatusDone, 0, nil, nil)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

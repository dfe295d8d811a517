package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"commandhotline/internal/birthday"
	mockbirthday "commandhotline/internal/birthday/mock"
	"commandhotline/internal/worker"
)

func makePurgeJob(id int64) *river.Job[birthday.PurgeArgs] {
	return &river.Job[birthday.PurgeArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   birthday.PurgeArgs{},
	}
}

func TestPurgeWorker_Work(t *testing.T) {
	service := mockbirthday.NewMockService(gomock.NewController(t))
	w := worker.NewPurgeWorker(service)

	service.EXPECT().PurgeStale(gomock.Any()).Return(int64(2), nil)

	require.NoError(t, w.Work(context.Background(), makePurgeJob(1)))
}

func TestPurgeWorker_Work_Fails(t *testing.T) {
	service := mockbirthday.NewMockService(gomock.NewController(t))
	w := worker.NewPurgeWorker(service)

	service.EXPECT().PurgeStale(gomock.Any()).Return(int64(0), errors.New("db down"))

	require.Error(t, w.Work(context.Background(), makePurgeJob(2)))
}

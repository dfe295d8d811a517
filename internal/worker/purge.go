package worker

import (
	"commandhotline/internal/birthday"
	"commandhotline/pkg/logger"
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PurgeWorker removes disabled birthday records past the retention period.
// Records of members who left are kept for a while in case they return; this
// worker is the other end of that bargain.
type PurgeWorker struct {
	river.WorkerDefaults[birthday.PurgeArgs]

	service birthday.Service
}

// NewPurgeWorker constructs a PurgeWorker.
func NewPurgeWorker(service birthday.Service) *PurgeWorker {
	return &PurgeWorker{service: service}
}

// Work deletes all stale disabled records in one pass.
func (w *PurgeWorker) Work(ctx context.Context, job *river.Job[birthday.PurgeArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	purged, err := w.service.PurgeStale(ctx)
	if err != nil {
		return fmt.Errorf("could not purge stale birthdays: %w", err)
	}

	logger.Debug(ctx, "purge finished", zap.Int64("purged", purged))

	return nil
}

package worker

import (
	"commandhotline/internal/birthday"
	"commandhotline/pkg/logger"
	"commandhotline/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotifyWorker announces all birthdays due today. A record is only marked as
// notified after its congratulation was delivered, so transient delivery
// failures are retried on the next run without double-greeting anyone.
type NotifyWorker struct {
	river.WorkerDefaults[birthday.NotifyArgs]

	service   birthday.Service
	announcer Announcer

	// now is swapped in tests.
	now func() time.Time
}

// NewNotifyWorker constructs a NotifyWorker.
func NewNotifyWorker(service birthday.Service, announcer Announcer) *NotifyWorker {
	return &NotifyWorker{service: service, announcer: announcer, now: time.Now}
}

// Work announces every due birthday. Members who silently left their chat are
// disabled instead of retried. The job fails when any delivery fails, which
// lets River retry the remaining records; already greeted members are skipped
// on the retry because they were marked notified.
func (w *NotifyWorker) Work(ctx context.Context, job *river.Job[birthday.NotifyArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	due, err := w.service.Due(ctx, w.now())
	if err != nil {
		return fmt.Errorf("could not list due birthdays: %w", err)
	}

	var failed int

	for _, record := range due {
		recordCtx := logger.WithFields(ctx,
			zap.Int64("userId", int64(record.UserID)),
			zap.Int64("chatId", int64(record.ChatID)))

		if err := w.announcer.AnnounceBirthday(record); err != nil {
			if errors.Is(err, serrors.ErrNotFound) {
				// the member left without the bot noticing
				logger.Warn(recordCtx, "member gone, disabling birthday", zap.Error(err))

				if err := w.service.SetEnabled(recordCtx, record.UserID, record.ChatID, false); err != nil {
					logger.Error(recordCtx, "could not disable birthday", zap.Error(err))
				}

				continue
			}

			failed++

			logger.Error(recordCtx, "could not announce birthday", zap.Error(err))

			continue
		}

		if err := w.service.MarkNotified(recordCtx, record.UserID, record.ChatID); err != nil {
			logger.Error(recordCtx, "could not mark birthday notified", zap.Error(err))
		}
	}

	if failed > 0 {
		return serrors.With(serrors.ErrUnavailable,
			"%d of %d birthday announcements failed", failed, len(due))
	}

	if len(due) > 0 {
		logger.Info(ctx, "birthday announcements delivered", zap.Int("count", len(due)))
	}

	return nil
}

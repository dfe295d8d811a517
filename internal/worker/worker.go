// Package worker runs the background jobs: announcing due birthdays and
// purging stale records. Jobs are queued and scheduled through River on top
// of the application's PostgreSQL database.
package worker

import (
	"commandhotline/internal/birthday"
	"commandhotline/internal/config"
	"commandhotline/pkg/domain"
	"commandhotline/pkg/logger"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configures the background job schedule.
type Options struct {
	// NotifyInterval is how often due birthdays are checked and announced.
	NotifyInterval time.Duration
	// PurgeInterval is how often stale disabled records are purged.
	PurgeInterval time.Duration
	// MaxWorkers limits concurrent jobs on the default queue.
	MaxWorkers int
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		NotifyInterval: cfg.Birthday.NotifyInterval,
		PurgeInterval:  cfg.Birthday.PurgeInterval,
		MaxWorkers:     cfg.Birthday.QueueMaxWorkers,
	}
}

// Announcer delivers one congratulation to the chat a birthday belongs to.
// The bot transport implements it.
//
//go:generate mockgen -package mockworker -source=worker.go -destination=mock/mockworker.go *
type Announcer interface {
	AnnounceBirthday(record domain.Birthday) error
}

// Start registers the workers, schedules the periodic jobs and starts the
// queue client. Both periodic jobs also run once at startup so a restarted
// bot catches up immediately.
func Start(ctx context.Context,
	options Options,
	dbPool *pgxpool.Pool,
	service birthday.Service,
	announcer Announcer,
) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewNotifyWorker(service, announcer))
	river.AddWorker(workers, NewPurgeWorker(service))

	periodicJobs := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(options.NotifyInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return birthday.NotifyArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
		river.NewPeriodicJob(
			river.PeriodicInterval(options.PurgeInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return birthday.PurgeArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

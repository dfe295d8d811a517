// Package birthday implements the birthday feature: parsing user-provided
// dates, storing them per chat member and deciding who is congratulated when.
package birthday

import (
	"commandhotline/internal/config"
	"commandhotline/pkg/domain"
	"commandhotline/pkg/logger"
	"commandhotline/pkg/serrors"
	"commandhotline/pkg/storage"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Options configures the birthday service.
type Options struct {
	// RetentionDays is how long a disabled record survives before PurgeStale
	// removes it.
	RetentionDays int
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{RetentionDays: cfg.Birthday.RetentionDays}
}

type service struct {
	options Options
	storage storage.Storage

	// now is swapped in tests.
	now func() time.Time
}

// New creates a storage-backed birthday Service.
func New(options Options, str storage.Storage) Service {
	return &service{options: options, storage: str, now: time.Now}
}

func (s *service) Set(ctx context.Context,
	userID domain.UserID,
	chatID domain.ChatID,
	text string,
) (domain.Birthday, error) {
	parsed, err := ParseDate(text, s.now())
	if err != nil {
		return domain.Birthday{}, err
	}

	var stored domain.Birthday

	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err = tx.UpsertBirthday(ctx, domain.Birthday{
			UserID:  userID,
			ChatID:  chatID,
			Year:    parsed.Year,
			Month:   parsed.Month,
			Day:     parsed.Day,
			Enabled: true,
		})
		if err != nil {
			return fmt.Errorf("could not store birthday: %w", err)
		}

		// set on the day itself: announce soon instead of waiting for the
		// next periodic run.
		if now := s.now(); parsed.Month == now.Month() && parsed.Day == now.Day() {
			if _, err := tx.AddJob(ctx, NotifyArgs{}, nil); err != nil {
				return fmt.Errorf("could not enqueue notify job: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return domain.Birthday{}, fmt.Errorf("could not set birthday: %w", err)
	}

	logger.Debug(ctx, "birthday stored",
		zap.Int64("userId", int64(userID)),
		zap.Int64("chatId", int64(chatID)),
		zap.String("date", stored.String()))

	return stored, nil
}

func (s *service) Get(ctx context.Context,
	userID domain.UserID,
	chatID domain.ChatID,
) (*domain.Birthday, error) {
	b, err := s.storage.Birthday(ctx, userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("could not get birthday: %w", err)
	}

	if b == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no birthday stored")
	}

	return b, nil
}

func (s *service) Delete(ctx context.Context, userID domain.UserID, chatID domain.ChatID) error {
	deleted, err := s.storage.DeleteBirthday(ctx, userID, chatID)
	if err != nil {
		return fmt.Errorf("could not delete birthday: %w", err)
	}

	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "no birthday to delete")
	}

	logger.Debug(ctx, "birthday deleted",
		zap.Int64("userId", int64(userID)),
		zap.Int64("chatId", int64(chatID)))

	return nil
}

func (s *service) SetEnabled(ctx context.Context,
	userID domain.UserID,
	chatID domain.ChatID,
	enabled bool,
) error {
	if err := s.storage.SetBirthdayEnabled(ctx, userID, chatID, enabled); err != nil {
		return fmt.Errorf("could not update birthday: %w", err)
	}

	return nil
}

func (s *service) Due(ctx context.Context, on time.Time) ([]domain.Birthday, error) {
	due, err := s.storage.DueBirthdays(ctx, on)
	if err != nil {
		return nil, fmt.Errorf("could not list due birthdays: %w", err)
	}

	return due, nil
}

func (s *service) MarkNotified(ctx context.Context, userID domain.UserID, chatID domain.ChatID) error {
	if err := s.storage.MarkNotified(ctx, userID, chatID, s.now()); err != nil {
		return fmt.Errorf("could not mark birthday notified: %w", err)
	}

	return nil
}

func (s *service) PurgeStale(ctx context.Context) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -s.options.RetentionDays)

	purged, err := s.storage.PurgeDisabledBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("could not purge stale birthdays: %w", err)
	}

	if purged > 0 {
		logger.Info(ctx, "purged stale birthdays", zap.Int64("count", purged))
	}

	return purged, nil
}

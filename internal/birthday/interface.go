package birthday

import (
	"commandhotline/pkg/domain"
	"context"
	"time"
)

// Service is the birthday feature as seen by the chat transport and the
// background workers.
//
//go:generate mockgen -package mockbirthday -source=interface.go -destination=mock/mockbirthday.go *
type Service interface {
	// Set parses the user-provided date text and stores the birthday for the
	// given member and chat. When the date is today, a notification job is
	// enqueued immediately so the member does not wait for the next periodic
	// run. The stored record is returned.
	Set(ctx context.Context, userID domain.UserID, chatID domain.ChatID, text string) (domain.Birthday, error)
	// Get returns the stored birthday or a not-found error.
	Get(ctx context.Context, userID domain.UserID, chatID domain.ChatID) (*domain.Birthday, error)
	// Delete removes the stored birthday. Deleting a missing record yields a
	// not-found error so the transport can answer distinctly.
	Delete(ctx context.Context, userID domain.UserID, chatID domain.ChatID) error
	// SetEnabled flips notifications for an existing record; missing records
	// are ignored. Used by the member join/leave hooks.
	SetEnabled(ctx context.Context, userID domain.UserID, chatID domain.ChatID, enabled bool) error

	// Due lists the birthdays to congratulate on the given date.
	Due(ctx context.Context, on time.Time) ([]domain.Birthday, error)
	// MarkNotified stamps a record as congratulated now.
	MarkNotified(ctx context.Context, userID domain.UserID, chatID domain.ChatID) error
	// PurgeStale deletes disabled records past the retention period and
	// returns how many were removed.
	PurgeStale(ctx context.Context) (int64, error)
}

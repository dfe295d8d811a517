package storage

import (
	"commandhotline/pkg/domain"
	"context"
	"time"
)

// BirthdayStorage defines the persistence operations for birthday records.
// Records are keyed by (user, chat); a user may have independent records in
// several chats.
type BirthdayStorage interface {
	// UpsertBirthday inserts the record or, when a record for the same
	// (user, chat) already exists, replaces its date fields. The Enabled flag is
	// only taken from the input on insert; updates leave it untouched. The
	// stored row is returned, including generated timestamps.
	UpsertBirthday(ctx context.Context, b domain.Birthday) (domain.Birthday, error)
	// Birthday fetches the record for the given user and chat. Returns nil when
	// no record exists.
	Birthday(ctx context.Context, userID domain.UserID, chatID domain.ChatID) (*domain.Birthday, error)
	// DeleteBirthday removes the record for the given user and chat and returns
	// it, or nil when it was not found.
	DeleteBirthday(ctx context.Context, userID domain.UserID, chatID domain.ChatID) (*domain.Birthday, error)
	// SetBirthdayEnabled flips the notification flag for an existing record.
	// Updating a missing record is not an error; it is a no-op.
	SetBirthdayEnabled(ctx context.Context, userID domain.UserID, chatID domain.ChatID, enabled bool) error
	// DueBirthdays returns the enabled records whose month and day match the
	// given date and which were not yet notified on that calendar day.
	DueBirthdays(ctx context.Context, on time.Time) ([]domain.Birthday, error)
	// MarkNotified stamps the record's last notification time.
	MarkNotified(ctx context.Context, userID domain.UserID, chatID domain.ChatID, at time.Time) error
	// PurgeDisabledBefore deletes disabled records whose last update is older
	// than the cutoff and returns the number of deleted rows.
	PurgeDisabledBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

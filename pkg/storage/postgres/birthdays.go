package postgres

import (
	"commandhotline/pkg/domain"
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	birthdaysTable = "birthdays"
)

// UpsertBirthday inserts the record or replaces the date fields of an existing
// one. The Enabled flag is written on insert only; a member re-sharing their
// birthday does not silently re-enable notifications they turned off by
// leaving the chat.
func (p *PgSQL) UpsertBirthday(ctx context.Context, b domain.Birthday) (domain.Birthday, error) {
	var row PgBirthday
	row.FromDomain(b)

	var stored PgBirthday
	found, err := p.Builder.Insert(birthdaysTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id, chat_id", goqu.Record{
			"year":       row.Year,
			"month":      row.Month,
			"day":        row.Day,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgBirthday{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return domain.Birthday{}, fmt.Errorf("could not upsert birthday in pg: %w", err)
	}
	if !found {
		return domain.Birthday{}, fmt.Errorf("upsert birthday returned no row")
	}

	return stored.ToDomain(), nil
}

// Birthday fetches one record by its composite key. Returns nil when absent.
func (p *PgSQL) Birthday(ctx context.Context,
	userID domain.UserID,
	chatID domain.ChatID) (*domain.Birthday, error) {
	var row PgBirthday
	found, err := p.Builder.From(birthdaysTable).
		Where(
			goqu.I("user_id").Eq(int64(userID)),
			goqu.I("chat_id").Eq(int64(chatID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch birthday from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	b := row.ToDomain()

	return &b, nil
}

// DeleteBirthday removes one record and returns it, or nil when not found.
func (p *PgSQL) DeleteBirthday(ctx context.Context,
	userID domain.UserID,
	chatID domain.ChatID) (*domain.Birthday, error) {
	var row PgBirthday
	found, err := p.Builder.Delete(birthdaysTable).
		Where(
			goqu.I("user_id").Eq(int64(userID)),
			goqu.I("chat_id").Eq(int64(chatID)),
		).
		Returning(&PgBirthday{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete birthday in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	b := row.ToDomain()

	return &b, nil
}

// SetBirthdayEnabled flips the notification flag. Missing records are a no-op.
func (p *PgSQL) SetBirthdayEnabled(ctx context.Context,
	userID domain.UserID,
	chatID domain.ChatID,
	enabled bool) error {
	_, err := p.Builder.Update(birthdaysTable).
		Set(goqu.Record{
			"enabled":    enabled,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("user_id").Eq(int64(userID)),
			goqu.I("chat_id").Eq(int64(chatID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update birthday enabled flag in pg: %w", err)
	}

	return nil
}

// DueBirthdays returns enabled records matching the month and day of the given
// date that were not yet notified on that calendar day. The last_notified
// comparison is against the day's midnight so a record notified yesterday is
// due again, while one notified earlier today is not.
func (p *PgSQL) DueBirthdays(ctx context.Context, on time.Time) ([]domain.Birthday, error) {
	midnight := time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, on.Location())

	var rows []PgBirthday
	err := p.Builder.From(birthdaysTable).
		Where(
			goqu.I("enabled").IsTrue(),
			goqu.I("month").Eq(int(on.Month())),
			goqu.I("day").Eq(on.Day()),
			goqu.Or(
				goqu.I("last_notified").IsNull(),
				goqu.I("last_notified").Lt(midnight),
			),
		).
		Order(goqu.I("chat_id").Asc(), goqu.I("user_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch due birthdays from pg: %w", err)
	}

	return pgBirthdaysToDomain(rows), nil
}

// MarkNotified stamps the record's last notification time.
func (p *PgSQL) MarkNotified(ctx context.Context,
	userID domain.UserID,
	chatID domain.ChatID,
	at time.Time) error {
	_, err := p.Builder.Update(birthdaysTable).
		Set(goqu.Record{
			"last_notified": at,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("user_id").Eq(int64(userID)),
			goqu.I("chat_id").Eq(int64(chatID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark birthday notified in pg: %w", err)
	}

	return nil
}

// PurgeDisabledBefore deletes disabled records whose last update is older than
// the cutoff. Records that were never updated fall back to their creation time.
func (p *PgSQL) PurgeDisabledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := p.Builder.Delete(birthdaysTable).
		Where(
			goqu.I("enabled").IsFalse(),
			goqu.L("COALESCE(updated_at, created_at)").Lt(cutoff),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not purge stale birthdays in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count purged birthdays: %w", err)
	}

	return n, nil
}

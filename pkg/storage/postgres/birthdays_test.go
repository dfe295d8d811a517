package postgres_test

import (
	"commandhotline/pkg/domain"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testBirthday(userID domain.UserID, chatID domain.ChatID) domain.Birthday {
	year := 1990

	return domain.Birthday{
		UserID:  userID,
		ChatID:  chatID,
		Year:    &year,
		Month:   time.April,
		Day:     23,
		Enabled: true,
	}
}

func TestPgSQL_UpsertBirthday_InsertAndFetch(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	stored, err := pg.UpsertBirthday(ctx, testBirthday(1, 2))
	require.NoError(t, err)
	require.Equal(t, domain.UserID(1), stored.UserID)
	require.Equal(t, domain.ChatID(2), stored.ChatID)
	require.NotNil(t, stored.Year)
	require.Equal(t, 1990, *stored.Year)
	require.True(t, stored.Enabled)
	require.False(t, stored.CreatedAt.IsZero())

	fetched, err := pg.Birthday(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, stored.Day, fetched.Day)
	require.Equal(t, stored.Month, fetched.Month)
}

func TestPgSQL_UpsertBirthday_UpdateKeepsEnabledFlag(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	_, err := pg.UpsertBirthday(ctx, testBirthday(1, 2))
	require.NoError(t, err)

	// member left, notifications off
	require.NoError(t, pg.SetBirthdayEnabled(ctx, 1, 2, false))

	// re-sharing the date must not re-enable notifications
	updated := testBirthday(1, 2)
	updated.Day = 24
	stored, err := pg.UpsertBirthday(ctx, updated)
	require.NoError(t, err)
	require.Equal(t, 24, stored.Day)
	require.False(t, stored.Enabled)
	require.False(t, stored.UpdatedAt.IsZero())
}

func TestPgSQL_UpsertBirthday_NullableYear(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	b := testBirthday(1, 2)
	b.Year = nil
	stored, err := pg.UpsertBirthday(ctx, b)
	require.NoError(t, err)
	require.Nil(t, stored.Year)
}

func TestPgSQL_Birthday_Missing(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	fetched, err := pg.Birthday(context.Background(), 404, 404)
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestPgSQL_DeleteBirthday(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	_, err := pg.UpsertBirthday(ctx, testBirthday(1, 2))
	require.NoError(t, err)

	deleted, err := pg.DeleteBirthday(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, domain.UserID(1), deleted.UserID)

	// second delete finds nothing
	deleted, err = pg.DeleteBirthday(ctx, 1, 2)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestPgSQL_SetBirthdayEnabled_MissingIsNoop(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, pg.SetBirthdayEnabled(context.Background(), 404, 404, true))
}

func TestPgSQL_DueBirthdays(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	on := time.Date(2026, time.April, 23, 10, 0, 0, 0, time.UTC)

	// due: matches the date, never notified
	_, err := pg.UpsertBirthday(ctx, testBirthday(1, 2))
	require.NoError(t, err)

	// due: notified yesterday
	_, err = pg.UpsertBirthday(ctx, testBirthday(2, 2))
	require.NoError(t, err)
	require.NoError(t, pg.MarkNotified(ctx, 2, 2, on.AddDate(0, 0, -1)))

	// not due: notified earlier today
	_, err = pg.UpsertBirthday(ctx, testBirthday(3, 2))
	require.NoError(t, err)
	require.NoError(t, pg.MarkNotified(ctx, 3, 2, on.Add(-time.Hour)))

	// not due: disabled
	_, err = pg.UpsertBirthday(ctx, testBirthday(4, 2))
	require.NoError(t, err)
	require.NoError(t, pg.SetBirthdayEnabled(ctx, 4, 2, false))

	// not due: different day
	other := testBirthday(5, 2)
	other.Day = 24
	_, err = pg.UpsertBirthday(ctx, other)
	require.NoError(t, err)

	due, err := pg.DueBirthdays(ctx, on)
	require.NoError(t, err)
	require.Len(t, due, 2)
	require.Equal(t, domain.UserID(1), due[0].UserID)
	require.Equal(t, domain.UserID(2), due[1].UserID)
}

func TestPgSQL_PurgeDisabledBefore(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	_, err := pg.UpsertBirthday(ctx, testBirthday(1, 2))
	require.NoError(t, err)

	_, err = pg.UpsertBirthday(ctx, testBirthday(2, 2))
	require.NoError(t, err)
	require.NoError(t, pg.SetBirthdayEnabled(ctx, 2, 2, false))

	// a future cutoff makes every disabled record stale
	purged, err := pg.PurgeDisabledBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, purged)

	// the enabled record survives
	remaining, err := pg.Birthday(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, remaining)

	gone, err := pg.Birthday(ctx, 2, 2)
	require.NoError(t, err)
	require.Nil(t, gone)
}

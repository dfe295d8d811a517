package birthday

import (
	"commandhotline/pkg/domain"
	"commandhotline/pkg/serrors"
	"commandhotline/pkg/storage"
	mockstorage "commandhotline/pkg/storage/mock"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, now time.Time) (*service, *mockstorage.MockStorage, *mockstorage.MockAllStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	str := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	svc := &service{
		options: Options{RetentionDays: 90},
		storage: str,
		now:     func() time.Time { return now },
	}

	return svc, str, tx
}

func expectTx(str *mockstorage.MockStorage, tx *mockstorage.MockAllStorage) {
	str.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
}

func TestService_Set(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	svc, str, tx := newTestService(t, now)
	expectTx(str, tx)

	year := 1990
	stored := domain.Birthday{
		UserID:  1,
		ChatID:  2,
		Year:    &year,
		Month:   time.April,
		Day:     23,
		Enabled: true,
	}
	tx.EXPECT().UpsertBirthday(gomock.Any(), stored).Return(stored, nil)

	got, err := svc.Set(context.Background(), 1, 2, "23.04.1990")
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

func TestService_Set_TodayEnqueuesNotify(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	svc, str, tx := newTestService(t, now)
	expectTx(str, tx)

	tx.EXPECT().UpsertBirthday(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b domain.Birthday) (domain.Birthday, error) {
			return b, nil
		})
	tx.EXPECT().AddJob(gomock.Any(), NotifyArgs{}, gomock.Nil()).Return(true, nil)

	_, err := svc.Set(context.Background(), 1, 2, "27.08.")
	require.NoError(t, err)
}

func TestService_Set_InvalidDate(t *testing.T) {
	svc, _, _ := newTestService(t, time.Now())

	_, err := svc.Set(context.Background(), 1, 2, "not a date")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, str, _ := newTestService(t, time.Now())
	str.EXPECT().Birthday(gomock.Any(), domain.UserID(1), domain.ChatID(2)).Return(nil, nil)

	_, err := svc.Get(context.Background(), 1, 2)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Get(t *testing.T) {
	svc, str, _ := newTestService(t, time.Now())
	want := &domain.Birthday{UserID: 1, ChatID: 2, Month: time.April, Day: 23, Enabled: true}
	str.EXPECT().Birthday(gomock.Any(), domain.UserID(1), domain.ChatID(2)).Return(want, nil)

	got, err := svc.Get(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, str, _ := newTestService(t, time.Now())
	str.EXPECT().DeleteBirthday(gomock.Any(), domain.UserID(1), domain.ChatID(2)).Return(nil, nil)

	err := svc.Delete(context.Background(), 1, 2)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, str, _ := newTestService(t, time.Now())
	deleted := &domain.Birthday{UserID: 1, ChatID: 2, Month: time.April, Day: 23}
	str.EXPECT().DeleteBirthday(gomock.Any(), domain.UserID(1), domain.ChatID(2)).Return(deleted, nil)

	require.NoError(t, svc.Delete(context.Background(), 1, 2))
}

func TestService_SetEnabled(t *testing.T) {
	svc, str, _ := newTestService(t, time.Now())
	str.EXPECT().SetBirthdayEnabled(gomock.Any(), domain.UserID(1), domain.ChatID(2), false).Return(nil)

	require.NoError(t, svc.SetEnabled(context.Background(), 1, 2, false))
}

func TestService_MarkNotified(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	svc, str, _ := newTestService(t, now)
	str.EXPECT().MarkNotified(gomock.Any(), domain.UserID(1), domain.ChatID(2), now).Return(nil)

	require.NoError(t, svc.MarkNotified(context.Background(), 1, 2))
}

func TestService_PurgeStale(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	svc, str, _ := newTestService(t, now)
	str.EXPECT().PurgeDisabledBefore(gomock.Any(), now.AddDate(0, 0, -90)).Return(int64(3), nil)

	purged, err := svc.PurgeStale(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 3, purged)
}

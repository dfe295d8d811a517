package ops_test

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"commandhotline/internal/ops"
	mockstorage "commandhotline/pkg/storage/mock"
)

func TestNewServer(t *testing.T) {
	str := mockstorage.NewMockStorage(gomock.NewController(t))

	opts := ops.Options{
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
	}

	server, meter, err := ops.NewServer(ops.Deps{Storage: str}, opts)
	require.NoError(t, err)
	require.NotNil(t, meter)

	t.Run("healthy", func(t *testing.T) {
		str.EXPECT().Ping(gomock.Any()).Return(nil)

		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		require.Equal(t, 200, rec.Code)
		require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("unhealthy", func(t *testing.T) {
		str.EXPECT().Ping(gomock.Any()).Return(errors.New("db down"))

		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		require.Equal(t, 503, rec.Code)
		require.JSONEq(t, `{"status":"unhealthy"}`, rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		require.Equal(t, 200, rec.Code)
		require.Contains(t, rec.Body.String(), "go_goroutines")
	})
}

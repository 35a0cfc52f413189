package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sensor-ops/internal/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&config.SheetsConfig{
		SpreadsheetURL: "https://docs.google.com/spreadsheets/d/test-doc-id/edit",
		CacheTTL:       60,
	}, zap.NewNop())
	require.NoError(t, err)
	client.baseURL = srv.URL

	return client, srv
}

func TestLoadParsesCSV(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "out:csv", r.URL.Query().Get("tqx"))
		assert.Equal(t, "Users_DB", r.URL.Query().Get("sheet"))
		assert.NotEmpty(t, r.URL.Query().Get("t"))
		_, _ = w.Write([]byte("Username,Password\nsomchai,1234\n"))
	})

	table, err := client.Load(context.Background(), "Users_DB", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Username", "Password"}, table.Headers)
	require.Len(t, table.Rows, 1)

	v, ok := table.Rows[0].Get("Username")
	assert.True(t, ok)
	assert.Equal(t, "somchai", v)
}

func TestLoadReusesCachedTable(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("a,b\n1,2\n"))
	})

	_, err := client.Load(context.Background(), "PM_Plan", time.Minute)
	require.NoError(t, err)
	_, err = client.Load(context.Background(), "PM_Plan", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
}

func TestRefreshBypassesCache(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("a\n1\n"))
	})

	_, err := client.Load(context.Background(), "PM_Plan", time.Minute)
	require.NoError(t, err)
	_, err = client.Refresh(context.Background(), "PM_Plan")
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestInvalidateAllDropsCache(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("a\n1\n"))
	})

	_, err := client.Load(context.Background(), "Team_Tools", time.Minute)
	require.NoError(t, err)

	client.InvalidateAll()

	_, err = client.Load(context.Background(), "Team_Tools", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestLoadErrorOnNon200(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Load(context.Background(), "PM_Plan", 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PM_Plan")
}

func TestLoadErrorOnEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Load(context.Background(), "PM_Plan", 0)
	assert.Error(t, err)
}

func TestLoadKeepsRaggedRows(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("a,b,c\n1\n1,2,3,4\n"))
	})

	table, err := client.Load(context.Background(), "Asset_Sensor", 0)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 1, table.Rows[0].Len())
	assert.Equal(t, 4, table.Rows[1].Len())
}

package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/lists/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const payload = `{"lists":[
	{"id":1,"name":"Milk","description":"2L","list_number":1},
	{"id":"b","name":"Eggs","description":"dozen","list_number":2}
]}`

func newServer(t *testing.T, h http.HandlerFunc) (*httptest.Server, *http.Client) {
	t.Helper()
	srv := httptest.NewServer(h)
	client := &http.Client{Transport: &http.Transport{}}
	t.Cleanup(func() {
		client.CloseIdleConnections()
		srv.Close()
	})
	return srv, client
}

func TestHTTPFetch(t *testing.T) {
	srv, client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	})
	core, logs := observer.New(zap.InfoLevel)
	h := NewHTTP(srv.URL, time.Second, zap.New(core))
	h.Client = client

	items, err := h.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.Item{
		{ID: "1", Name: "Milk", Description: "2L", ListNumber: 1},
		{ID: "b", Name: "Eggs", Description: "dozen", ListNumber: 2},
	}, items)
	require.Equal(t, 1, logs.FilterMessage("fetched lists").Len())
}

func TestHTTPFetchFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		op     string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops", op: "status"},
		{name: "not found", status: http.StatusNotFound, body: "", op: "status"},
		{name: "bad json", status: http.StatusOK, body: `{"lists":[`, op: "decode"},
		{name: "missing lists", status: http.StatusOK, body: `{"items":[]}`, op: "decode"},
		{name: "null lists", status: http.StatusOK, body: `{"lists":null}`, op: "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			h := NewHTTP(srv.URL, time.Second, nil)
			h.Client = client

			items, err := h.Fetch(context.Background())

			require.Error(t, err)
			assert.Nil(t, items)
			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.op, fe.Op)
			assert.Equal(t, srv.URL, fe.Src)
		})
	}
}

func TestHTTPFetchEmptyLists(t *testing.T) {
	srv, client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"lists":[]}`))
	})
	h := NewHTTP(srv.URL, time.Second, nil)
	h.Client = client

	items, err := h.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHTTPFetchTimeout(t *testing.T) {
	srv, client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	h := NewHTTP(srv.URL, 50*time.Millisecond, nil)
	h.Client = client

	start := time.Now()
	_, err := h.Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestHTTPFetchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := NewHTTP("http://127.0.0.1:1/lists", 0, nil)

	_, err := h.Fetch(ctx)

	require.ErrorIs(t, err, context.Canceled)
}

func TestHTTPFetchBadEndpoint(t *testing.T) {
	h := NewHTTP("://nope", time.Second, nil)
	_, err := h.Fetch(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "request", fe.Op)
}

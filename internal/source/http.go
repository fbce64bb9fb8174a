package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/idilsaglam/lists/internal/model"
)

const (
	// DefaultEndpoint serves the two starting lists.
	DefaultEndpoint = "https://apis.ccbp.in/list-creation/lists"

	userAgent = "lists/1 (+https://github.com/idilsaglam/lists)"
)

// HTTP fetches the item set with a single GET.
type HTTP struct {
	Endpoint string
	Timeout  time.Duration // applied per fetch when > 0
	Client   *http.Client
	Logger   *zap.Logger
}

// NewHTTP returns an HTTP source using http.DefaultClient.
func NewHTTP(endpoint string, timeout time.Duration, logger *zap.Logger) *HTTP {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTP{Endpoint: endpoint, Timeout: timeout, Client: http.DefaultClient, Logger: logger}
}

func (h *HTTP) Fetch(ctx context.Context) ([]model.Item, error) {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}
	log := h.logger().With(zap.String("endpoint", h.Endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: "request", Src: h.Endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := h.client().Do(req)
	if err != nil {
		log.Warn("fetch failed", zap.Error(err))
		return nil, &FetchError{Op: "request", Src: h.Endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		log.Warn("unexpected status", zap.Int("status", resp.StatusCode))
		return nil, &FetchError{Op: "status", Src: h.Endpoint, Err: fmt.Errorf("http %s", resp.Status)}
	}

	items, err := decode(resp.Body)
	if err != nil {
		log.Warn("decode failed", zap.Error(err))
		return nil, &FetchError{Op: "decode", Src: h.Endpoint, Err: err}
	}
	log.Info("fetched lists",
		zap.Int("items", len(items)),
		zap.Duration("took", time.Since(start)))
	return items, nil
}

func (h *HTTP) client() *http.Client {
	if h.Client != nil {
		return h.Client
	}
	return http.DefaultClient
}

func (h *HTTP) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return zap.NewNop()
}

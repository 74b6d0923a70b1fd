package catalog

import (
	"context"
	"fmt"
	"net/http"

	"catalog-web/core/upstream"

	"go.uber.org/zap"
)

// Item is an opaque catalog record. Its fields are passed through untouched.
type Item map[string]any

// Result is the outcome of a load: the item, or the UpstreamError describing
// a non-success backend response.
type Result[T any] struct {
	Item T
	Err  *UpstreamError
}

// Failed reports whether the backend answered with a non-success status.
func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// Fetcher loads one catalog item.
type Fetcher[T any] interface {
	Load(ctx context.Context, params RouteParams) (Result[T], error)
}

// ItemLoader resolves catalog items through the backend API.
// It holds no mutable state and is safe for concurrent use.
type ItemLoader[T any] struct {
	baseURL string
	doer    upstream.Doer
	logger  *zap.Logger
}

// NewItemLoader creates a loader for baseURL. A nil logger disables logging.
func NewItemLoader[T any](baseURL string, doer upstream.Doer, logger *zap.Logger) *ItemLoader[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemLoader[T]{
		baseURL: baseURL,
		doer:    doer,
		logger:  logger,
	}
}

// Load performs exactly one GET {baseURL}/catalog/{item}.
//
// A non-2xx status is reported through Result.Err with a nil error. Anything
// else that goes wrong (building the request, the transport, decoding the
// envelope) is returned as the error.
func (l *ItemLoader[T]) Load(ctx context.Context, params RouteParams) (Result[T], error) {
	url := ItemURL(l.baseURL, params.Item())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result[T]{}, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := l.doer.Do(req)
	if err != nil {
		return Result[T]{}, fmt.Errorf("failed to fetch catalog item: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		l.logger.Debug("Catalog backend returned non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return Result[T]{Err: NewUpstreamError(resp.StatusCode)}, nil
	}

	env, err := DecodeEnvelope[T](resp.Body)
	if err != nil {
		return Result[T]{}, err
	}

	l.logger.Debug("Catalog item loaded", zap.String("url", url))
	return Result[T]{Item: env.Data}, nil
}

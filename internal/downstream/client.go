// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package downstream talks to the upstream video-listing APIs of each source.

Every source declares the response shape it speaks ([source.Kind]); a
[Normalizer] registered for that shape turns the raw body into
[catalog.Category] and [catalog.Item] records. Calls are throttled per source
and never retried: the proxy reports the first failure as is.
*/
package downstream

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"resty.dev/v3"

	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/platform/ctxutil"
	"github.com/taibuivan/vodbrowse/internal/platform/metrics"
	"github.com/taibuivan/vodbrowse/internal/source"
)

// DefaultUserAgent is sent on every upstream call.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Upstream operation names, used in logs and metrics.
const (
	opCategories = "categories"
	opItems      = "items"
)

// Config tunes the upstream HTTP client.
type Config struct {
	// Timeout bounds a single upstream call.
	Timeout time.Duration

	// RequestsPerSecond caps calls per source. Zero disables throttling.
	RequestsPerSecond int

	// UserAgent overrides [DefaultUserAgent].
	UserAgent string
}

// StatusError reports an upstream answer outside the 2xx range.
type StatusError struct {
	Source     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("downstream: source %q answered HTTP %d", e.Source, e.StatusCode)
}

// Client fetches and normalises upstream listings. It implements
// [catalog.Upstream].
type Client struct {
	http    *resty.Client
	metrics *metrics.Metrics
	rps     int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New constructs a [Client].
func New(cfg Config) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json, application/xml;q=0.9, */*;q=0.8")

	return &Client{
		http:     httpClient,
		metrics:  metrics.Default(),
		rps:      cfg.RequestsPerSecond,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Close releases idle connections.
func (client *Client) Close() error {
	return client.http.Close()
}

// # Operations

// Categories fetches the category list of src.
func (client *Client) Categories(ctx context.Context, src source.Source) ([]catalog.Category, error) {
	normalizer, err := NormalizerFor(src.Kind())
	if err != nil {
		return nil, err
	}

	body, elapsed, err := client.fetch(ctx, src, opCategories, normalizer.Params(map[string]string{"ac": "list"}))
	if err != nil {
		return nil, err
	}

	categories, err := normalizer.Categories(body)
	client.observe(src, opCategories, len(categories), elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("downstream: decode categories of %q: %w", src.Key, err)
	}
	return categories, nil
}

/*
Items fetches one listing page of src.

An empty query.TypeID lists the whole source and a zero query.Page leaves the
page choice to the upstream.
*/
func (client *Client) Items(ctx context.Context, src source.Source, query catalog.ListQuery) ([]catalog.Item, error) {
	normalizer, err := NormalizerFor(src.Kind())
	if err != nil {
		return nil, err
	}

	params := map[string]string{"ac": "videolist"}
	if query.TypeID != "" {
		params["t"] = query.TypeID
	}
	if query.Page > 0 {
		params["pg"] = strconv.Itoa(query.Page)
	}

	body, elapsed, err := client.fetch(ctx, src, opItems, normalizer.Params(params))
	if err != nil {
		return nil, err
	}

	items, err := normalizer.Items(body, src)
	client.observe(src, opItems, len(items), elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("downstream: decode items of %q: %w", src.Key, err)
	}
	return items, nil
}

// # Transport

// fetch performs one throttled GET against the source API and reports how
// long the upstream took to answer.
func (client *Client) fetch(ctx context.Context, src source.Source, operation string, params map[string]string) ([]byte, time.Duration, error) {
	logger := ctxutil.GetLogger(ctx)

	// A request whose context ends while queued never takes a slot.
	start := time.Now()
	if err := client.limiter(src.Key).Wait(ctx); err != nil {
		elapsed := time.Since(start)
		client.metrics.ObserveUpstream(src.Key, operation, metrics.OutcomeError, elapsed)
		return nil, elapsed, fmt.Errorf("downstream: %s %q: throttled: %w", operation, src.Key, err)
	}

	start = time.Now()
	resp, err := client.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(src.API)
	elapsed := time.Since(start)
	if err != nil {
		client.metrics.ObserveUpstream(src.Key, operation, metrics.OutcomeError, elapsed)
		return nil, elapsed, fmt.Errorf("downstream: %s %q: %w", operation, src.Key, err)
	}

	if !resp.IsSuccess() {
		client.metrics.ObserveUpstream(src.Key, operation, metrics.OutcomeError, elapsed)
		return nil, elapsed, &StatusError{Source: src.Key, StatusCode: resp.StatusCode()}
	}

	logger.DebugContext(ctx, "upstream_call_finished",
		slog.String("source", src.Key),
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("latency", elapsed),
	)

	return resp.Bytes(), elapsed, nil
}

// observe records the outcome of a decoded call.
func (client *Client) observe(src source.Source, operation string, count int, elapsed time.Duration, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case count == 0:
		outcome = metrics.OutcomeEmpty
	}
	client.metrics.ObserveUpstream(src.Key, operation, outcome, elapsed)
}

// limiter returns the throttle of one source, creating it on first use.
// Calls are spaced evenly: no burst beyond a single request.
func (client *Client) limiter(key string) *rate.Limiter {
	client.mu.Lock()
	defer client.mu.Unlock()

	if limiter, ok := client.limiters[key]; ok {
		return limiter
	}

	limit := rate.Inf
	if client.rps > 0 {
		limit = rate.Limit(client.rps)
	}
	limiter := rate.NewLimiter(limit, 1)
	client.limiters[key] = limiter
	return limiter
}

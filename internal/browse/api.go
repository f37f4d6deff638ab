// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"resty.dev/v3"

	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/platform/constants"
	"github.com/taibuivan/vodbrowse/internal/source"
)

// Backend is what the [Controller] needs from the category proxy.
type Backend interface {
	Sources(ctx context.Context) ([]source.Summary, error)
	Categories(ctx context.Context, resourceID string) ([]catalog.Category, error)
	Items(ctx context.Context, resourceID string, query catalog.ListQuery) ([]catalog.Item, error)
}

// APIError is a non-2xx answer of the proxy.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("browse: proxy answered HTTP %d: %s", e.StatusCode, e.Message)
}

// APIClient calls the category proxy over HTTP. It implements [Backend].
type APIClient struct {
	http *resty.Client
}

// NewAPIClient creates a client for the proxy at baseURL.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Close releases idle connections.
func (api *APIClient) Close() error {
	return api.http.Close()
}

// Sources fetches GET /api/sources.
func (api *APIClient) Sources(ctx context.Context) ([]source.Summary, error) {
	return fetchResults[source.Summary](ctx, api, "/api/sources", nil)
}

// Categories fetches GET /api/category/list.
func (api *APIClient) Categories(ctx context.Context, resourceID string) ([]catalog.Category, error) {
	return fetchResults[catalog.Category](ctx, api, "/api/category/list", map[string]string{
		constants.ParamResourceID: resourceID,
	})
}

// Items fetches GET /api/category/detail.
func (api *APIClient) Items(ctx context.Context, resourceID string, query catalog.ListQuery) ([]catalog.Item, error) {
	params := map[string]string{
		constants.ParamResourceID: resourceID,
		constants.ParamQuery:      query.TypeID,
	}
	if query.Page > 0 {
		params[constants.ParamPage] = strconv.Itoa(query.Page)
	}
	return fetchResults[catalog.Item](ctx, api, "/api/category/detail", params)
}

// fetchResults performs a GET and decodes the `results` envelope.
func fetchResults[T any](ctx context.Context, api *APIClient, path string, params map[string]string) ([]T, error) {
	resp, err := api.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("browse: GET %s: %w", path, err)
	}

	if !resp.IsSuccess() {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(resp.Bytes(), &failure)
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: failure.Error}
	}

	var envelope struct {
		Results []T     `json:"results"`
		Error   *string `json:"error"`
	}
	if err := json.Unmarshal(resp.Bytes(), &envelope); err != nil {
		return nil, fmt.Errorf("browse: decode %s: %w", path, err)
	}

	// Soft errors are answered with 200 and no results.
	if envelope.Error != nil {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: *envelope.Error}
	}

	return envelope.Results, nil
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vodbrowse/internal/browse"
	"github.com/taibuivan/vodbrowse/internal/catalog"
)

// lastQuery holds the query string of the latest detail request.
type lastQuery struct {
	mu    sync.Mutex
	query url.Values
}

func (l *lastQuery) get() url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query
}

func newProxy(t *testing.T) (*browse.APIClient, *lastQuery) {
	t.Helper()

	last := &lastQuery{}
	router := chi.NewRouter()
	router.Get("/api/sources", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"key":"siteA","name":"Site A"}]}`))
	})
	router.Get("/api/category/list", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("resourceId") {
		case "":
			_, _ = w.Write([]byte(`{"result":null,"error":"缺少必要参数: resourceId"}`))
		case "siteA":
			_, _ = w.Write([]byte(`{"results":[{"type_id":"1","type_name":"Action"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"未找到指定的视频源: ` + r.URL.Query().Get("resourceId") + `","result":null}`))
		}
	})
	router.Get("/api/category/detail", func(w http.ResponseWriter, r *http.Request) {
		last.mu.Lock()
		last.query = r.URL.Query()
		last.mu.Unlock()
		_, _ = w.Write([]byte(`{"results":[{"id":"42","title":"Film","poster":"","episodes":["https://a/42.m3u8"],"source":"siteA","source_name":"Site A","douban_id":7,"year":"2024","type_name":"动作片"}]}`))
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client := browse.NewAPIClient(server.URL, 5*time.Second)
	t.Cleanup(func() { _ = client.Close() })
	return client, last
}

func TestAPIClient_Sources(t *testing.T) {
	client, _ := newProxy(t)

	sources, err := client.Sources(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "siteA", sources[0].Key)
	assert.Equal(t, "Site A", sources[0].Name)
}

func TestAPIClient_Categories(t *testing.T) {
	client, _ := newProxy(t)
	ctx := context.Background()

	categories, err := client.Categories(ctx, "siteA")
	require.NoError(t, err)
	assert.Equal(t, []catalog.Category{{TypeID: "1", TypeName: "Action"}}, categories)

	_, err = client.Categories(ctx, "ghost")
	var apiErr *browse.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "未找到指定的视频源: ghost", apiErr.Message)

	_, err = client.Categories(ctx, "")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
}

func TestAPIClient_Items(t *testing.T) {
	client, last := newProxy(t)

	items, err := client.Items(context.Background(), "siteA", catalog.ListQuery{TypeID: "1", Page: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "42", items[0].ID)
	assert.Equal(t, catalog.Identity{ID: "42", Source: "siteA"}, items[0].Identity())
	require.NotNil(t, items[0].DoubanID)
	assert.Equal(t, 7, *items[0].DoubanID)

	query := last.get()
	assert.Equal(t, "siteA", query.Get("resourceId"))
	assert.Equal(t, "1", query.Get("q"))
	assert.Equal(t, "2", query.Get("page"))
}

func TestAPIClient_IsBackend(t *testing.T) {
	client, _ := newProxy(t)
	var _ browse.Backend = client
}

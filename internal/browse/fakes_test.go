// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/vodbrowse/internal/browse"
	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/source"
)

type pageKey struct {
	source string
	typeID string
	page   int
}

// fakeBackend serves canned answers. Items for a type id listed in block
// wait until the channel is closed and announce themselves on started.
type fakeBackend struct {
	mu         sync.Mutex
	sources    []source.Summary
	sourcesErr error
	categories map[string][]catalog.Category
	pages      map[pageKey][]catalog.Item
	itemErrs   map[pageKey]error
	block      map[string]chan struct{}
	started    chan string
	queries    []catalog.ListQuery
}

var _ browse.Backend = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		sources: []source.Summary{
			{Key: "siteA", Name: "Site A"},
			{Key: "siteB", Name: "Site B"},
		},
		categories: map[string][]catalog.Category{
			"siteA": {{TypeID: "1", TypeName: "Action"}},
			"siteB": {{TypeID: "1", TypeName: "电影"}, {TypeID: "2", TypeName: "剧集"}},
		},
		pages:    map[pageKey][]catalog.Item{},
		itemErrs: map[pageKey]error{},
		block:    map[string]chan struct{}{},
		started:  make(chan string, 8),
	}
}

func (f *fakeBackend) Sources(context.Context) ([]source.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]source.Summary(nil), f.sources...), f.sourcesErr
}

func (f *fakeBackend) Categories(_ context.Context, resourceID string) ([]catalog.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	categories, ok := f.categories[resourceID]
	if !ok {
		return nil, &browse.APIError{StatusCode: 404}
	}
	return append([]catalog.Category(nil), categories...), nil
}

func (f *fakeBackend) Items(_ context.Context, resourceID string, query catalog.ListQuery) ([]catalog.Item, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	gate := f.block[query.TypeID]
	f.mu.Unlock()

	if gate != nil {
		f.started <- query.TypeID
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	key := pageKey{source: resourceID, typeID: query.TypeID, page: query.Page}
	if err := f.itemErrs[key]; err != nil {
		return nil, err
	}
	return append([]catalog.Item(nil), f.pages[key]...), nil
}

func (f *fakeBackend) setPage(resourceID, typeID string, page int, items ...catalog.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[pageKey{source: resourceID, typeID: typeID, page: page}] = items
}

func (f *fakeBackend) failPage(resourceID, typeID string, page int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.itemErrs[pageKey{source: resourceID, typeID: typeID, page: page}] = err
}

// navigations records every route the controller pushes.
type navigations struct {
	mu    sync.Mutex
	hrefs []string
}

func (n *navigations) Navigate(route browse.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hrefs = append(n.hrefs, route.Href())
}

func (n *navigations) list() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string{}, n.hrefs...)
}

func item(id, src, typeName string) catalog.Item {
	return catalog.Item{ID: id, Source: src, TypeName: typeName, Episodes: []string{}}
}

func ids(items []catalog.Item) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

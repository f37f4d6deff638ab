// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/source"
)

type fakeSources struct {
	sources []source.Source
	err     error
}

func (f *fakeSources) Enabled(context.Context) ([]source.Source, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []source.Source{}
	for _, s := range f.sources {
		if !s.Disabled {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSources) Find(ctx context.Context, key string) (source.Source, bool, error) {
	enabled, err := f.Enabled(ctx)
	if err != nil {
		return source.Source{}, false, err
	}
	for _, s := range enabled {
		if s.Key == key {
			return s, true, nil
		}
	}
	return source.Source{}, false, nil
}

// fakeUpstream records every call it receives.
type fakeUpstream struct {
	mu         sync.Mutex
	categories []catalog.Category
	items      []catalog.Item
	err        error
	calls      int
	queries    []catalog.ListQuery
}

func (f *fakeUpstream) Categories(_ context.Context, _ source.Source) ([]catalog.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.categories, f.err
}

func (f *fakeUpstream) Items(_ context.Context, _ source.Source, query catalog.ListQuery) ([]catalog.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.queries = append(f.queries, query)
	return f.items, f.err
}

func (f *fakeUpstream) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultSources() *fakeSources {
	return &fakeSources{sources: []source.Source{
		{Key: "siteA", Name: "Site A", API: "https://a.example.com/api"},
		{Key: "retired", Name: "Retired", API: "https://r.example.com/api", Disabled: true},
	}}
}

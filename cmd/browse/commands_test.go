// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vodbrowse/internal/browse"
	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/source"
)

type pagedBackend struct{}

func (pagedBackend) Sources(context.Context) ([]source.Summary, error) {
	return []source.Summary{{Key: "siteA", Name: "Site A"}}, nil
}

func (pagedBackend) Categories(context.Context, string) ([]catalog.Category, error) {
	return []catalog.Category{{TypeID: "1", TypeName: "Action"}}, nil
}

// Items repeats page 1 from page 3 onwards.
func (pagedBackend) Items(_ context.Context, _ string, query catalog.ListQuery) ([]catalog.Item, error) {
	id := "a"
	if query.Page == 2 {
		id = "b"
	}
	return []catalog.Item{{ID: id, Title: "Film " + id, Source: "siteA", Year: "2024", Episodes: []string{"x", "y"}}}, nil
}

func TestLoadPages(t *testing.T) {
	ctx := context.Background()

	t.Run("stops_at_wrap_around", func(t *testing.T) {
		state, err := loadPages(ctx, newController(pagedBackend{}, nil), browse.Route{ResourceID: "siteA", CategoryID: "1"}, 10)
		require.NoError(t, err)
		assert.Len(t, state.Results, 2)
		assert.False(t, state.Pagination.HasMore)
	})

	t.Run("all_category_is_single_page", func(t *testing.T) {
		state, err := loadPages(ctx, newController(pagedBackend{}, nil), browse.Route{ResourceID: "siteA"}, 10)
		require.NoError(t, err)
		assert.Len(t, state.Results, 1)
		assert.Equal(t, 1, state.Pagination.CurrentPage)
	})

	t.Run("unknown_source", func(t *testing.T) {
		_, err := loadPages(ctx, newController(pagedBackend{}, nil), browse.Route{ResourceID: "ghost"}, 1)
		assert.Error(t, err)
	})

	t.Run("unknown_category", func(t *testing.T) {
		_, err := loadPages(ctx, newController(pagedBackend{}, nil), browse.Route{ResourceID: "siteA", CategoryID: "9"}, 1)
		assert.Error(t, err)
	})
}

// labelledBackend serves one denylisted and one ordinary item.
type labelledBackend struct{ pagedBackend }

func (labelledBackend) Items(context.Context, string, catalog.ListQuery) ([]catalog.Item, error) {
	return []catalog.Item{
		{ID: "1", Source: "siteA", TypeName: "伦理片"},
		{ID: "2", Source: "siteA", TypeName: "动作片"},
	}, nil
}

func TestDisableFilterFlag(t *testing.T) {
	ctx := context.Background()
	route := browse.Route{ResourceID: "siteA"}

	flag := rootCmd.PersistentFlags().Lookup("disable-filter")
	require.NotNil(t, flag)
	t.Cleanup(func() { disableFilter = false })

	t.Run("filtered_by_default", func(t *testing.T) {
		require.NoError(t, rootCmd.PersistentFlags().Set("disable-filter", "false"))

		state, err := loadPages(ctx, newController(labelledBackend{}, nil), route, 1)
		require.NoError(t, err)
		require.Len(t, state.Results, 1)
		assert.Equal(t, "2", state.Results[0].ID)
	})

	t.Run("disabled", func(t *testing.T) {
		require.NoError(t, rootCmd.PersistentFlags().Set("disable-filter", "true"))

		state, err := loadPages(ctx, newController(labelledBackend{}, nil), route, 1)
		require.NoError(t, err)
		assert.Len(t, state.Results, 2)
	})
}

func TestPrintListing(t *testing.T) {
	state := browse.State{
		Results: []catalog.Item{{ID: "42", Title: "Film", Year: "2024", TypeName: "动作片", Episodes: []string{"x"}}},
		Pagination: browse.Pagination{
			CurrentPage: 2,
			HasMore:     true,
		},
	}

	var out bytes.Buffer
	require.NoError(t, printListing(&out, state))

	assert.Contains(t, out.String(), "ID")
	assert.Contains(t, out.String(), "42")
	assert.Contains(t, out.String(), "1 items, page 2, more pages available")
}

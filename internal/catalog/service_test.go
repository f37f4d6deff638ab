// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/platform/apperr"
)

/*
TestService_ListItems covers the proxy taxonomy of the listing operation.
*/
func TestService_ListItems(t *testing.T) {
	tests := []struct {
		name       string
		resourceID string
		sources    *fakeSources
		upstream   *fakeUpstream
		code       string
		calls      int
	}{
		{
			name:       "missing_resource_id",
			resourceID: "",
			sources:    defaultSources(),
			upstream:   &fakeUpstream{items: []catalog.Item{{ID: "1"}}},
			code:       apperr.CodeMissingParameter,
			calls:      0,
		},
		{
			name:       "unknown_source",
			resourceID: "nope",
			sources:    defaultSources(),
			upstream:   &fakeUpstream{items: []catalog.Item{{ID: "1"}}},
			code:       apperr.CodeUnknownSource,
			calls:      0,
		},
		{
			name:       "disabled_source_is_unknown",
			resourceID: "retired",
			sources:    defaultSources(),
			upstream:   &fakeUpstream{items: []catalog.Item{{ID: "1"}}},
			code:       apperr.CodeUnknownSource,
			calls:      0,
		},
		{
			name:       "registry_failure",
			resourceID: "siteA",
			sources:    &fakeSources{err: errors.New("redis down")},
			upstream:   &fakeUpstream{},
			code:       apperr.CodeUpstreamFailure,
			calls:      0,
		},
		{
			name:       "upstream_failure",
			resourceID: "siteA",
			sources:    defaultSources(),
			upstream:   &fakeUpstream{err: errors.New("timeout")},
			code:       apperr.CodeUpstreamFailure,
			calls:      1,
		},
		{
			name:       "empty_result",
			resourceID: "siteA",
			sources:    defaultSources(),
			upstream:   &fakeUpstream{items: []catalog.Item{}},
			code:       apperr.CodeEmptyResult,
			calls:      1,
		},
		{
			name:       "success",
			resourceID: "siteA",
			sources:    defaultSources(),
			upstream:   &fakeUpstream{items: []catalog.Item{{ID: "1"}, {ID: "2"}}},
			calls:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := catalog.NewService(tt.sources, tt.upstream, discardLogger())

			items, err := service.ListItems(context.Background(), tt.resourceID, catalog.ListQuery{TypeID: "1", Page: 2})

			assert.Equal(t, tt.calls, tt.upstream.callCount())
			if tt.code != "" {
				assert.True(t, apperr.Is(err, tt.code), "expected %s, got %v", tt.code, err)
				assert.Nil(t, items)
				return
			}

			require.NoError(t, err)
			assert.Len(t, items, 2)
			assert.Equal(t, []catalog.ListQuery{{TypeID: "1", Page: 2}}, tt.upstream.queries)
		})
	}
}

func TestService_ListCategories(t *testing.T) {
	upstream := &fakeUpstream{categories: []catalog.Category{{TypeID: "1", TypeName: "Action"}}}
	service := catalog.NewService(defaultSources(), upstream, discardLogger())

	categories, err := service.ListCategories(context.Background(), "siteA")
	require.NoError(t, err)
	assert.Equal(t, []catalog.Category{{TypeID: "1", TypeName: "Action"}}, categories)

	_, err = service.ListCategories(context.Background(), "")
	assert.True(t, apperr.Is(err, apperr.CodeMissingParameter))
	assert.Equal(t, 1, upstream.callCount())
}

func TestService_ListSources(t *testing.T) {
	service := catalog.NewService(defaultSources(), &fakeUpstream{}, discardLogger())

	summaries, err := service.ListSources(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "siteA", summaries[0].Key)
	assert.Equal(t, "Site A", summaries[0].Name)
}

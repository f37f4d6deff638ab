// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vodbrowse/internal/browse"
)

func TestRoute_Href(t *testing.T) {
	tests := []struct {
		route    browse.Route
		expected string
	}{
		{browse.Route{ResourceID: "siteA"}, "/category?resourceId=siteA"},
		{browse.Route{ResourceID: "siteA", CategoryID: "1"}, "/category?resourceId=siteA&categoryId=1"},
		{browse.Route{ResourceID: "siteA", CategoryID: "1", Page: 3}, "/category?resourceId=siteA&categoryId=1&page=3"},
		{browse.Route{ResourceID: "siteA", Page: 2}, "/category?resourceId=siteA&page=2"},
		{browse.Route{ResourceID: "a b&c"}, "/category?resourceId=a+b%26c"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.route.Href())
		})
	}
}

func TestParseRoute_RoundTrip(t *testing.T) {
	routes := []browse.Route{
		{ResourceID: "siteA"},
		{ResourceID: "siteA", CategoryID: "12"},
		{ResourceID: "siteA", CategoryID: "12", Page: 4},
		{ResourceID: "a b&c", CategoryID: "x/y"},
	}

	for _, route := range routes {
		parsed, err := browse.ParseRoute(route.Href())
		require.NoError(t, err)
		assert.Equal(t, route, parsed)
	}
}

func TestParseRoute(t *testing.T) {
	route, err := browse.ParseRoute("?resourceId=siteB&page=-2")
	require.NoError(t, err)
	assert.Equal(t, browse.Route{ResourceID: "siteB"}, route)

	_, err = browse.ParseRoute("/search?q=1")
	assert.Error(t, err)
}

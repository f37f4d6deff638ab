// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	requestutil "github.com/taibuivan/vodbrowse/internal/platform/request"
)

func TestQuery(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?resourceId=%20siteA%20&q=", nil)

	assert.Equal(t, "siteA", requestutil.Query(request, "resourceId"))
	assert.Equal(t, "", requestutil.Query(request, "q"))
	assert.Equal(t, "", requestutil.Query(request, "missing"))
}

func TestQueryRaw(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?resourceId=%20&q=1", nil)

	assert.Equal(t, " ", requestutil.QueryRaw(request, "resourceId"))
	assert.Equal(t, "1", requestutil.QueryRaw(request, "q"))
	assert.Equal(t, "", requestutil.QueryRaw(request, "missing"))
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"0", 0},
		{"-2", 0},
		{"abc", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			q := request.URL.Query()
			q.Set("page", tt.raw)
			request.URL.RawQuery = q.Encode()

			assert.Equal(t, tt.want, requestutil.QueryInt(request, "page"))
		})
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

The proxy endpoints are driven entirely by the query string, so the helpers
here read and normalise query values with consistent trimming rules.
*/
package requestutil

import (
	"net/http"
	"strings"

	"github.com/taibuivan/vodbrowse/pkg/convert"
)

/*
Query retrieves a trimmed query-string value. Missing keys yield "".
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
QueryRaw retrieves a query-string value exactly as sent. Identifiers such as
resourceId use it so that a blank-but-present value is still looked up
instead of being treated as absent.
*/
func QueryRaw(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
QueryInt parses a positive integer query value.

Returns:
  - int: the parsed value, or 0 when absent, malformed or not positive
*/
func QueryInt(request *http.Request, name string) int {
	n := convert.ToIntD(Query(request, name), 0)
	if n < 1 {
		return 0
	}
	return n
}

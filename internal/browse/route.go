// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/vodbrowse/internal/platform/constants"
	"github.com/taibuivan/vodbrowse/pkg/convert"
)

// Route is the addressable state of the category page:
//
//	/category?resourceId=<key>[&categoryId=<id>][&page=<n>]
type Route struct {
	ResourceID string
	CategoryID string
	Page       int
}

// Href renders the route. Empty category ids and non-positive pages are
// omitted.
func (route Route) Href() string {
	var b strings.Builder

	b.WriteString(constants.CategoryPath)
	b.WriteString("?" + constants.ParamResourceID + "=" + url.QueryEscape(route.ResourceID))
	if route.CategoryID != "" {
		b.WriteString("&" + constants.ParamCategoryID + "=" + url.QueryEscape(route.CategoryID))
	}
	if route.Page > 0 {
		b.WriteString("&" + constants.ParamPage + "=" + strconv.Itoa(route.Page))
	}

	return b.String()
}

// String implements [fmt.Stringer].
func (route Route) String() string {
	return route.Href()
}

// ParseRoute reads a category page href. The path may be omitted.
func ParseRoute(href string) (Route, error) {
	parsed, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return Route{}, fmt.Errorf("browse: parse route: %w", err)
	}
	if parsed.Path != "" && parsed.Path != constants.CategoryPath {
		return Route{}, fmt.Errorf("browse: not a category route: %q", parsed.Path)
	}

	query := parsed.Query()
	page := convert.ToIntD(query.Get(constants.ParamPage), 0)
	if page < 1 {
		page = 0
	}

	return Route{
		ResourceID: strings.TrimSpace(query.Get(constants.ParamResourceID)),
		CategoryID: strings.TrimSpace(query.Get(constants.ParamCategoryID)),
		Page:       page,
	}, nil
}

// Navigator receives route changes made by the [Controller].
type Navigator interface {
	Navigate(route Route)
}

// NavigatorFunc adapts a function to [Navigator].
type NavigatorFunc func(route Route)

// Navigate implements [Navigator].
func (f NavigatorFunc) Navigate(route Route) {
	f(route)
}

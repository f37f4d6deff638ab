// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves the category proxy: the category list of a source and
one listing page of a (source, category) pair.

# Architecture

  - Handler: parses the query string and writes the wire envelopes.
  - Service: resolves the source and calls the [Upstream].
  - Filter: drops listing items whose category label is denylisted.

The upstream itself lives in the downstream package; this package only
declares the records it must produce.
*/
package catalog

import (
	"context"

	"github.com/taibuivan/vodbrowse/internal/source"
)

// # Domain Types

// AllTypeName labels the synthetic category that lists a whole source.
const AllTypeName = "全部"

// Category is a sub-classification inside a source's catalogue.
type Category struct {
	TypeID   string `json:"type_id"`
	TypeName string `json:"type_name"`
}

// AllCategory is the synthetic "all" category prepended by browsers.
var AllCategory = Category{TypeID: "", TypeName: AllTypeName}

// IsAll reports whether c is the synthetic all category.
func (c Category) IsAll() bool {
	return c.TypeID == ""
}

// Item is one normalised listing record.
type Item struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Poster     string   `json:"poster"`
	Episodes   []string `json:"episodes"`
	Source     string   `json:"source"`
	SourceName string   `json:"source_name"`
	DoubanID   *int     `json:"douban_id,omitempty"`
	Year       string   `json:"year"`
	TypeName   string   `json:"type_name"`
}

// Identity is the key two listing items are compared by.
type Identity struct {
	ID     string
	Source string
}

// Identity returns the (id, source) pair of item.
func (item Item) Identity() Identity {
	return Identity{ID: item.ID, Source: item.Source}
}

// ListQuery selects one listing page. Empty TypeID lists the whole source;
// zero Page lets the upstream pick its first page.
type ListQuery struct {
	TypeID string
	Page   int
}

// # Upstream Contract

// Upstream fetches category lists and listing pages from a source.
type Upstream interface {
	Categories(ctx context.Context, src source.Source) ([]Category, error)
	Items(ctx context.Context, src source.Source, query ListQuery) ([]Item, error)
}

// Sources resolves source keys for the proxy.
type Sources interface {
	Enabled(ctx context.Context) ([]source.Source, error)
	Find(ctx context.Context, key string) (source.Source, bool, error)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"github.com/taibuivan/vodbrowse/pkg/fold"
	"github.com/taibuivan/vodbrowse/pkg/slice"
)

// Filter hides listing items whose category label contains a denylisted word.
//
// Labels and words are compared after Unicode folding, so full-width and
// differently cased variants still match.
type Filter struct {
	Words    []string
	Disabled bool
}

// NewFilter returns a filter over [DefaultDenylist].
func NewFilter(disabled bool) Filter {
	return Filter{Words: DefaultDenylist, Disabled: disabled}
}

// Apply returns the items that pass the filter, in their original order.
func (filter Filter) Apply(items []Item) []Item {
	if filter.Disabled || len(filter.Words) == 0 {
		return items
	}

	return slice.Filter(items, func(item Item) bool {
		return !filter.Blocks(item.TypeName)
	})
}

// Blocks reports whether typeName contains a denylisted word.
func (filter Filter) Blocks(typeName string) bool {
	if filter.Disabled {
		return false
	}
	return slice.Any(filter.Words, func(word string) bool {
		return fold.Contains(typeName, word)
	})
}

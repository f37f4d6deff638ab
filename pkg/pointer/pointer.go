// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer provides generic helpers for optional values.
package pointer

// NonZero returns a pointer to v, or nil when v is the zero value of T.
// Optional JSON fields such as douban_id use it to stay absent instead of 0.
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

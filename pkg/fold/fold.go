// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold normalises Unicode text for substring matching.
//
// # Usage
//
// Category labels from upstream CMS sites mix full-width and half-width
// forms, traditional punctuation and stray spaces. Folding both the label and
// the needle makes "ＳＷＡＧ" and "swag" compare equal.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String folds s for matching.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKC (compatibility forms: full-width → ASCII).
// 2. Removes whitespace and combining marks.
// 3. Converts to lowercase.
func String(s string) string {
	t := transform.Chain(norm.NFKC, runes.Remove(runes.Predicate(isSkippable)))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.ToLower(result)
}

// Contains reports whether the folded haystack contains the folded needle.
// An empty needle never matches.
func Contains(haystack, needle string) bool {
	needle = String(needle)
	if needle == "" {
		return false
	}
	return strings.Contains(String(haystack), needle)
}

// isSkippable reports whether r carries no meaning for matching.
func isSkippable(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Mn, r)
}

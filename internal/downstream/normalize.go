// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package downstream

import (
	"fmt"
	"maps"

	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/source"
)

// Normalizer turns the raw answers of one upstream shape into catalog records.
type Normalizer interface {
	// Params adds the shape-specific query parameters to base.
	Params(base map[string]string) map[string]string

	// Categories decodes a category-list answer.
	Categories(body []byte) ([]catalog.Category, error)

	// Items decodes a listing-page answer, stamping every item with src.
	Items(body []byte, src source.Source) ([]catalog.Item, error)
}

var normalizers = map[source.Kind]Normalizer{
	source.KindAppleCMS:    appleCMS{},
	source.KindAppleCMSXML: appleCMSXML{},
}

// NormalizerFor returns the normaliser registered for kind.
func NormalizerFor(kind source.Kind) (Normalizer, error) {
	normalizer, ok := normalizers[kind]
	if !ok {
		return nil, fmt.Errorf("downstream: no normaliser for source type %q", kind)
	}
	return normalizer, nil
}

// withParams returns a copy of base extended by extra.
func withParams(base map[string]string, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	maps.Copy(out, base)
	maps.Copy(out, extra)
	return out
}

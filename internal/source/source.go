// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package source is the registry of upstream video-listing providers.

A [Source] is identified by a stable key and points at an upstream API whose
response shape is declared by its [Kind]. The registry reads sources from a
pluggable [Store] (configuration file, Redis admin document or PostgreSQL
table) and only ever hands enabled sources to the proxy layer.
*/
package source

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/vodbrowse/internal/platform/validate"
	"github.com/taibuivan/vodbrowse/pkg/slice"
)

// # Domain Types

// Kind names the upstream response shape a source speaks.
type Kind string

const (
	// KindAppleCMS is the Apple CMS v10 JSON API (`?ac=videolist`).
	KindAppleCMS Kind = "applecms"

	// KindAppleCMSXML is the same API rendered as XML (`&at=xml`).
	KindAppleCMSXML Kind = "applecms-xml"
)

// Kinds lists every supported shape.
var Kinds = []Kind{KindAppleCMS, KindAppleCMSXML}

// Source is one configured upstream provider.
type Source struct {
	Key      string `json:"key"      mapstructure:"key"`
	Name     string `json:"name"     mapstructure:"name"`
	API      string `json:"api"      mapstructure:"api"`
	Type     Kind   `json:"type"     mapstructure:"type"`
	Disabled bool   `json:"disabled" mapstructure:"disabled"`
}

// Summary is the public projection of a source exposed to browsers.
type Summary struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Summary returns the public projection of s.
func (s Source) Summary() Summary {
	return Summary{Key: s.Key, Name: s.Name}
}

// Kind returns the declared shape, defaulting to [KindAppleCMS].
func (s Source) Kind() Kind {
	if s.Type == "" {
		return KindAppleCMS
	}
	return s.Type
}

// # Storage Contract

// Store loads the full source list, including disabled entries.
type Store interface {
	// Sources returns every configured source in display order.
	Sources(ctx context.Context) ([]Source, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// # Registry

// Registry answers source lookups for the proxy endpoints.
type Registry struct {
	store  Store
	logger *slog.Logger
}

// NewRegistry constructs a [Registry] over store.
func NewRegistry(store Store, logger *slog.Logger) *Registry {
	return &Registry{store: store, logger: logger}
}

// Enabled returns the non-disabled sources in display order.
func (registry *Registry) Enabled(ctx context.Context) ([]Source, error) {
	all, err := registry.store.Sources(ctx)
	if err != nil {
		return nil, fmt.Errorf("source: load: %w", err)
	}

	return slice.Filter(all, func(s Source) bool { return !s.Disabled }), nil
}

// Find looks key up among enabled sources.
//
// Returns:
//   - Source: the matching source
//   - bool: false when no enabled source has that key
//   - error: store failures
func (registry *Registry) Find(ctx context.Context, key string) (Source, bool, error) {
	enabled, err := registry.Enabled(ctx)
	if err != nil {
		return Source{}, false, err
	}

	for _, s := range enabled {
		if s.Key == key {
			return s, true, nil
		}
	}

	registry.logger.DebugContext(ctx, "source_not_found", slog.String("key", key))
	return Source{}, false, nil
}

// Ping checks the backing store.
func (registry *Registry) Ping(ctx context.Context) error {
	return registry.store.Ping(ctx)
}

// # Validation

// Validate checks a loaded source list: keys are required and unique, API
// endpoints are absolute http(s) URLs and types are known.
func Validate(sources []Source) error {
	v := &validate.Validator{}
	seen := make(map[string]struct{}, len(sources))

	allowed := slice.Map(Kinds, func(k Kind) string { return string(k) })

	for i, s := range sources {
		prefix := fmt.Sprintf("sources[%d].", i)

		v.Required(prefix+"key", s.Key).
			Unique(prefix+"key", s.Key, seen).
			HTTPURL(prefix+"api", s.API)

		if s.Type != "" {
			v.OneOf(prefix+"type", string(s.Type), allowed...)
		}
	}

	return v.Err()
}

// normalize trims user-entered fields of every source in place.
func normalize(sources []Source) {
	for i := range sources {
		sources[i].Key = strings.TrimSpace(sources[i].Key)
		sources[i].Name = strings.TrimSpace(sources[i].Name)
		sources[i].API = strings.TrimSpace(sources[i].API)
		sources[i].Type = Kind(strings.ToLower(strings.TrimSpace(string(sources[i].Type))))
		if sources[i].Name == "" {
			sources[i].Name = sources[i].Key
		}
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vodbrowse/internal/platform/apperr"
	"github.com/taibuivan/vodbrowse/internal/source"
)

type stubStore struct {
	sources []source.Source
	err     error
}

func (s *stubStore) Sources(context.Context) ([]source.Source, error) { return s.sources, s.err }
func (s *stubStore) Ping(context.Context) error                       { return s.err }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegistry_Enabled(t *testing.T) {
	store := &stubStore{sources: []source.Source{
		{Key: "siteA", Name: "A"},
		{Key: "off", Name: "Off", Disabled: true},
		{Key: "siteB", Name: "B"},
	}}
	registry := source.NewRegistry(store, discardLogger())

	enabled, err := registry.Enabled(context.Background())
	require.NoError(t, err)

	keys := []string{}
	for _, s := range enabled {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"siteA", "siteB"}, keys)
}

func TestRegistry_Find(t *testing.T) {
	store := &stubStore{sources: []source.Source{
		{Key: "siteA"},
		{Key: "off", Disabled: true},
	}}
	registry := source.NewRegistry(store, discardLogger())

	t.Run("enabled_source", func(t *testing.T) {
		found, ok, err := registry.Find(context.Background(), "siteA")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "siteA", found.Key)
	})

	t.Run("disabled_source_is_unknown", func(t *testing.T) {
		_, ok, err := registry.Find(context.Background(), "off")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing_source", func(t *testing.T) {
		_, ok, err := registry.Find(context.Background(), "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRegistry_StoreFailure(t *testing.T) {
	registry := source.NewRegistry(&stubStore{err: errors.New("boom")}, discardLogger())

	_, _, err := registry.Find(context.Background(), "siteA")
	assert.Error(t, err)
}

func TestSource_KindDefault(t *testing.T) {
	assert.Equal(t, source.KindAppleCMS, source.Source{}.Kind())
	assert.Equal(t, source.KindAppleCMSXML, source.Source{Type: source.KindAppleCMSXML}.Kind())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		sources []source.Source
		fields  []string
	}{
		{
			name:    "valid",
			sources: []source.Source{{Key: "a", API: "https://a.example.com/api"}},
		},
		{
			name: "duplicate_key",
			sources: []source.Source{
				{Key: "a", API: "https://a.example.com/api"},
				{Key: "a", API: "https://b.example.com/api"},
			},
			fields: []string{"sources[1].key"},
		},
		{
			name:    "bad_api_and_type",
			sources: []source.Source{{Key: "a", API: "a.example.com", Type: "rss"}},
			fields:  []string{"sources[0].api", "sources[0].type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := source.Validate(tt.sources)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			got := []string{}
			for _, d := range ae.Details {
				got = append(got, d.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

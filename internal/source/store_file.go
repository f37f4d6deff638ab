// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// fileDocument is the on-disk layout of the sources file (YAML or JSON).
//
//	sources:
//	  - key: siteA
//	    name: Site A 资源
//	    api: https://a.example.com/api.php/provide/vod
type fileDocument struct {
	Sources []Source `mapstructure:"sources"`
}

// FileStore serves sources from a configuration file read with viper.
//
// The file is parsed once at construction; [FileStore.Watch] opts into
// reloading when it changes on disk. A reload that fails validation keeps the
// previous list.
type FileStore struct {
	v      *viper.Viper
	logger *slog.Logger

	mu      sync.RWMutex
	sources []Source
}

// NewFileStore reads and validates the sources file at path.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}

	store := &FileStore{v: v, logger: logger}
	if err := store.reload(); err != nil {
		return nil, err
	}

	logger.Info("source file loaded",
		slog.String("path", path),
		slog.Int("sources", len(store.sources)),
	)

	return store, nil
}

// Watch reloads the file whenever it changes.
func (store *FileStore) Watch() {
	store.v.OnConfigChange(func(event fsnotify.Event) {
		if err := store.reload(); err != nil {
			store.logger.Error("source file reload rejected",
				slog.String("path", event.Name),
				slog.Any("error", err),
			)
			return
		}
		store.logger.Info("source file reloaded", slog.String("path", event.Name))
	})
	store.v.WatchConfig()
}

// Sources implements [Store].
func (store *FileStore) Sources(_ context.Context) ([]Source, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]Source, len(store.sources))
	copy(out, store.sources)
	return out, nil
}

// Ping implements [Store]. A loaded file is always reachable.
func (store *FileStore) Ping(_ context.Context) error {
	return nil
}

// reload decodes the current viper state into the source list.
func (store *FileStore) reload() error {
	var doc fileDocument
	if err := store.v.Unmarshal(&doc); err != nil {
		return fmt.Errorf("source: decode file: %w", err)
	}

	normalize(doc.Sources)
	if err := Validate(doc.Sources); err != nil {
		return fmt.Errorf("source: invalid file: %w", err)
	}

	store.mu.Lock()
	store.sources = doc.Sources
	store.mu.Unlock()
	return nil
}

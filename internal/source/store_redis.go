// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisReader is the subset of [*redis.Client] the store needs.
type redisReader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// adminDocument is the admin configuration document kept in Redis. Only the
// source list is read here; the rest belongs to the admin tooling.
type adminDocument struct {
	SourceConfig []Source `json:"SourceConfig"`
}

// RedisStore reads sources from the admin configuration document in Redis.
//
// The document is read on every call so that admin edits take effect without
// a restart.
type RedisStore struct {
	client redisReader
	key    string
}

// NewRedisStore creates a Redis-backed [Store] reading the document at key.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

/*
Sources implements [Store].

Returns:
  - []Source: the configured sources, or an empty list if the key is absent
  - error: connectivity, decoding or validation failures
*/
func (store *RedisStore) Sources(ctx context.Context) ([]Source, error) {
	raw, err := store.client.Get(ctx, store.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Source{}, nil
		}
		return nil, fmt.Errorf("redis_source_get_failed: %w", err)
	}

	var doc adminDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("redis_source_decode_failed: %w", err)
	}

	normalize(doc.SourceConfig)
	if err := Validate(doc.SourceConfig); err != nil {
		return nil, fmt.Errorf("redis_source_invalid: %w", err)
	}

	return doc.SourceConfig, nil
}

// Ping implements [Store].
func (store *RedisStore) Ping(ctx context.Context) error {
	if err := store.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}

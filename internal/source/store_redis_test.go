// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	value string
	err   error
}

func (f *fakeRedis) Get(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult(f.value, f.err)
}

func (f *fakeRedis) Ping(_ context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.err)
}

func TestRedisStore_Sources(t *testing.T) {
	store := &RedisStore{key: "admin:config", client: &fakeRedis{value: `{
		"SiteConfig": {"SiteName": "ignored"},
		"SourceConfig": [
			{"key": "siteA", "name": "A", "api": "https://a.example.com/api", "disabled": false},
			{"key": "siteB", "name": "B", "api": "https://b.example.com/api", "disabled": true}
		]
	}`}}

	sources, err := store.Sources(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "siteA", sources[0].Key)
	assert.True(t, sources[1].Disabled)
}

func TestRedisStore_MissingKey(t *testing.T) {
	store := &RedisStore{key: "admin:config", client: &fakeRedis{err: redis.Nil}}

	sources, err := store.Sources(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestRedisStore_Failures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeRedis
	}{
		{"connection", &fakeRedis{err: errors.New("connection refused")}},
		{"bad_json", &fakeRedis{value: "{"}},
		{"invalid_source", &fakeRedis{value: `{"SourceConfig":[{"key":"a","api":"nope"}]}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &RedisStore{key: "admin:config", client: tt.client}
			_, err := store.Sources(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestRedisStore_Ping(t *testing.T) {
	assert.NoError(t, (&RedisStore{client: &fakeRedis{}}).Ping(context.Background()))
	assert.Error(t, (&RedisStore{client: &fakeRedis{err: errors.New("down")}}).Ping(context.Background()))
}

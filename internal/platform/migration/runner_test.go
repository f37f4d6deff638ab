// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"Postgres", "postgres://u:p@h:5432/db", "pgx5://u:p@h:5432/db"},
		{"PostgreSQL", "postgresql://u:p@h/db?sslmode=disable", "pgx5://u:p@h/db?sslmode=disable"},
		{"AlreadyPgx5", "pgx5://u@h/db", "pgx5://u@h/db"},
		{"KeyValue", "host=h user=u dbname=db", "host=h user=u dbname=db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgx5DSN(tt.dsn))
		})
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sourceTable names the columns of the 'catalog.source' table.
var sourceTable = struct {
	Table     string
	Key       string
	Name      string
	API       string
	Kind      string
	Disabled  string
	SortOrder string
}{
	Table:     "catalog.source",
	Key:       "key",
	Name:      "name",
	API:       "api",
	Kind:      "kind",
	Disabled:  "isdisabled",
	SortOrder: "sortorder",
}

// pgQuerier is the subset of [*pgxpool.Pool] the store needs.
type pgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// PostgresStore reads sources from the 'catalog.source' table.
type PostgresStore struct {
	db pgQuerier
}

// NewPostgresStore creates a PostgreSQL-backed [Store].
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

/*
Sources implements [Store].

Rows are validated like the other stores: one bad row rejects the whole list.

Returns:
  - []Source: the table ordered by sortorder then key
  - error: query, scan or validation failures
*/
func (store *PostgresStore) Sources(ctx context.Context) ([]Source, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC;
	`,
		sourceTable.Key,
		sourceTable.Name,
		sourceTable.API,
		sourceTable.Kind,
		sourceTable.Disabled,
		sourceTable.Table,
		sourceTable.SortOrder,
		sourceTable.Key,
	)

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_list_sources: %w", err)
	}
	defer rows.Close()

	sources := []Source{}
	for rows.Next() {
		var s Source
		var kind string
		if err := rows.Scan(&s.Key, &s.Name, &s.API, &kind, &s.Disabled); err != nil {
			return nil, fmt.Errorf("postgres_scan_source: %w", err)
		}
		s.Type = Kind(kind)
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_list_sources: %w", err)
	}

	normalize(sources)
	if err := Validate(sources); err != nil {
		return nil, fmt.Errorf("postgres_source_invalid: %w", err)
	}

	return sources, nil
}

// Ping implements [Store].
func (store *PostgresStore) Ping(ctx context.Context) error {
	if err := store.db.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}
	return nil
}

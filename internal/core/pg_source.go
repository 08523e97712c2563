package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonMunkholm/atelier/internal/table"
	"github.com/jackc/pgx/v5"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PgSource loads list records from PostgreSQL, one relation per definition.
// Every column of the relation becomes a record field.
type PgSource struct {
	db DBTX
}

// NewPgSource creates a PgSource over a pool or transaction.
func NewPgSource(db DBTX) *PgSource {
	return &PgSource{db: db}
}

// Records selects every row of the definition's source relation.
func (s *PgSource) Records(ctx context.Context, def TableDefinition) ([]table.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s", quoteRelation(def.SourceName()))

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("collect rows: %w", err)
	}

	records := make([]table.Record, len(maps))
	for i, m := range maps {
		rec := make(table.Record, len(m))
		for k, v := range m {
			rec[k] = normalizeValue(v)
		}
		records[i] = rec
	}
	return records, nil
}

// Count returns the row count of the definition's source relation.
func (s *PgSource) Count(ctx context.Context, def TableDefinition) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteRelation(def.SourceName()))

	var n int64
	if err := s.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}

// quoteIdentifier quotes a SQL identifier to prevent injection.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteRelation quotes a possibly schema-qualified relation name.
// "shop.orders" -> "shop"."orders"
func quoteRelation(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = quoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

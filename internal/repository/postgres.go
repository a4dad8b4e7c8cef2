// Package repository provides the coordinate lookup backends. Each backend
// maps postcode keys — full units and their coarser sector, district and
// area forms — to a coordinate pair. Keys are compared uppercased. A missing
// key is not an error: backends return (nil, nil) so callers can tell
// absence from backend failure.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"postcode-api/internal/models"
)

// Postgres looks coordinates up in a PostgreSQL table. The table is the one
// the importer writes: every column is text, so the coordinate columns are
// cast on the way out.
type Postgres struct {
	db    *pgxpool.Pool
	table string
}

// NewPostgres creates a PostgreSQL-backed provider reading from the given
// table.
func NewPostgres(db *pgxpool.Pool, table string) *Postgres {
	return &Postgres{db: db, table: table}
}

// FindCoordinates returns the coordinates stored under key, or (nil, nil)
// when the key is not present.
func (r *Postgres) FindCoordinates(ctx context.Context, key string) (*models.Coordinates, error) {
	sql := fmt.Sprintf(
		`SELECT latitude::float8, longitude::float8 FROM %s WHERE postcode = $1`,
		pgx.Identifier{r.table}.Sanitize(),
	)

	var coords models.Coordinates
	err := r.db.QueryRow(ctx, sql, normalizeKey(key)).Scan(&coords.Latitude, &coords.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query coordinates: %w", err)
	}

	return &coords, nil
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

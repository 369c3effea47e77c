package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const (
	schemaSQL = `
CREATE TABLE IF NOT EXISTS lodge (
	id        INTEGER PRIMARY KEY,
	name      TEXT NOT NULL,
	locality  TEXT NOT NULL DEFAULT '',
	altitude  INTEGER NOT NULL DEFAULT 0,
	capacity  INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS connection (
	id          INTEGER PRIMARY KEY,
	id_lodge1   INTEGER NOT NULL REFERENCES lodge(id),
	id_lodge2   INTEGER NOT NULL REFERENCES lodge(id),
	distance    DOUBLE PRECISION NOT NULL DEFAULT 0,
	difficulty  TEXT NOT NULL DEFAULT '',
	duration    TEXT NOT NULL DEFAULT '',
	year        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS connection_year_idx ON connection(year);`

	selectLodgesSQL = `SELECT id, name, locality, altitude, capacity FROM lodge ORDER BY id`

	selectConnectionsSQL = `SELECT id, id_lodge1, id_lodge2, distance, difficulty, duration, year
FROM connection WHERE year <= $1 ORDER BY id`
)

// Postgres is a Catalog backed by the lodge and connection tables.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres opens a pooled connection to dsn.
func OpenPostgres(dsn string, maxOpen, maxIdle int) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog: open postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)

	return &Postgres{db: db}, nil
}

// NewPostgres wraps an existing handle.
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Ping verifies the database is reachable.
func (p *Postgres) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

// Close releases the pool.
func (p *Postgres) Close() error { return p.db.Close() }

// EnsureSchema creates the catalog tables if they do not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("catalog: ensure schema: %w", err)
	}

	return nil
}

// FetchAllLodges reads every lodge row.
func (p *Postgres) FetchAllLodges(ctx context.Context) ([]Lodge, error) {
	rows, err := p.db.QueryContext(ctx, selectLodgesSQL)
	if err != nil {
		return nil, fmt.Errorf("catalog: query lodges: %w", err)
	}
	defer rows.Close()

	var out []Lodge
	for rows.Next() {
		var l Lodge
		if err = rows.Scan(&l.ID, &l.Name, &l.Locality, &l.Altitude, &l.Capacity); err != nil {
			return nil, fmt.Errorf("catalog: scan lodge: %w", err)
		}
		out = append(out, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate lodges: %w", err)
	}

	return out, nil
}

// FetchConnectionsUpTo reads connections with year <= year and resolves
// their endpoints through idx. The year filter runs in SQL.
func (p *Postgres) FetchConnectionsUpTo(ctx context.Context, idx Index, year int) ([]Connection, error) {
	rows, err := p.db.QueryContext(ctx, selectConnectionsSQL, year)
	if err != nil {
		return nil, fmt.Errorf("catalog: query connections: %w", err)
	}
	defer rows.Close()

	var links []Link
	for rows.Next() {
		var l Link
		if err = rows.Scan(&l.ID, &l.Lodge1, &l.Lodge2, &l.Distance, &l.Difficulty, &l.Duration, &l.Year); err != nil {
			return nil, fmt.Errorf("catalog: scan connection: %w", err)
		}
		links = append(links, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate connections: %w", err)
	}

	return resolveUpTo(idx, links, year)
}

// Insert stores lodges and links in one transaction. Used to seed a database
// from a YAML catalog.
func (p *Postgres) Insert(ctx context.Context, lodges []Lodge, links []Link) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, l := range lodges {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO lodge (id, name, locality, altitude, capacity) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, locality = EXCLUDED.locality,
altitude = EXCLUDED.altitude, capacity = EXCLUDED.capacity`,
			l.ID, l.Name, l.Locality, l.Altitude, l.Capacity); err != nil {
			return fmt.Errorf("catalog: insert lodge %d: %w", l.ID, err)
		}
	}
	for _, c := range links {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO connection (id, id_lodge1, id_lodge2, distance, difficulty, duration, year)
VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Lodge1, c.Lodge2, c.Distance, c.Difficulty, c.Duration, c.Year); err != nil {
			return fmt.Errorf("catalog: insert connection %d: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

var _ Catalog = (*Postgres)(nil)

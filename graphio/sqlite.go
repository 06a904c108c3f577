package graphio

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/edgestar/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS graphs (
	name     TEXT PRIMARY KEY,
	directed INTEGER NOT NULL,
	weighted INTEGER NOT NULL,
	loops    INTEGER NOT NULL,
	multi    INTEGER NOT NULL,
	mixed    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS vertices (
	graph TEXT NOT NULL REFERENCES graphs(name) ON DELETE CASCADE,
	id    TEXT NOT NULL,
	PRIMARY KEY (graph, id)
);
CREATE TABLE IF NOT EXISTS edges (
	graph    TEXT NOT NULL REFERENCES graphs(name) ON DELETE CASCADE,
	seq      INTEGER NOT NULL,
	src      TEXT NOT NULL,
	dst      TEXT NOT NULL,
	weight   REAL NOT NULL,
	directed INTEGER NOT NULL,
	attrs    TEXT NOT NULL DEFAULT '{}',
	PRIMARY KEY (graph, seq)
);
`

// OpenSQLite opens the database at dsn and applies the schema.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// one connection: ":memory:" databases are per connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	// Wait up to 5s on lock instead of failing immediately
	_, _ = db.ExecContext(ctx, "PRAGMA busy_timeout=5000")

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the graph tables if missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}

// SaveSQLite stores g under name, replacing any graph already stored there.
func SaveSQLite(ctx context.Context, db *sql.DB, name string, g *core.Graph) error {
	d := FromGraph(g)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM edges WHERE graph = ?`,
		`DELETE FROM vertices WHERE graph = ?`,
		`DELETE FROM graphs WHERE name = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, name); err != nil {
			return fmt.Errorf("deleting old graph: %w", err)
		}
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO graphs (name, directed, weighted, loops, multi, mixed)
		VALUES (?, ?, ?, ?, ?, ?)
	`, name, d.Directed, *d.Weighted, d.Loops, d.Multi, d.Mixed)
	if err != nil {
		return fmt.Errorf("inserting graph: %w", err)
	}

	for _, v := range d.Vertices {
		if _, err := tx.ExecContext(ctx, `INSERT INTO vertices (graph, id) VALUES (?, ?)`, name, v); err != nil {
			return fmt.Errorf("inserting vertex %q: %w", v, err)
		}
	}

	for i, e := range d.Edges {
		attrs, err := json.Marshal(e.Attrs)
		if err != nil {
			return fmt.Errorf("marshaling attrs: %w", err)
		}
		directed := d.Directed
		if e.Directed != nil {
			directed = *e.Directed
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO edges (graph, seq, src, dst, weight, directed, attrs)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, name, i, e.From, e.To, e.Weight, directed, string(attrs))
		if err != nil {
			return fmt.Errorf("inserting edge %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadSQLite rebuilds the graph stored under name.
func LoadSQLite(ctx context.Context, db *sql.DB, name string) (*core.Graph, error) {
	var (
		d        Document
		weighted bool
	)
	err := db.QueryRowContext(ctx, `
		SELECT directed, weighted, loops, multi, mixed FROM graphs WHERE name = ?
	`, name).Scan(&d.Directed, &weighted, &d.Loops, &d.Multi, &d.Mixed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying graph: %w", err)
	}
	d.Weighted = &weighted

	if d.Vertices, err = loadVertices(ctx, db, name); err != nil {
		return nil, err
	}
	if d.Edges, err = loadEdges(ctx, db, name, d.Directed); err != nil {
		return nil, err
	}

	return d.Build()
}

func loadVertices(ctx context.Context, db *sql.DB, name string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT id FROM vertices WHERE graph = ? ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("querying vertices: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning vertex: %w", err)
		}
		out = append(out, id)
	}

	return out, rows.Err()
}

func loadEdges(ctx context.Context, db *sql.DB, name string, graphDirected bool) ([]EdgeDoc, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT src, dst, weight, directed, attrs FROM edges WHERE graph = ? ORDER BY seq
	`, name)
	if err != nil {
		return nil, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	var out []EdgeDoc
	for rows.Next() {
		var (
			e        EdgeDoc
			directed bool
			attrs    string
		)
		if err := rows.Scan(&e.From, &e.To, &e.Weight, &directed, &attrs); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		if directed != graphDirected {
			e.Directed = &directed
		}
		if err := json.Unmarshal([]byte(attrs), &e.Attrs); err != nil {
			return nil, fmt.Errorf("%w: edge attrs: %w", ErrBadDocument, err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

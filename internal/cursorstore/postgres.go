package cursorstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
)

const defaultTable = "tail_cursors"

var tableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Postgres persists cursors as JSONB rows.
type Postgres struct {
	db    *sql.DB
	table string
}

func OpenPostgres(ctx context.Context, dsn, table string) (*Postgres, error) {
	if table == "" {
		table = defaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	p := &Postgres{db: db, table: table}
	if err := p.InitSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

// InitSchema creates the cursor table if it does not exist.
func (p *Postgres) InitSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		topic VARCHAR(255) NOT NULL,
		entry JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL
	)`, p.table))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", p.table, err)
	}
	return nil
}

func (p *Postgres) Put(ctx context.Context, e Entry) (string, error) {
	stamp(&e)
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to serialize cursor: %w", err)
	}
	id := newID()
	_, err = p.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, topic, entry, created_at) VALUES ($1, $2, $3, $4)`, p.table),
		id, e.Cursor.Topic, data, e.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert cursor: %w", err)
	}
	return id, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (Entry, error) {
	if uuid.Validate(id) != nil {
		return Entry{}, ErrNotFound
	}
	var data []byte
	err := p.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT entry FROM %s WHERE id = $1`, p.table), id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read cursor: %w", err)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("failed to decode cursor: %w", err)
	}
	return e, nil
}

func (p *Postgres) Close() error { return p.db.Close() }

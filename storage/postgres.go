package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresSlot stores slots as rows of a single key/value table. The whole
// collection blob is one row, matching the overwrite semantics of the
// contract rather than a relational schema.
type PostgresSlot struct {
	db *sql.DB
}

// NewPostgresSlot opens the database and creates the slot table if needed.
func NewPostgresSlot(connStr string) (*PostgresSlot, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	slotTable := `
	CREATE TABLE IF NOT EXISTS app_slots (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(slotTable); err != nil {
		return nil, fmt.Errorf("error creating app_slots table: %w", err)
	}

	return &PostgresSlot{db: db}, nil
}

func (p *PostgresSlot) Read(key string) ([]byte, bool, error) {
	var value []byte
	err := p.db.QueryRow(`SELECT value FROM app_slots WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error reading slot %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresSlot) Write(key string, value []byte) error {
	_, err := p.db.Exec(`
		INSERT INTO app_slots (key, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}
	return nil
}

func (p *PostgresSlot) Delete(key string) error {
	if _, err := p.db.Exec(`DELETE FROM app_slots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("error deleting slot %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database handle.
func (p *PostgresSlot) Close() error {
	return p.db.Close()
}

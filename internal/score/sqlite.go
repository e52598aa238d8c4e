package score

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists scores in a SQLite database
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens the database at dsn and creates the schema.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{conn: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	Logger.Printf("[SCORE] database connected: %s", dsn)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.conn.Exec(`
	CREATE TABLE IF NOT EXISTS scores (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) Get(key string) (int, error) {
	var raw string
	err := s.conn.QueryRow("SELECT value FROM scores WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return parseValue(raw)
}

func (s *SQLiteStore) Set(key string, value int) error {
	v := strconv.Itoa(value)
	_, err := s.conn.Exec("INSERT INTO scores (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = ?", key, v, v)
	return err
}


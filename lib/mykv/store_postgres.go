package mykv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type postgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(c context.Context, databaseURL string) (Store, func(), error) {
	db, err := sqlx.ConnectContext(c, "postgres", databaseURL)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	_, err = db.ExecContext(c, createTableSQL)
	if err != nil {
		db.Close()
		return nil, func() {}, fmt.Errorf("failed to create kv_entries table: %w", err)
	}

	return &postgresStore{db: db}, func() {
		db.Close()
	}, nil
}

func (s *postgresStore) Put(c context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(c, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("error storing key %s: %w", key, err)
	}
	return nil
}

func (s *postgresStore) Get(c context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.GetContext(c, &value, "SELECT value FROM kv_entries WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error fetching key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *postgresStore) Delete(c context.Context, key string) error {
	_, err := s.db.ExecContext(c, "DELETE FROM kv_entries WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("error deleting key %s: %w", key, err)
	}
	return nil
}

package session

import (
	"context"
	"database/sql"
	"fmt"

	"medreport/internal/dbx"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the token pair in a small kv table so it survives
// restarts, the way a browser client would use local storage.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the session database at dsn.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
			name  TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (Session, error) {
	access, err := s.get(ctx, s.db, accessTokenKey)
	if err != nil {
		return Session{}, err
	}
	refresh, err := s.get(ctx, s.db, refreshTokenKey)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: access, RefreshToken: refresh}, nil
}

// Save writes both values in one transaction so a crash cannot leave the
// pair half-updated. An empty refresh token removes any stored one.
func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, accessTokenKey, sess.AccessToken); err != nil {
			return err
		}
		if sess.RefreshToken == "" {
			_, err := tx.ExecContext(ctx, `DELETE FROM session WHERE name = ?`, refreshTokenKey)
			return err
		}
		return s.set(ctx, tx, refreshTokenKey, sess.RefreshToken)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, db dbx.DBTX, name string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get session[%s]: %w", name, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, db dbx.DBTX, name, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, value)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w", name, err)
	}
	return nil
}

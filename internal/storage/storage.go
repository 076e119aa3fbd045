package storage

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrDuplicateID    = errors.New("duplicate id")
	ErrDuplicateEmail = errors.New("duplicate email")
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

func WithTransaction(db *sql.DB, fn func(queries *Queries) error) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(New(tx))
	return err
}

// EnsureSchema creates the two tables if they are absent. Safe to run on
// every startup; both statements commit atomically.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	return WithTransaction(db, func(queries *Queries) error {
		const articles = `
CREATE TABLE IF NOT EXISTS articles (
    id        TEXT PRIMARY KEY,
    title     TEXT NOT NULL,
    excerpt   TEXT NOT NULL,
    content   TEXT NOT NULL,
    author    TEXT NOT NULL,
    date      TEXT NOT NULL,
    read_time INTEGER NOT NULL,
    category  TEXT NOT NULL,
    image     TEXT NOT NULL,
    featured  BOOLEAN NOT NULL DEFAULT FALSE
)`
		const subscribers = `
CREATE TABLE IF NOT EXISTS subscribers (
    id         TEXT PRIMARY KEY,
    email      TEXT UNIQUE NOT NULL,
    created_at TEXT NOT NULL
)`
		if _, err := queries.db.ExecContext(ctx, articles); err != nil {
			return err
		}
		if _, err := queries.db.ExecContext(ctx, subscribers); err != nil {
			return err
		}
		return nil
	})
}

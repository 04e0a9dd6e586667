// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/recook-book/internal/logger"
)

const entriesTable = "store_entries"

const upsertEntrySuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// sqliteTier keeps every key as one row of the store_entries table.
type sqliteTier struct {
	db  *DB
	now func() time.Time
}

// NewSQLiteTier returns a KeyValueStore backed by db. The schema must have
// been migrated.
func NewSQLiteTier(db *DB) KeyValueStore {
	return &sqliteTier{
		db:  db,
		now: time.Now,
	}
}

func (s *sqliteTier) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").From(entriesTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*sqliteTier.Get").Str("key", key).Msg("failed to read store entry")
		return nil, fmt.Errorf("%w: get %s: %w", ErrExecutingQuery, key, err)
	}
	if value == nil {
		value = []byte{}
	}

	return value, nil
}

func (s *sqliteTier) Set(ctx context.Context, key string, value []byte) error {
	if err := s.upsert(ctx, s.db, key, value); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteTier.Set").Str("key", key).Msg("failed to write store entry")
		return err
	}

	return nil
}

func (s *sqliteTier) SetMany(ctx context.Context, entries map[string][]byte) error {
	log := logger.FromContext(ctx)

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	err := withTx(ctx, s.db.DB, func(ctx context.Context, tx execer) error {
		for _, k := range keys {
			if err := s.upsert(ctx, tx, k, entries[k]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*sqliteTier.SetMany").Strs("keys", keys).Msg("failed to write store entries")
		return err
	}

	return nil
}

func (s *sqliteTier) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete(entriesTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteTier.Delete").Str("key", key).Msg("failed to delete store entry")
		return fmt.Errorf("%w: delete %s: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (s *sqliteTier) Clear(ctx context.Context) error {
	query, args, err := sq.Delete(entriesTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteTier.Clear").Msg("failed to clear store entries")
		return fmt.Errorf("%w: clear: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTier) Close() error {
	return s.db.Close()
}

func (s *sqliteTier) upsert(ctx context.Context, ex execer, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	query, args, err := sq.Insert(entriesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix(upsertEntrySuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func withTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx execer) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(ctx, tx)
}

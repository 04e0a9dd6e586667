package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recook-book/internal/logger"
)

func newMockSQLiteTier(t *testing.T) (*sqliteTier, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	fixed := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return &sqliteTier{
		db:  &DB{DB: db, logger: logger.Nop()},
		now: func() time.Time { return fixed },
	}, mock
}

func TestSQLiteTier_GetQueryError(t *testing.T) {
	tier, mock := newMockSQLiteTier(t)
	mock.ExpectQuery("SELECT value FROM store_entries WHERE key = ?").
		WithArgs("recipes").
		WillReturnError(errors.New("disk I/O error"))

	v, err := tier.Get(context.Background(), "recipes")

	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTier_SetUsesUpsert(t *testing.T) {
	tier, mock := newMockSQLiteTier(t)
	mock.ExpectExec(`INSERT INTO store_entries \(key,value,updated_at\) VALUES \(\?,\?,\?\) ON CONFLICT\(key\) DO UPDATE`).
		WithArgs("accounts", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := tier.Set(context.Background(), "accounts", []byte("[]"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTier_SetManyRollsBackOnFailure(t *testing.T) {
	// Arrange
	tier, mock := newMockSQLiteTier(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO store_entries").
		WithArgs("recipes", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO store_entries").
		WithArgs("upvotedRecipeIds", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	// Act
	err := tier.SetMany(context.Background(), map[string][]byte{
		"upvotedRecipeIds": []byte("[1]"),
		"recipes":          []byte("[]"),
	})

	// Assert
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTier_SetManyCommits(t *testing.T) {
	tier, mock := newMockSQLiteTier(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO store_entries").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO store_entries").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := tier.SetMany(context.Background(), map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTier_SetManyBeginError(t *testing.T) {
	tier, mock := newMockSQLiteTier(t)
	mock.ExpectBegin().WillReturnError(errors.New("busy"))

	err := tier.SetMany(context.Background(), map[string][]byte{"a": []byte("1")})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSQLiteTier_SetManyCommitError(t *testing.T) {
	tier, mock := newMockSQLiteTier(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO store_entries").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := tier.SetMany(context.Background(), map[string][]byte{"a": []byte("1")})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestSQLiteTier_DeleteAndClearErrors(t *testing.T) {
	tier, mock := newMockSQLiteTier(t)
	mock.ExpectExec("DELETE FROM store_entries WHERE key = ?").
		WithArgs("currentUser").
		WillReturnError(errors.New("readonly"))
	mock.ExpectExec("DELETE FROM store_entries").
		WillReturnError(errors.New("readonly"))

	assert.ErrorIs(t, tier.Delete(context.Background(), "currentUser"), ErrExecutingStatement)
	assert.ErrorIs(t, tier.Clear(context.Background()), ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

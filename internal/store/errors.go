package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnknownTier is returned when a [Tier] other than TierDurable or
	// TierSession is passed to [Storage].
	ErrUnknownTier = errors.New("unknown storage tier")

	// ErrUnsupportedDriver is returned by [NewStorages] when the configured
	// durable driver is neither "sqlite" nor "bolt".
	ErrUnsupportedDriver = errors.New("unsupported durable storage driver")

	// ErrStoreClosed is returned by the memory tier after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Low-level database operation errors. These are wrapped by the SQLite tier
// when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

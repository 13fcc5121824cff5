package store

import "errors"

// ErrPersistenceCorrupt is returned by [RecordStorage.Load] when the stored
// data cannot be decoded, holds an invalid record, or stores a record under
// a key other than the record's own. It is fatal at startup.
var ErrPersistenceCorrupt = errors.New("persisted data is corrupt")

// ErrUnknownBackend is returned by [NewStorages] for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite storage when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan record rows")
)

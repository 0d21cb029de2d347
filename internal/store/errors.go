package store

import "errors"

// Sentinel errors returned by the credential store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCredentialsNotSaved is returned when an update could not be
	// committed. The previously persisted set is left untouched.
	ErrCredentialsNotSaved = errors.New("credentials were not saved")

	// ErrCredentialsNotCleared is returned when the auth directory could not
	// be removed.
	ErrCredentialsNotCleared = errors.New("credentials were not cleared")

	// ErrStoreUnavailable is returned when the credential database cannot be
	// opened or migrated.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
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
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan credentials row")
)

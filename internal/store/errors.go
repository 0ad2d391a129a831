package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user fails because
	// the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the requested email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrProductNotFound is returned when a read, update or delete targets a
	// product id that does not exist.
	ErrProductNotFound = errors.New("product was not found")

	// ErrDuplicate is returned when a statement violates a unique constraint.
	ErrDuplicate = errors.New("duplicate value")

	// ErrInvalidData is returned when the database rejects a value (NOT NULL,
	// CHECK, or a malformed literal).
	ErrInvalidData = errors.New("invalid data")

	// ErrStoreUnavailable is returned when the database cannot be reached or
	// refuses new connections.
	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when binding named parameters to a
	// statement fails (e.g. a placeholder with no matching field).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrAcquiringSession is returned when no connection could be checked
	// out of the pool or the session options could not be applied.
	ErrAcquiringSession = errors.New("failed to acquire database session")
)

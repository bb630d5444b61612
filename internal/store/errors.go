package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCommandNotFound is returned when a query, patch, or soft-delete
	// targets a command id that does not exist or is no longer active.
	ErrCommandNotFound = errors.New("command was not found")

	// ErrDuplicateTitle is returned when an INSERT or UPDATE on the commands
	// table hits the unique constraint on the title column.
	ErrDuplicateTitle = errors.New("command title already exists")

	// ErrMissingRequiredField is returned when a not-null or check constraint
	// rejects a command write, meaning a required field was empty or invalid.
	ErrMissingRequiredField = errors.New("required field is missing")

	// ErrPermissionDenied is returned when the database rejects an operation
	// on privilege grounds.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAlreadyFavorite is returned when a favorite insert targets a
	// (user, command) pair that already has a row.
	ErrAlreadyFavorite = errors.New("command is already a favorite")

	// ErrFavoriteNotFound is returned when a favorite removal targets a
	// (user, command) pair that has no row.
	ErrFavoriteNotFound = errors.New("favorite was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

package store

import "errors"

// Sentinel errors returned by credential stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned by Load when no token is stored,
	// which means the user is logged out.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrUnknownBackend is returned by NewCredentialStore for a backend name
	// it does not recognise.
	ErrUnknownBackend = errors.New("unknown credential backend")
)

// Low-level database operation errors, wrapped by the SQLite store when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

// Errors returned by the in-memory TIL repository backing the stub API.
var (
	// ErrEntityNotFound is returned when an acronym, category or user id
	// does not exist.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrUsernameTaken is returned when a user is created with a username
	// that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned when a username and password pair
	// does not match any user.
	ErrInvalidCredentials = errors.New("invalid username/password")
)

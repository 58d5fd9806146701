package store

import "errors"

// Domain errors surfaced by the stores. The handler layer owns the
// mapping to HTTP status codes.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUser means the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already registered")

	// ErrSelfConnection means a user tried to follow or request
	// themselves.
	ErrSelfConnection = errors.New("cannot connect with yourself")

	// ErrDuplicateRelationship means the follow edge already exists.
	ErrDuplicateRelationship = errors.New("relationship already exists")

	// ErrDuplicateRequest means a request between the pair already
	// exists, whatever its status.
	ErrDuplicateRequest = errors.New("connection request already exists")

	// ErrRequestNotActionable covers a request that does not exist, does
	// not belong to the caller, or was already processed. The three
	// cases are indistinguishable to the caller.
	ErrRequestNotActionable = errors.New("connection request not found or already processed")
)

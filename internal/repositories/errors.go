package repositories

import "errors"

// Sentinel errors shared by all repositories. Handlers map these to HTTP
// statuses; the recommendation engine maps ErrNotFound on user lookups to
// its own ErrUserNotFound.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateInteraction is returned when a like already exists for the
	// (user, post) pair. The database constraint, not an application check,
	// is what detects the duplicate, so concurrent attempts resolve to
	// exactly one persisted like.
	ErrDuplicateInteraction = errors.New("duplicate interaction")
)

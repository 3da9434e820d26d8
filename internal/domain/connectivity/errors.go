package connectivity

import "errors"

var (
	ErrInvalidMode = errors.New("invalid connectivity mode")

	// ErrPreferenceNotFound is returned by a PreferenceStorage when the key has
	// never been written.
	ErrPreferenceNotFound = errors.New("connectivity preference not found")

	// ErrStorageUnavailable wraps any failure of the durable preference storage.
	// Stores log it and continue with in-memory state.
	ErrStorageUnavailable = errors.New("preference storage unavailable")
)

package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that no record exists under the requested key
	ErrRecordNotFound = errors.New("record not found")

	// ErrCollectionNotFound indicates that the named collection does not exist.
	// Read paths usually degrade this to "empty" instead of propagating it.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidPayload indicates that a payload is not a JSON object
	ErrInvalidPayload = errors.New("payload must be a JSON object")
)

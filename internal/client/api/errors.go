// Package api implements the HTTP clients for the external collaborators:
// the identity provider's token endpoint and (via the drive package) the
// remote object store. It also defines the shared error taxonomy.
package api

import (
	"errors"
	"fmt"
)

// Sentinel errors of the taxonomy
var (
	// ErrInvalidGrant means the identity provider rejected the refresh
	// token itself. The only recovery is a full logout and re-login.
	ErrInvalidGrant = errors.New("refresh token rejected by identity provider")

	// ErrNoSession means no usable token exists and none can be minted.
	ErrNoSession = errors.New("no authenticated session")

	// ErrPermissionDenied means the remote store refused a write (HTTP 403
	// or an explicit permission message).
	ErrPermissionDenied = errors.New("permission denied by remote store")
)

// APIError is a remote HTTP failure carrying the response status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// NetworkError is a fetch-level failure (connection refused, timeout,
// offline) as opposed to an HTTP error response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNetworkError reports whether err is fetch-level rather than an HTTP
// status failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// ValidationError is malformed local input detected before any I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

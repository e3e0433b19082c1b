package auth

import "context"

//go:generate moq -out mocks.go . SecretStore Wiper

// SecretStore is the encrypted field store the token manager persists
// through. Implemented by secure.Store: values are encrypted before they
// reach disk and reads fail closed.
type SecretStore interface {
	// Save encrypts and persists v under key
	Save(ctx context.Context, key string, v any) error

	// Get decrypts the value under key into out; false means "not present"
	// (absent, corrupt or undecryptable are indistinguishable by contract)
	Get(ctx context.Context, key string, out any) bool

	// Delete removes one field
	Delete(ctx context.Context, key string) error

	// Clear removes every sensitive field
	Clear(ctx context.Context) error
}

// Wiper clears per-user local state during a forced logout. The history
// repository and cache layer register here so an invalid refresh token
// leaves no user data behind.
type Wiper interface {
	// WipeUserData removes all local data belonging to userID
	WipeUserData(ctx context.Context, userID string) error
}

// TokenProvider is the outbound-call view of the token manager. All
// authenticated requests obtain their bearer token here and nowhere else.
type TokenProvider interface {
	// GetValidAccessToken returns a currently valid token, refreshing if
	// necessary
	GetValidAccessToken(ctx context.Context) (string, error)

	// Invalidate discards the current validity belief so the next
	// GetValidAccessToken performs a real refresh (used after a 401)
	Invalidate()

	// Logout clears the session and all sensitive local state
	Logout(ctx context.Context) error
}

package models

// UserProfile holds the identity-provider profile for the logged-in user.
// It is persisted only through the secure field store (encrypted at rest).
type UserProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

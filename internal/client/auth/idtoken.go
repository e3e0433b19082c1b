package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/blogkeeper/internal/models"
)

// idTokenClaims are the profile claims carried by the provider's ID token.
type idTokenClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// ParseIDToken extracts the user profile from the provider's ID token.
// Claims are read without signature verification: the token arrives over
// TLS straight from the token endpoint and is used only for display and as
// the local storage key, never as an authorization proof.
func ParseIDToken(idToken string) (*models.UserProfile, error) {
	claims := &idTokenClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("malformed id token: %w", err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("id token has no subject claim")
	}

	return &models.UserProfile{
		ID:      claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

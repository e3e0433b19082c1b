// Package api holds the wire types exchanged with the identity provider and
// the remote object store. The client depends only on these JSON contracts,
// not on any provider SDK.
package api

// TokenResponse is returned by the identity provider's token endpoint for
// both authorization_code and refresh_token grants. RefreshToken is only
// present on the initial exchange (and occasionally on rotation).
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

// OAuthError is the error body of a failed token-endpoint call.
// Error is a machine code such as "invalid_grant".
type OAuthError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

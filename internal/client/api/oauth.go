package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"

	pkgapi "github.com/iudanet/blogkeeper/pkg/api"
)

// DefaultTokenURL is the identity provider's token endpoint.
const DefaultTokenURL = "https://oauth2.googleapis.com/token"

//go:generate moq -out oauth_mock.go . TokenExchanger

// TokenExchanger is the identity-provider contract the token lifecycle
// manager depends on: grant-type exchanges returning bearer tokens.
type TokenExchanger interface {
	// ExchangeCode trades an authorization code for tokens (initial login).
	ExchangeCode(ctx context.Context, code string) (*pkgapi.TokenResponse, error)

	// RefreshAccessToken mints a new access token from the refresh token.
	// Returns ErrInvalidGrant when the provider rejects the refresh token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error)
}

// OAuthConfig carries the client credentials for the token endpoint.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	TokenURL     string
}

// OAuthClient talks to the identity provider's token endpoint.
type OAuthClient struct {
	httpClient *http.Client
	cfg        OAuthConfig
}

// Compile-time check that OAuthClient implements TokenExchanger
var _ TokenExchanger = (*OAuthClient)(nil)

// NewOAuthClient creates the token-endpoint client. The explicit timeout
// bounds refresh calls that would otherwise hang on a dead network.
func NewOAuthClient(cfg OAuthConfig) *OAuthClient {
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	return &OAuthClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ExchangeCode trades an authorization code for tokens.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (*pkgapi.TokenResponse, error) {
	if code == "" {
		return nil, &ValidationError{Field: "authorization code", Reason: "cannot be empty"}
	}

	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"redirect_uri":  {c.cfg.RedirectURI},
	}

	resp, err := c.doTokenRequest(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}
	return resp, nil
}

// RefreshAccessToken mints a new access token from the refresh token.
func (c *OAuthClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error) {
	if refreshToken == "" {
		return nil, &ValidationError{Field: "refresh token", Reason: "cannot be empty"}
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}

	resp, err := c.doTokenRequest(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}
	return resp, nil
}

// doTokenRequest posts the form to the token endpoint, retrying transient
// failures. Provider-reported grant errors are never retried.
func (c *OAuthClient) doTokenRequest(ctx context.Context, form url.Values) (*pkgapi.TokenResponse, error) {
	var token *pkgapi.TokenResponse

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL,
				strings.NewReader(form.Encode()))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
			}
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return &NetworkError{Err: err}
			}
			defer func() {
				_ = resp.Body.Close()
			}()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return &NetworkError{Err: err}
			}

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				var oauthErr pkgapi.OAuthError
				if json.Unmarshal(body, &oauthErr) == nil && oauthErr.Error == "invalid_grant" {
					return retry.Unrecoverable(fmt.Errorf("%w: %s", ErrInvalidGrant, oauthErr.ErrorDescription))
				}
				apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
				if resp.StatusCode >= 500 {
					return apiErr
				}
				return retry.Unrecoverable(apiErr)
			}

			var parsed pkgapi.TokenResponse
			if err := json.Unmarshal(body, &parsed); err != nil {
				return retry.Unrecoverable(fmt.Errorf("failed to decode token response: %w", err))
			}
			if parsed.AccessToken == "" {
				return retry.Unrecoverable(fmt.Errorf("token response has no access_token"))
			}

			token = &parsed
			return nil
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	return token, nil
}

package auth

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/blogkeeper/internal/client/api"
)

// Transport is the authenticated-fetch wrapper. Every outbound call to the
// remote object store goes through Do, which injects the bearer token and
// performs exactly one refresh-and-retry on a 401. A second 401 escalates
// to a forced logout, bounding retry storms to O(1) per request.
type Transport struct {
	tokens     TokenProvider
	httpClient *http.Client
	logger     *slog.Logger
}

// NewTransport creates the wrapper. The client timeout bounds every remote
// call, including refresh-triggered retries.
func NewTransport(tokens TokenProvider, logger *slog.Logger) *Transport {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transport{
		tokens: tokens,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Do executes an authenticated request. The body is passed as bytes so the
// request can be rebuilt for the single post-refresh retry.
func (t *Transport) Do(ctx context.Context, method, url, contentType string, body []byte) (*http.Response, error) {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := t.tokens.GetValidAccessToken(ctx)
		if err != nil {
			return nil, err
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := t.httpClient.Do(req)
		if err != nil {
			return nil, &api.NetworkError{Err: err}
		}

		if resp.StatusCode != http.StatusUnauthorized {
			return resp, nil
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if attempt == 0 {
			t.logger.Debug("request rejected with 401, refreshing token once", "url", url)
			t.tokens.Invalidate()
		}
	}

	// Two 401s in a row: the refreshed token is also rejected
	t.logger.Warn("request still unauthorized after token refresh, forcing logout", "url", url)
	if err := t.tokens.Logout(ctx); err != nil {
		t.logger.Warn("forced logout failed", "error", err)
	}

	return nil, fmt.Errorf("request unauthorized after token refresh: %w", api.ErrNoSession)
}

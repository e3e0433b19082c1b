// Package auth implements the token lifecycle manager: it owns the current
// access token, its validity window and the refresh-on-demand routine, and
// it is the single authorized source of bearer tokens for outbound calls.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/blogkeeper/internal/client/api"
	"github.com/iudanet/blogkeeper/internal/client/secure"
	"github.com/iudanet/blogkeeper/internal/models"
	pkgapi "github.com/iudanet/blogkeeper/pkg/api"
)

// DefaultTokenLifetime applies when the provider omits expires_in.
const DefaultTokenLifetime = 3600 * time.Second

// State is the lifecycle position of the managed token.
type State int

const (
	StateNoToken State = iota
	StateValid
	StateExpired
	StateRefreshing
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateNoToken:
		return "no token"
	case StateValid:
		return "valid"
	case StateExpired:
		return "expired"
	case StateRefreshing:
		return "refreshing"
	case StateInvalid:
		return "invalid"
	}
	return "unknown"
}

// tokenRecord is the durable encrypted copy of the access-token state.
// The in-memory copy is a per-process hint; this record is the shared truth
// across processes using the same database.
type tokenRecord struct {
	Token     string `json:"token"`
	IssuedAt  int64  `json:"issuedAt"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Service is the token lifecycle manager.
type Service struct {
	exchanger api.TokenExchanger
	secrets   SecretStore
	wipers    []Wiper
	logger    *slog.Logger
	now       func() time.Time

	mu           sync.Mutex
	token        string
	issuedAt     int64
	expiresAt    int64
	forceRefresh bool
	refreshing   bool
	profile      *models.UserProfile
}

// Compile-time check that Service implements TokenProvider
var _ TokenProvider = (*Service)(nil)

// NewService creates the token manager. Wipers are invoked on forced
// logout, after the encrypted fields are cleared.
func NewService(exchanger api.TokenExchanger, secrets SecretStore, logger *slog.Logger, wipers ...Wiper) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		exchanger: exchanger,
		secrets:   secrets,
		wipers:    wipers,
		logger:    logger,
		now:       time.Now,
	}
}

// AddWiper registers an additional logout cleanup hook. Needed for wipers
// whose own construction depends on this service (the sync orchestrator
// reaches the remote store through the authenticated transport).
func (s *Service) AddWiper(w Wiper) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wipers = append(s.wipers, w)
}

// SetSession installs a fresh token from the identity provider (login or
// code exchange), persisting the encrypted copies. The user profile is
// extracted from the ID token when present.
func (s *Service) SetSession(ctx context.Context, tok *pkgapi.TokenResponse) (*models.UserProfile, error) {
	if tok == nil || tok.AccessToken == "" {
		return nil, &api.ValidationError{Field: "token response", Reason: "missing access token"}
	}

	var profile *models.UserProfile
	if tok.IDToken != "" {
		parsed, err := ParseIDToken(tok.IDToken)
		if err != nil {
			return nil, fmt.Errorf("failed to parse id token: %w", err)
		}
		profile = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.adoptLocked(ctx, tok); err != nil {
		return nil, err
	}

	if profile != nil {
		s.profile = profile
		if err := s.secrets.Save(ctx, secure.KeyUserProfile, profile); err != nil {
			return nil, fmt.Errorf("failed to persist user profile: %w", err)
		}
	}

	return s.profile, nil
}

// adoptLocked stamps and persists a provider token response. Caller holds mu.
func (s *Service) adoptLocked(ctx context.Context, tok *pkgapi.TokenResponse) error {
	lifetime := DefaultTokenLifetime
	if tok.ExpiresIn > 0 {
		lifetime = time.Duration(tok.ExpiresIn) * time.Second
	}

	now := s.now().UnixMilli()
	s.token = tok.AccessToken
	s.issuedAt = now
	s.expiresAt = now + lifetime.Milliseconds()
	s.forceRefresh = false

	record := tokenRecord{Token: s.token, IssuedAt: s.issuedAt, ExpiresAt: s.expiresAt}
	if err := s.secrets.Save(ctx, secure.KeyAuthToken, record); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}

	// Refresh-token rotation: persist only when the provider sent one
	if tok.RefreshToken != "" {
		if err := s.secrets.Save(ctx, secure.KeyRefreshToken, tok.RefreshToken); err != nil {
			return fmt.Errorf("failed to persist refresh token: %w", err)
		}
	}

	return nil
}

// GetValidAccessToken returns a token guaranteed valid at call time,
// refreshing through the identity provider when the current one expired.
// A failed refresh terminates the session: encrypted fields and per-user
// local data are cleared before the error is returned.
func (s *Service) GetValidAccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		s.loadDurableLocked(ctx)
	}

	now := s.now().UnixMilli()

	if !s.forceRefresh {
		if s.token != "" && now < s.expiresAt {
			return s.token, nil
		}

		// The in-memory window is a hint: another process sharing the
		// database may have refreshed already. Re-read the durable copy
		// before spending a network round-trip.
		if s.loadDurableLocked(ctx) && now < s.expiresAt {
			return s.token, nil
		}
	}

	return s.refreshLocked(ctx)
}

// refreshLocked exchanges the durable refresh token for a new access token.
// Caller holds mu.
func (s *Service) refreshLocked(ctx context.Context) (string, error) {
	var refreshToken string
	if !s.secrets.Get(ctx, secure.KeyRefreshToken, &refreshToken) || refreshToken == "" {
		s.logoutLocked(ctx)
		return "", fmt.Errorf("no refresh token available: %w", api.ErrNoSession)
	}

	s.refreshing = true
	s.logger.Debug("access token expired, refreshing")

	resp, err := s.exchanger.RefreshAccessToken(ctx, refreshToken)
	s.refreshing = false
	if err != nil {
		s.logoutLocked(ctx)
		if errors.Is(err, api.ErrInvalidGrant) {
			return "", fmt.Errorf("session terminated: %w", err)
		}
		return "", fmt.Errorf("token refresh failed, session terminated: %w", err)
	}

	if err := s.adoptLocked(ctx, resp); err != nil {
		return "", err
	}

	s.logger.Info("access token refreshed", "expires_at", time.UnixMilli(s.expiresAt))
	return s.token, nil
}

// loadDurableLocked adopts the encrypted on-disk token state if present.
// Caller holds mu. Returns true when a record was loaded.
func (s *Service) loadDurableLocked(ctx context.Context) bool {
	var record tokenRecord
	if !s.secrets.Get(ctx, secure.KeyAuthToken, &record) || record.Token == "" {
		return false
	}

	s.token = record.Token
	s.issuedAt = record.IssuedAt
	s.expiresAt = record.ExpiresAt

	if s.profile == nil {
		var profile models.UserProfile
		if s.secrets.Get(ctx, secure.KeyUserProfile, &profile) {
			s.profile = &profile
		}
	}

	return true
}

// Invalidate discards the validity belief so the next GetValidAccessToken
// performs a real refresh. Called by the transport after a 401: the token
// was rejected regardless of what our clock says.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forceRefresh = true
}

// State reports the current lifecycle position (status command).
func (s *Service) State(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" && !s.loadDurableLocked(ctx) {
		return StateNoToken
	}
	if s.refreshing {
		return StateRefreshing
	}
	if s.now().UnixMilli() < s.expiresAt {
		return StateValid
	}
	return StateExpired
}

// Profile returns the logged-in user's profile, loading the encrypted copy
// if this process has not seen it yet.
func (s *Service) Profile(ctx context.Context) (*models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		s.loadDurableLocked(ctx)
	}
	if s.profile == nil {
		var profile models.UserProfile
		if !s.secrets.Get(ctx, secure.KeyUserProfile, &profile) {
			return nil, false
		}
		s.profile = &profile
	}
	return s.profile, true
}

// Logout clears the session: encrypted fields, per-user local data and the
// in-memory state.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutLocked(ctx)
	return nil
}

// logoutLocked performs the forced-logout cleanup. Caller holds mu.
// Wiper failures are logged, not propagated: the session must end even if
// one cleanup step misbehaves.
func (s *Service) logoutLocked(ctx context.Context) {
	userID := ""
	if s.profile != nil {
		userID = s.profile.ID
	}

	if err := s.secrets.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear encrypted fields during logout", "error", err)
	}

	if userID != "" {
		for _, w := range s.wipers {
			if err := w.WipeUserData(ctx, userID); err != nil {
				s.logger.Warn("failed to wipe user data during logout", "error", err)
			}
		}
	}

	s.token = ""
	s.issuedAt = 0
	s.expiresAt = 0
	s.forceRefresh = false
	s.profile = nil

	s.logger.Info("session cleared")
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/iudanet/cityguide/internal/api"
	"github.com/iudanet/cityguide/internal/storage"
	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

// defaultRefreshHorizon is how close to expiry a token may get before an
// authenticated request triggers a proactive refresh.
const defaultRefreshHorizon = 5 * time.Minute

// ErrNotAuthenticated indicates no session exists on this device.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthAPI is the subset of the API client the manager needs. All of these
// endpoints are API-key-only, so none of them can re-enter the refresh path.
type AuthAPI interface {
	SignIn(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error)
	SignUp(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error)
	RecoverPassword(ctx context.Context, email string) error
}

// Manager owns the device session: the single authoritative copy of the
// access/refresh token pair. All other components hold at most a transient
// copy of the access token for one outbound call.
//
// Refresh is single-flight: arbitrarily many concurrent requests hitting
// expiry produce exactly one network call to the refresh endpoint, and every
// waiter re-checks the possibly-now-fresh token before a refresh is actually
// issued.
type Manager struct {
	api     AuthAPI
	store   storage.SessionStorage
	logger  *slog.Logger
	horizon time.Duration

	mu      sync.RWMutex
	session *storage.Session

	refreshGroup singleflight.Group
}

// Compile-time check that Manager implements the client's TokenSource
var _ api.TokenSource = (*Manager)(nil)

// NewManager creates a token lifecycle manager.
func NewManager(authAPI AuthAPI, store storage.SessionStorage, logger *slog.Logger) *Manager {
	return &Manager{
		api:     authAPI,
		store:   store,
		logger:  logger,
		horizon: defaultRefreshHorizon,
	}
}

// Load restores a persisted session into memory. Called once at process
// start; a missing session is not an error.
func (m *Manager) Load(ctx context.Context) error {
	session, err := m.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	m.mu.Lock()
	m.session = session
	m.mu.Unlock()
	return nil
}

// SignIn authenticates with the backend and installs the session.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	resp, err := m.api.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return m.install(ctx, email, resp)
}

// SignUp registers a new account and installs the session.
func (m *Manager) SignUp(ctx context.Context, email, password string) error {
	resp, err := m.api.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	return m.install(ctx, email, resp)
}

// RecoverPassword triggers a password-recovery email.
func (m *Manager) RecoverPassword(ctx context.Context, email string) error {
	return m.api.RecoverPassword(ctx, email)
}

// SignOut destroys the session locally.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()

	if err := m.store.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session returns a copy of the current session, or nil if signed out.
func (m *Manager) Session() *storage.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return nil
	}
	copied := *m.session
	return &copied
}

// UserID returns the signed-in user's id, or "" if signed out.
func (m *Manager) UserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return ""
	}
	return m.session.UserID
}

// IsAuthenticated reports whether a session exists.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session != nil
}

// AccessToken implements api.TokenSource. It is the proactive renewal path:
// if the stored expiry is within the refresh horizon the token is refreshed
// before the request goes out. Requests holding a comfortably valid token
// never block on a refresh in progress.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	session := m.session
	m.mu.RUnlock()

	if session == nil {
		return "", ErrNotAuthenticated
	}
	if !session.ExpiresWithin(m.horizon) {
		return session.AccessToken, nil
	}
	return m.refresh(ctx, session.AccessToken)
}

// RefreshAfterReject implements api.TokenSource. It is the reactive renewal
// path taken after a 401/403 on a data call.
func (m *Manager) RefreshAfterReject(ctx context.Context, stale string) (string, error) {
	return m.refresh(ctx, stale)
}

// refresh collapses concurrent refresh attempts into one network call.
// The double check inside the flight means a waiter that raced a completed
// refresh gets the fresh token without another round trip.
func (m *Manager) refresh(ctx context.Context, stale string) (string, error) {
	token, err, _ := m.refreshGroup.Do("refresh", func() (interface{}, error) {
		m.mu.RLock()
		session := m.session
		m.mu.RUnlock()

		if session == nil {
			return "", ErrNotAuthenticated
		}
		// Double check: another caller may have rotated the tokens while we
		// were waiting to enter the flight.
		if session.AccessToken != stale && !session.ExpiresWithin(m.horizon) {
			return session.AccessToken, nil
		}

		resp, err := m.api.RefreshToken(ctx, session.RefreshToken)
		if err != nil {
			return "", m.classifyRefreshFailure(ctx, err)
		}

		fresh := sessionFromToken(session.Email, resp)
		// Both tokens rotate on every refresh; the old refresh token is
		// dead from here on, so persistence failure is fatal for the call.
		m.mu.Lock()
		m.session = fresh
		m.mu.Unlock()

		if err := m.store.SaveSession(ctx, fresh); err != nil {
			return "", fmt.Errorf("failed to persist refreshed session: %w", err)
		}

		m.logger.Debug("session refreshed", "user_id", fresh.UserID,
			"expires_at", time.Unix(fresh.ExpiresAt, 0))
		return fresh.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// classifyRefreshFailure separates "credential truly invalid" from "could
// not reach the server". Only the former logs the user out; a network blip
// keeps the existing session and fails the current call alone.
func (m *Manager) classifyRefreshFailure(ctx context.Context, err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		m.logger.Warn("refresh token rejected, clearing session", "status", apiErr.StatusCode)

		m.mu.Lock()
		m.session = nil
		m.mu.Unlock()

		if delErr := m.store.DeleteSession(ctx); delErr != nil && !errors.Is(delErr, storage.ErrSessionNotFound) {
			m.logger.Error("failed to delete session after refresh rejection", "error", delErr)
		}
		return api.ErrSessionExpired
	}

	return fmt.Errorf("token refresh failed: %w", err)
}

// install persists a freshly issued session.
func (m *Manager) install(ctx context.Context, email string, resp *pkgapi.TokenResponse) error {
	session := sessionFromToken(email, resp)

	m.mu.Lock()
	m.session = session
	m.mu.Unlock()

	if err := m.store.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// sessionFromToken builds a session from a token response. The JWT claims
// are parsed without verification: the server is the verifier, the client
// only needs exp and sub.
func sessionFromToken(email string, resp *pkgapi.TokenResponse) *storage.Session {
	session := &storage.Session{
		UserID:       resp.User.ID,
		Email:        email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
	}
	if resp.User.Email != "" {
		session.Email = resp.User.Email
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			session.ExpiresAt = exp.Unix()
		}
		if sub, err := claims.GetSubject(); err == nil && sub != "" && session.UserID == "" {
			session.UserID = sub
		}
	}

	return session
}

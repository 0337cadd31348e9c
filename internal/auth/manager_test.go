package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cityguide/internal/api"
	"github.com/iudanet/cityguide/internal/storage"
	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// authAPIStub is a hand-rolled AuthAPI for manager tests.
type authAPIStub struct {
	signIn  func(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error)
	refresh func(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error)
}

func (s *authAPIStub) SignIn(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
	return s.signIn(ctx, email, password)
}

func (s *authAPIStub) SignUp(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
	return s.signIn(ctx, email, password)
}

func (s *authAPIStub) RefreshToken(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error) {
	return s.refresh(ctx, refreshToken)
}

func (s *authAPIStub) RecoverPassword(ctx context.Context, email string) error {
	return nil
}

// sessionStoreFixture wires a SessionStorageMock around one in-memory slot.
type sessionStoreFixture struct {
	mock *storage.SessionStorageMock

	mu      sync.Mutex
	session *storage.Session
}

func newSessionStoreFixture() *sessionStoreFixture {
	f := &sessionStoreFixture{}
	f.mock = &storage.SessionStorageMock{
		SaveSessionFunc: func(ctx context.Context, session *storage.Session) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			clone := *session
			f.session = &clone
			return nil
		},
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.session == nil {
				return nil, storage.ErrSessionNotFound
			}
			clone := *f.session
			return &clone, nil
		},
		DeleteSessionFunc: func(ctx context.Context) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.session == nil {
				return storage.ErrSessionNotFound
			}
			f.session = nil
			return nil
		},
	}
	return f
}

func (f *sessionStoreFixture) stored() *storage.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func tokenResponse(access, refresh string, expiresIn int64) *pkgapi.TokenResponse {
	return &pkgapi.TokenResponse{
		AccessToken:  access,
		TokenType:    "bearer",
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
		User:         pkgapi.User{ID: "user-1", Email: "me@example.com"},
	}
}

func installSession(t *testing.T, m *Manager, store *sessionStoreFixture, expiresAt int64) {
	t.Helper()
	session := &storage.Session{
		UserID:       "user-1",
		Email:        "me@example.com",
		AccessToken:  "access-0",
		RefreshToken: "refresh-0",
		ExpiresAt:    expiresAt,
	}
	store.mu.Lock()
	store.session = session
	store.mu.Unlock()
	require.NoError(t, m.Load(context.Background()))
}

func TestManager_LoadMissingSessionIsNotAnError(t *testing.T) {
	store := newSessionStoreFixture()
	m := NewManager(&authAPIStub{}, store.mock, testLogger())

	require.NoError(t, m.Load(context.Background()))
	assert.False(t, m.IsAuthenticated())
}

func TestManager_SignInInstallsSession(t *testing.T) {
	stub := &authAPIStub{
		signIn: func(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
			return tokenResponse("access-1", "refresh-1", 3600), nil
		},
	}
	store := newSessionStoreFixture()
	m := NewManager(stub, store.mock, testLogger())

	require.NoError(t, m.SignIn(context.Background(), "me@example.com", "secret"))

	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "user-1", m.UserID())

	persisted := store.stored()
	require.NotNil(t, persisted)
	assert.Equal(t, "access-1", persisted.AccessToken)
	assert.Equal(t, "refresh-1", persisted.RefreshToken)
}

func TestManager_AccessTokenWithoutSession(t *testing.T) {
	store := newSessionStoreFixture()
	m := NewManager(&authAPIStub{}, store.mock, testLogger())

	_, err := m.AccessToken(context.Background())
	assert.True(t, errors.Is(err, ErrNotAuthenticated))
}

func TestManager_AccessTokenFreshTokenPassesThrough(t *testing.T) {
	refreshCalls := int32(0)
	stub := &authAPIStub{
		refresh: func(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error) {
			atomic.AddInt32(&refreshCalls, 1)
			return tokenResponse("access-1", "refresh-1", 3600), nil
		},
	}
	store := newSessionStoreFixture()
	m := NewManager(stub, store.mock, testLogger())
	installSession(t, m, store, time.Now().Add(time.Hour).Unix())

	token, err := m.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-0", token)
	assert.Zero(t, atomic.LoadInt32(&refreshCalls))
}

func TestManager_AccessTokenRefreshesNearExpiry(t *testing.T) {
	stub := &authAPIStub{
		refresh: func(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error) {
			assert.Equal(t, "refresh-0", refreshToken)
			return tokenResponse("access-1", "refresh-1", 3600), nil
		},
	}
	store := newSessionStoreFixture()
	m := NewManager(stub, store.mock, testLogger())
	// Expires in one minute, well inside the five-minute horizon.
	installSession(t, m, store, time.Now().Add(time.Minute).Unix())

	token, err := m.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", token)

	// Both tokens rotated and were persisted.
	persisted := store.stored()
	require.NotNil(t, persisted)
	assert.Equal(t, "refresh-1", persisted.RefreshToken)
}

func TestManager_ConcurrentRefreshIsSingleFlight(t *testing.T) {
	var refreshCalls int32
	stub := &authAPIStub{
		refresh: func(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error) {
			atomic.AddInt32(&refreshCalls, 1)
			time.Sleep(50 * time.Millisecond) // let the other goroutines pile up
			return tokenResponse("access-1", "refresh-1", 3600), nil
		},
	}
	store := newSessionStoreFixture()
	m := NewManager(stub, store.mock, testLogger())
	installSession(t, m, store, time.Now().Add(time.Minute).Unix())

	const workers = 10
	var wg sync.WaitGroup
	tokens := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = m.AccessToken(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "access-1", tokens[i])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls),
		"concurrent expiry must produce exactly one refresh call")
}

func TestManager_RefreshAfterRejectSkipsRedundantRefresh(t *testing.T) {
	var refreshCalls int32
	stub := &authAPIStub{
		refresh: func(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error) {
			atomic.AddInt32(&refreshCalls, 1)
			return tokenResponse("access-1", "refresh-1", 3600), nil
		},
	}
	store := newSessionStoreFixture()
	m := NewManager(stub, store.mock, testLogger())
	installSession(t, m, store, time.Now().Add(time.Hour).Unix())

	// First reject with the stale token triggers a real refresh.
	token, err := m.RefreshAfterReject(context.Background(), "access-0")
	require.NoError(t, err)
	assert.Equal(t, "access-1", token)

	// A caller that raced the rotation and still holds the old token gets
	// the fresh one without another network call.
	token, err = m.RefreshAfterReject(context.Background(), "access-0")
	require.NoError(t, err)
	assert.Equal(t, "access-1", token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
}

func TestManager_RefreshRejectionClearsSession(t *testing.T) {
	stub := &authAPIStub{
		refresh: func(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error) {
			return nil, &api.Error{Message: "invalid_grant", StatusCode: http.StatusBadRequest}
		},
	}
	store := newSessionStoreFixture()
	m := NewManager(stub, store.mock, testLogger())
	installSession(t, m, store, time.Now().Add(time.Minute).Unix())

	_, err := m.AccessToken(context.Background())
	assert.True(t, errors.Is(err, api.ErrSessionExpired))

	// Session is gone both in memory and on disk.
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, store.stored())
}

func TestManager_TransientRefreshFailureKeepsSession(t *testing.T) {
	stub := &authAPIStub{
		refresh: func(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error) {
			return nil, &api.Error{Message: "bad gateway", StatusCode: http.StatusBadGateway}
		},
	}
	store := newSessionStoreFixture()
	m := NewManager(stub, store.mock, testLogger())
	installSession(t, m, store, time.Now().Add(time.Minute).Unix())

	_, err := m.AccessToken(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, api.ErrSessionExpired))

	// A server hiccup must not log the user out.
	assert.True(t, m.IsAuthenticated())
	assert.NotNil(t, store.stored())
}

func TestManager_SignOutDeletesSession(t *testing.T) {
	store := newSessionStoreFixture()
	m := NewManager(&authAPIStub{}, store.mock, testLogger())
	installSession(t, m, store, time.Now().Add(time.Hour).Unix())

	require.NoError(t, m.SignOut(context.Background()))
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, store.stored())

	// Signing out twice is fine.
	require.NoError(t, m.SignOut(context.Background()))
}

func TestSessionFromToken_FallsBackToExpiresIn(t *testing.T) {
	before := time.Now().Unix()
	session := sessionFromToken("me@example.com", tokenResponse("not-a-jwt", "r", 3600))

	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "me@example.com", session.Email)
	assert.GreaterOrEqual(t, session.ExpiresAt, before+3600)
}

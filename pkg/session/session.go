// Package session holds the client-side login session: the bearer token and
// the cached user projection, with an explicit lifecycle.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/pkg/user"
)

// State is the lifecycle state of a session
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateExpired        State = "expired"
)

var (
	// ErrNotAuthenticated is returned when an operation needs a live session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrLoginInProgress is returned when Login is called while another login runs.
	ErrLoginInProgress = errors.New("login already in progress")
)

// Data is the persisted form of a session
type Data struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      *user.PublicUser `json:"user"`
}

// Snapshot is a point-in-time view of a session
type Snapshot struct {
	State     State
	User      *user.PublicUser
	ExpiresAt time.Time
}

// Authenticator exchanges credentials for a token
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*user.LoginResponse, error)
}

// Session is safe for concurrent use
type Session struct {
	mu             sync.RWMutex
	store          Store
	data           *Data
	authenticating bool
	now            func() time.Time
	logger         *zap.Logger
}

// New creates an anonymous session persisted through store
func New(store Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		store:  store,
		now:    time.Now,
		logger: logger,
	}
}

// Hydrate restores a persisted session. A missing session leaves it anonymous.
func (s *Session) Hydrate(ctx context.Context) error {
	data, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()

	s.logger.Debug("session restored", zap.String("state", string(s.State())))
	return nil
}

// Login authenticates with email and password. On failure the session keeps its previous state.
func (s *Session) Login(ctx context.Context, authn Authenticator, email, password string) (*user.PublicUser, error) {
	s.mu.Lock()
	if s.authenticating {
		s.mu.Unlock()
		return nil, ErrLoginInProgress
	}
	s.authenticating = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.authenticating = false
		s.mu.Unlock()
	}()

	resp, err := authn.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.authenticate(ctx, resp.Token, resp.User, resp.ExpiresAt); err != nil {
		return nil, err
	}
	return cloneUser(resp.User), nil
}

// Authenticate installs a token and user obtained elsewhere
func (s *Session) Authenticate(ctx context.Context, token string, usr *user.PublicUser) error {
	return s.authenticate(ctx, token, usr, time.Time{})
}

func (s *Session) authenticate(ctx context.Context, token string, usr *user.PublicUser, fallbackExpiry time.Time) error {
	if token == "" || usr == nil {
		return errors.New("token and user are required")
	}
	expiresAt, err := TokenExpiry(token)
	if err != nil {
		return err
	}
	if expiresAt.IsZero() {
		expiresAt = fallbackExpiry
	}

	data := &Data{Token: token, ExpiresAt: expiresAt, User: cloneUser(usr)}
	if err := s.store.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()

	s.logger.Info("session authenticated",
		zap.Int64("user_id", usr.ID),
		zap.Time("expires_at", expiresAt))
	return nil
}

// SetUser replaces the cached user projection and persists it
func (s *Session) SetUser(ctx context.Context, usr *user.PublicUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return ErrNotAuthenticated
	}
	next := *s.data
	next.User = cloneUser(usr)
	if err := s.store.Save(ctx, &next); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.data = &next
	return nil
}

// Logout drops the session locally and from the store
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info("session cleared")
	return nil
}

// State derives the lifecycle state; Expired once now >= expiresAt
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	switch {
	case s.authenticating:
		return StateAuthenticating
	case s.data == nil:
		return StateAnonymous
	case s.expiredLocked():
		return StateExpired
	default:
		return StateAuthenticated
	}
}

// Token returns the bearer token of an authenticated session, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil || s.expiredLocked() {
		return ""
	}
	return s.data.Token
}

func (s *Session) expiredLocked() bool {
	return !s.data.ExpiresAt.IsZero() && !s.now().Before(s.data.ExpiresAt)
}

// User returns a copy of the cached user projection, or nil
func (s *Session) User() *user.PublicUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil
	}
	return cloneUser(s.data.User)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{State: s.stateLocked()}
	if s.data != nil {
		snap.User = cloneUser(s.data.User)
		snap.ExpiresAt = s.data.ExpiresAt
	}
	return snap
}

// TokenExpiry reads the exp claim without verifying the signature. A token
// without exp yields the zero time.
func TokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("malformed session token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

func cloneUser(u *user.PublicUser) *user.PublicUser {
	if u == nil {
		return nil
	}
	cp := *u
	if u.WalletAddress != nil {
		addr := *u.WalletAddress
		cp.WalletAddress = &addr
	}
	return &cp
}

// Package session keeps the operator tokens for the lifetime of the
// process. Only the auth use cases write to it.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

var _ port.Session = (*Session)(nil)

type Session struct {
	store port.TokenStore
	now   func() time.Time

	mu     sync.RWMutex
	tokens domain.Tokens
}

type Opt func(*Session)

// WithClock replaces time.Now for the expiry check.
func WithClock(now func() time.Time) Opt {
	return func(s *Session) {
		s.now = now
	}
}

func New(store port.TokenStore, opts ...Opt) *Session {
	s := &Session{store: store, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load restores the tokens from the store. A malformed entry is removed
// and an access token past its exp claim is cleared; both leave the
// session logged out without an error.
func (s *Session) Load(ctx context.Context) error {
	const op = "Session.Load"
	log := slog.With("op", op)

	t, ok, err := s.store.Load(ctx)
	if errors.Is(err, domain.ErrMalformedTokens) {
		log.Warn("removing malformed tokens", "err", err)
		return s.Clear(ctx)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok || t.Empty() {
		log.Info("no stored session")
		return nil
	}

	if s.expired(t.AccessToken) {
		log.Info("stored access token is expired")
		return s.Clear(ctx)
	}

	s.mu.Lock()
	s.tokens = t
	s.mu.Unlock()

	log.Info("session restored")
	return nil
}

// expired reads the exp claim without verifying the signature. Tokens
// that are not JWTs or carry no exp never expire here.
func (s *Session) expired(accessToken string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(accessToken, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(s.now())
}

func (s *Session) Set(ctx context.Context, t domain.Tokens) error {
	const op = "Session.Set"

	if t.Empty() {
		return s.Clear(ctx)
	}
	if err := s.store.Save(ctx, t); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.tokens = t
	s.mu.Unlock()
	return nil
}

// Clear logs out. The in-memory tokens are dropped even if the store
// fails.
func (s *Session) Clear(ctx context.Context) error {
	const op = "Session.Clear"

	s.mu.Lock()
	s.tokens = domain.Tokens{}
	s.mu.Unlock()

	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.AccessToken
}

func (s *Session) Tokens() domain.Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

func (s *Session) Authenticated() bool {
	return s.AccessToken() != ""
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

// Login exchanges the credentials for tokens. Any failure leaves the
// session logged out.
func (s Service) Login(ctx context.Context, c domain.Credentials) error {
	const op = "Service.Login"
	log := slog.With("op", op)

	if err := c.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tokens, err := s.backend.Login(ctx, c)
	if err == nil && tokens.Empty() {
		err = ErrInvalidLoginResponse
	}
	if err == nil {
		err = s.session.Set(ctx, tokens)
	}
	if err != nil {
		if clearErr := s.session.Clear(ctx); clearErr != nil {
			log.Warn("failed to clear session", "err", clearErr)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("operator signed in")
	return nil
}

func (s Service) Register(ctx context.Context, r domain.Registration) error {
	const op = "Service.Register"

	if err := r.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.backend.Register(ctx, r); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) Logout(ctx context.Context) error {
	const op = "Service.Logout"

	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	slog.With("op", op).Info("operator signed out")
	return nil
}

func (s Service) Authenticated() bool {
	return s.session.Authenticated()
}

// expire clears the session when err is a rejected token and converts
// it to ErrSessionExpired.
func (s Service) expire(ctx context.Context, err error) error {
	if !isUnauthorized(err) {
		return err
	}
	const op = "Service.expire"
	log := slog.With("op", op)

	log.Info("access token rejected, clearing session")
	if clearErr := s.session.Clear(ctx); clearErr != nil {
		log.Warn("failed to clear session", "err", clearErr)
	}
	return errors.Join(ErrSessionExpired, err)
}

package service_test

import (
	"errors"
	"testing"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	creds := domain.Credentials{Email: "admin@shop.vn", Password: "secret"}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.session.tokens = domain.Tokens{}
		tokens := domain.Tokens{AccessToken: "a", RefreshToken: "r"}
		f.backend.On("Login", t.Context(), creds).Return(tokens, nil)

		require.NoError(t, f.svc.Login(t.Context(), creds))
		assert.Equal(t, tokens, f.session.tokens)
		assert.True(t, f.svc.Authenticated())
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.Login(t.Context(), domain.Credentials{Email: " "})
		assert.ErrorIs(t, err, domain.ErrCredentialsRequired)
		f.backend.AssertNotCalled(t, "Login")
	})

	t.Run("NoAccessTokenClears", func(t *testing.T) {
		f := newFixture(t)
		f.backend.On("Login", t.Context(), creds).
			Return(domain.Tokens{RefreshToken: "r"}, nil)

		err := f.svc.Login(t.Context(), creds)
		assert.ErrorIs(t, err, service.ErrInvalidLoginResponse)
		assert.False(t, f.svc.Authenticated())
		assert.Equal(t, 1, f.session.cleared)
	})

	t.Run("BackendErrorClears", func(t *testing.T) {
		f := newFixture(t)
		f.backend.On("Login", t.Context(), creds).
			Return(domain.Tokens{}, apiError{401, "wrong password"})

		err := f.svc.Login(t.Context(), creds)
		require.Error(t, err)
		assert.Equal(t, "wrong password", service.Message(err, "login failed"))
		assert.False(t, f.svc.Authenticated())
	})

	t.Run("StoreErrorClears", func(t *testing.T) {
		f := newFixture(t)
		f.session.setErr = errors.New("disk full")
		f.backend.On("Login", t.Context(), creds).
			Return(domain.Tokens{AccessToken: "a"}, nil)

		assert.Error(t, f.svc.Login(t.Context(), creds))
		assert.Equal(t, 1, f.session.cleared)
	})
}

func TestRegister(t *testing.T) {
	r := domain.Registration{Email: "new@shop.vn", Password: "pw", FullName: "New Admin"}

	f := newFixture(t)
	f.backend.On("Register", t.Context(), r).Return(nil)
	require.NoError(t, f.svc.Register(t.Context(), r))

	err := f.svc.Register(t.Context(), domain.Registration{Email: "x@y"})
	assert.ErrorIs(t, err, domain.ErrCredentialsRequired)
	f.backend.AssertNumberOfCalls(t, "Register", 1)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Logout(t.Context()))
	assert.False(t, f.svc.Authenticated())
}

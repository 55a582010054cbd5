package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "access"

var fixedNow = time.Date(2025, 3, 8, 9, 30, 0, 0, time.UTC)

// apiError mimics a backend error with a server supplied message.
type apiError struct {
	status int
	msg    string
}

func (e apiError) Error() string { return fmt.Sprintf("status %d: %s", e.status, e.msg) }

func (e apiError) UserMessage() string { return e.msg }

func (e apiError) Is(target error) bool {
	return target == port.ErrUnauthorized && e.status == 401
}

type fixture struct {
	backend *MockBackend
	session *fakeSession
	audit   *MockAuditPublisher
	svc     service.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		backend: new(MockBackend),
		session: &fakeSession{tokens: domain.Tokens{AccessToken: testToken}},
		audit:   new(MockAuditPublisher),
	}
	svc, err := service.New(f.backend, f.session,
		service.AuditOpt(f.audit),
		service.ClockOpt(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)
	f.svc = svc
	return f
}

func (f fixture) expectAudit(kind domain.AuditKind, subject string) {
	f.audit.On("PublishAudit", mock.Anything, mock.MatchedBy(
		func(e domain.AuditEvent) bool {
			return e.Kind == kind && e.Subject == subject &&
				e.ID != "" && e.OccurredAt.Equal(fixedNow)
		},
	)).Return(nil).Once()
}

func TestNew(t *testing.T) {
	_, err := service.New(new(MockBackend), &fakeSession{}, service.AuditOpt(nil))
	assert.Error(t, err)
}

func TestAuditPublish(t *testing.T) {
	newService := func(t *testing.T, f fixture) service.Service {
		t.Helper()
		svc, err := service.New(f.backend, f.session,
			service.AuditOpt(f.audit),
			service.AuditTimeoutOpt(50*time.Millisecond),
		)
		require.NoError(t, err)
		return svc
	}

	t.Run("StuckPublisherDoesNotBlockMutation", func(t *testing.T) {
		f := newFixture(t)
		svc := newService(t, f)
		f.backend.On("DeleteProduct", mock.Anything, testToken, int64(5)).Return(nil)
		f.audit.On("PublishAudit", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return(context.DeadlineExceeded).Once()

		done := make(chan error, 1)
		go func() { done <- svc.DeleteProduct(t.Context(), 5) }()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("mutation blocked on the audit publisher")
		}
		f.audit.AssertExpectations(t)
	})

	t.Run("OutlivesCanceledRequest", func(t *testing.T) {
		f := newFixture(t)
		svc := newService(t, f)
		ctx, cancel := context.WithCancel(t.Context())

		f.backend.On("DeleteProduct", mock.Anything, testToken, int64(5)).
			Run(func(mock.Arguments) { cancel() }).
			Return(nil)

		var publishErr error
		f.audit.On("PublishAudit", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				publishErr = args.Get(0).(context.Context).Err()
			}).
			Return(nil).Once()

		require.NoError(t, svc.DeleteProduct(ctx, 5))
		f.audit.AssertExpectations(t)
		assert.NoError(t, publishErr)
	})

	t.Run("TimeoutMustBePositive", func(t *testing.T) {
		_, err := service.New(new(MockBackend), &fakeSession{}, service.AuditTimeoutOpt(0))
		assert.Error(t, err)
	})
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Nil", nil, ""},
		{"Validation", fmt.Errorf("op: %w", domain.ErrDescriptionRequired), domain.ErrDescriptionRequired.Error()},
		{"Backend", fmt.Errorf("op: %w", apiError{400, "name taken"}), "name taken"},
		{"BackendNoMessage", apiError{500, ""}, "fallback"},
		{"Expired", errors.Join(service.ErrSessionExpired, apiError{401, "jwt expired"}), service.ErrSessionExpired.Error()},
		{"Unknown", errors.New("dial tcp: refused"), "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Message(tt.err, "fallback"))
		})
	}
}

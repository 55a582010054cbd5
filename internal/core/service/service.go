package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

var (
	ErrUnauthenticated       = errors.New("sign in first")
	ErrSessionExpired        = errors.New("session expired, sign in again")
	ErrTransitionNotAllowed  = errors.New("order status change is not allowed")
	ErrInvalidLoginResponse  = errors.New("login response carries no access token")
	ErrUnknownOrderStatus    = errors.New("unknown order status")
	ErrInvalidIdentifier     = errors.New("identifier must be a positive number")
	errNoAuditPublisherGiven = errors.New("audit publisher is nil")
)

var _ port.AuthService = (*Service)(nil)
var _ port.OrdersService = (*Service)(nil)
var _ port.ProductsService = (*Service)(nil)
var _ port.CategoriesService = (*Service)(nil)

const (
	// randomProductsCount is how many products the catalog listing asks for.
	randomProductsCount = 50

	defaultAuditTimeout = 5 * time.Second
)

type Service struct {
	backend port.Backend
	session port.Session
	audit   port.AuditPublisher
	now     func() time.Time

	auditTimeout time.Duration
}

type Opt func(*Service) error

func AuditOpt(p port.AuditPublisher) Opt {
	return func(s *Service) error {
		if p == nil {
			return errNoAuditPublisherGiven
		}
		s.audit = p
		return nil
	}
}

// AuditTimeoutOpt bounds a single audit publish.
func AuditTimeoutOpt(d time.Duration) Opt {
	return func(s *Service) error {
		if d <= 0 {
			return errors.New("audit timeout must be positive")
		}
		s.auditTimeout = d
		return nil
	}
}

func ClockOpt(now func() time.Time) Opt {
	return func(s *Service) error {
		s.now = now
		return nil
	}
}

func New(backend port.Backend, session port.Session, opts ...Opt) (Service, error) {
	const op = "service.New"

	s := Service{
		backend:      backend,
		session:      session,
		now:          time.Now,
		auditTimeout: defaultAuditTimeout,
	}
	for _, o := range opts {
		if err := o(&s); err != nil {
			return Service{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return s, nil
}

func (s Service) token() (string, error) {
	t := s.session.AccessToken()
	if t == "" {
		return "", ErrUnauthenticated
	}
	return t, nil
}

// publish records an accepted mutation. It outlives the request context
// and is bounded by the audit timeout; failures are only logged.
func (s Service) publish(
	ctx context.Context, kind domain.AuditKind, subject string, attrs map[string]string,
) {
	if s.audit == nil {
		return
	}
	const op = "Service.publish"
	log := slog.With("op", op)

	e := domain.AuditEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		Subject:    subject,
		Attributes: attrs,
		OccurredAt: s.now(),
	}
	if e.Attributes == nil {
		e.Attributes = map[string]string{}
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.auditTimeout)
	defer cancel()
	if err := s.audit.PublishAudit(ctx, e); err != nil {
		log.Warn("failed to publish audit event", "kind", kind, "err", err)
	}
}

func validID(ids ...int64) error {
	for _, id := range ids {
		if id <= 0 {
			return ErrInvalidIdentifier
		}
	}
	return nil
}

type userMessager interface {
	UserMessage() string
}

var userErrors = []error{
	ErrUnauthenticated,
	ErrSessionExpired,
	ErrTransitionNotAllowed,
	ErrInvalidLoginResponse,
	ErrUnknownOrderStatus,
	ErrInvalidIdentifier,
	domain.ErrInvalidJSON,
	domain.ErrNotAList,
	domain.ErrEmptyBatch,
	domain.ErrNameRequired,
	domain.ErrPriceRequired,
	domain.ErrDescriptionRequired,
	domain.ErrImageRequired,
	domain.ErrImageType,
	domain.ErrImageTooLarge,
	domain.ErrEmptyPatch,
	domain.ErrCategoryNameRequired,
	domain.ErrCredentialsRequired,
}

// Message returns the text to show the operator for err: a backend
// supplied message, a known validation or session error, or fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	var um userMessager
	if errors.As(err, &um) {
		if m := um.UserMessage(); m != "" {
			return m
		}
	}
	return fallback
}

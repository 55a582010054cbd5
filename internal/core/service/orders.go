package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

func isUnauthorized(err error) bool {
	return errors.Is(err, port.ErrUnauthorized)
}

// Stats loads the order statistics. A non-empty status narrows the
// recent orders. A rejected token ends the session.
func (s Service) Stats(
	ctx context.Context, status domain.OrderStatus,
) (domain.OrderStats, error) {
	const op = "Service.Stats"

	token, err := s.token()
	if err != nil {
		return domain.OrderStats{}, fmt.Errorf("%s: %w", op, err)
	}

	st, err := s.backend.OrderStats(ctx, token)
	if err != nil {
		return domain.OrderStats{}, fmt.Errorf("%s: %w", op, s.expire(ctx, err))
	}
	return st.FilterRecent(status), nil
}

// UpdateOrderStatus moves the order from current to next. Selecting the
// current status again changes nothing and makes no backend call.
func (s Service) UpdateOrderStatus(
	ctx context.Context, orderID int64, current, next domain.OrderStatus,
) (bool, error) {
	const op = "Service.UpdateOrderStatus"
	log := slog.With("op", op)

	if err := validID(orderID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if next == current && current.CanTransition(next) {
		return false, nil
	}
	if !next.Known() {
		return false, fmt.Errorf("%s: %w: %q", op, ErrUnknownOrderStatus, next)
	}
	if !current.CanTransition(next) {
		return false, fmt.Errorf(
			"%s: %w: %s to %s", op, ErrTransitionNotAllowed, current, next,
		)
	}

	token, err := s.token()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.backend.UpdateOrderStatus(ctx, token, orderID, next); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("order status updated", "orderID", orderID, "from", current, "to", next)
	s.publish(ctx, domain.AuditOrderStatusUpdated, strconv.FormatInt(orderID, 10),
		map[string]string{"from": string(current), "to": string(next)})
	return true, nil
}

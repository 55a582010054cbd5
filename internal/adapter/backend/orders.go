package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (c *Client) OrderStats(ctx context.Context, token string) (domain.OrderStats, error) {
	const op = "Client.OrderStats"

	var st domain.OrderStats
	_, err := c.call(ctx, request{
		method: http.MethodGet,
		path:   "/orders/statistics",
		token:  token,
	}, &st)
	if err != nil {
		return domain.OrderStats{}, fmt.Errorf("%s: %w", op, err)
	}
	return st, nil
}

type statusUpdate struct {
	Status domain.OrderStatus `json:"status"`
}

func (c *Client) UpdateOrderStatus(
	ctx context.Context, token string, orderID int64, status domain.OrderStatus,
) error {
	const op = "Client.UpdateOrderStatus"

	_, err := c.call(ctx, request{
		method: http.MethodPatch,
		path:   idPath("/orders/%s/status", orderID),
		token:  token,
		body:   statusUpdate{status},
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

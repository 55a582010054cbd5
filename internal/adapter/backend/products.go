package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

// CreateProducts returns the length of the response array, or -1 when
// the response is not an array.
func (c *Client) CreateProducts(
	ctx context.Context, token string, ps []domain.NormalizedBatchProduct,
) (int, error) {
	const op = "Client.CreateProducts"

	data, err := c.call(ctx, request{
		method: http.MethodPost,
		path:   "/products/batch",
		token:  token,
		body:   ps,
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var created []json.RawMessage
	if err := json.Unmarshal(data, &created); err != nil || created == nil {
		return -1, nil
	}
	return len(created), nil
}

func (c *Client) CreateProduct(
	ctx context.Context, token string, d domain.ProductDraft,
) error {
	const op = "Client.CreateProduct"

	_, err := c.call(ctx, request{
		method: http.MethodPost,
		path:   "/products",
		token:  token,
		body:   d,
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) UpdateProduct(
	ctx context.Context, token string, id int64, p domain.ProductPatch,
) error {
	const op = "Client.UpdateProduct"

	_, err := c.call(ctx, request{
		method: http.MethodPatch,
		path:   idPath("/products/%s", id),
		token:  token,
		body:   p,
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	const op = "Client.DeleteProduct"

	_, err := c.call(ctx, request{
		method: http.MethodDelete,
		path:   idPath("/products/%s", id),
		token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) RandomProducts(
	ctx context.Context, token string, count int,
) ([]domain.Product, error) {
	const op = "Client.RandomProducts"

	var ps []domain.Product
	_, err := c.call(ctx, request{
		method: http.MethodGet,
		path:   "/products/random",
		query:  url.Values{"count": {strconv.Itoa(count)}},
		token:  token,
	}, &ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ps == nil {
		ps = []domain.Product{}
	}
	return ps, nil
}

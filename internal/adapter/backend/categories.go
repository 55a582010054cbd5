package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (c *Client) Categories(ctx context.Context, token string) ([]domain.Category, error) {
	const op = "Client.Categories"

	var cats []domain.Category
	_, err := c.call(ctx, request{
		method: http.MethodGet,
		path:   "/categories",
		token:  token,
	}, &cats)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cats, nil
}

func (c *Client) CreateCategory(
	ctx context.Context, token string, nc domain.NewCategory,
) (domain.Category, error) {
	const op = "Client.CreateCategory"

	var created domain.Category
	_, err := c.call(ctx, request{
		method: http.MethodPost,
		path:   "/categories",
		token:  token,
		body:   nc,
	}, &created)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token string, id int64) error {
	const op = "Client.DeleteCategory"

	_, err := c.call(ctx, request{
		method: http.MethodDelete,
		path:   idPath("/categories/%s", id),
		token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) AddProductToCategory(
	ctx context.Context, token string, categoryID, productID int64,
) error {
	const op = "Client.AddProductToCategory"

	_, err := c.call(ctx, request{
		method: http.MethodPost,
		path:   idPath("/categories/%s/products/%s", categoryID, productID),
		token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) RemoveProductFromCategory(
	ctx context.Context, token string, categoryID, productID int64,
) error {
	const op = "Client.RemoveProductFromCategory"

	_, err := c.call(ctx, request{
		method: http.MethodDelete,
		path:   idPath("/categories/%s/products/%s", categoryID, productID),
		token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

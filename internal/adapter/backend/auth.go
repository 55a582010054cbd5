package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login returns empty tokens when the response has no access token.
func (c *Client) Login(ctx context.Context, cr domain.Credentials) (domain.Tokens, error) {
	const op = "Client.Login"

	var resp loginResponse
	_, err := c.call(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   cr,
	}, &resp)
	if err != nil {
		return domain.Tokens{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.Tokens{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (c *Client) Register(ctx context.Context, r domain.Registration) error {
	const op = "Client.Register"

	_, err := c.call(ctx, request{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   r,
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

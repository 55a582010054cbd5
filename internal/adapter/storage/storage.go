// Package storage persists the operator session tokens.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

type storedTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func encodeTokens(t domain.Tokens) ([]byte, error) {
	return json.Marshal(storedTokens{t.AccessToken, t.RefreshToken})
}

func decodeTokens(data []byte) (domain.Tokens, error) {
	var v storedTokens
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Tokens{}, fmt.Errorf("%w: %w", domain.ErrMalformedTokens, err)
	}
	return domain.Tokens{
		AccessToken:  v.AccessToken,
		RefreshToken: v.RefreshToken,
	}, nil
}

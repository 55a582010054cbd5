package domain

import (
	"errors"
	"strings"
)

var ErrCredentialsRequired = errors.New("email and password are required")

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Empty means logged out.
func (t Tokens) Empty() bool {
	return t.AccessToken == ""
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return ErrCredentialsRequired
	}
	return nil
}

type Registration struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FullName        string `json:"fullName,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
}

func (r Registration) Validate() error {
	return Credentials{r.Email, r.Password}.Validate()
}

// ErrMalformedTokens is returned by token stores for an unreadable entry.
var ErrMalformedTokens = errors.New("malformed stored tokens")

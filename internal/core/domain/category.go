package domain

import (
	"errors"
	"strings"
)

var ErrCategoryNameRequired = errors.New("category name is required")

type Category struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    string    `json:"createdAt,omitempty"`
	UpdatedAt    string    `json:"updatedAt,omitempty"`
	ProductCount *int      `json:"productCount,omitempty"`
	Products     []Product `json:"products,omitempty"`
}

type NewCategory struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Normalize trims both fields; a blank description is dropped.
func (c NewCategory) Normalize() (NewCategory, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	if c.Name == "" {
		return c, ErrCategoryNameRequired
	}
	return c, nil
}

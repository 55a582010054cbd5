package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (s Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Service.ListCategories"

	token, err := s.token()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cats, err := s.backend.Categories(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	return cats, nil
}

// CategoryOptions is the secondary category load for selects and
// filters. Errors are logged and give an empty list.
func (s Service) CategoryOptions(ctx context.Context) []domain.Category {
	const op = "Service.CategoryOptions"

	cats, err := s.ListCategories(ctx)
	if err != nil {
		slog.With("op", op).Warn("failed to load categories", "err", err)
		return []domain.Category{}
	}
	return cats
}

func (s Service) CreateCategory(
	ctx context.Context, c domain.NewCategory,
) (domain.Category, error) {
	const op = "Service.CreateCategory"

	c, err := c.Normalize()
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.token()
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.backend.CreateCategory(ctx, token, c)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	if created.Name == "" {
		created.Name = c.Name
	}

	s.publish(ctx, domain.AuditCategoryCreated, c.Name,
		map[string]string{"description": c.Description})
	return created, nil
}

func (s Service) DeleteCategory(ctx context.Context, id int64) error {
	const op = "Service.DeleteCategory"

	if err := validID(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.token()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.backend.DeleteCategory(ctx, token, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.AuditCategoryDeleted, strconv.FormatInt(id, 10), nil)
	return nil
}

func (s Service) AddProductToCategory(
	ctx context.Context, categoryID, productID int64,
) error {
	const op = "Service.AddProductToCategory"

	if err := validID(categoryID, productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.token()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	err = s.backend.AddProductToCategory(ctx, token, categoryID, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.AuditCategoryLinked,
		strconv.FormatInt(categoryID, 10),
		map[string]string{"productId": strconv.FormatInt(productID, 10)})
	return nil
}

func (s Service) RemoveProductFromCategory(
	ctx context.Context, categoryID, productID int64,
) error {
	const op = "Service.RemoveProductFromCategory"

	if err := validID(categoryID, productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.token()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	err = s.backend.RemoveProductFromCategory(ctx, token, categoryID, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.AuditCategoryUnlinked,
		strconv.FormatInt(categoryID, 10),
		map[string]string{"productId": strconv.FormatInt(productID, 10)})
	return nil
}

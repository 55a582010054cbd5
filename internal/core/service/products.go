package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/pkg/currency"
)

// SubmitBatch parses, normalizes and creates the products in payload.
// Validation errors are returned before any backend call.
func (s Service) SubmitBatch(ctx context.Context, payload string) (port.BatchResult, error) {
	const op = "Service.SubmitBatch"
	log := slog.With("op", op)

	in, err := domain.ParseBatchPayload(payload)
	if err != nil {
		return port.BatchResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(in) == 0 {
		return port.BatchResult{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyBatch)
	}
	normalized := domain.NormalizeBatchProducts(in)

	token, err := s.token()
	if err != nil {
		return port.BatchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.backend.CreateProducts(ctx, token, normalized)
	if err != nil {
		return port.BatchResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if created < 0 {
		created = len(normalized)
	}

	res := port.BatchResult{
		Created:    created,
		TotalPrice: domain.TotalPrice(normalized),
	}
	log.Info("batch submitted", "submitted", len(normalized), "created", created)
	s.publish(ctx, domain.AuditBatchSubmitted, strconv.Itoa(created), map[string]string{
		"submitted":  strconv.Itoa(len(normalized)),
		"totalPrice": currency.FormatVND(res.TotalPrice),
	})
	return res, nil
}

// AddManualProduct appends the form to the payload text. On error the
// payload comes back unchanged.
func (s Service) AddManualProduct(
	payload string, f domain.ManualProductForm,
) (string, error) {
	const op = "Service.AddManualProduct"

	out, err := domain.AppendManualProduct(payload, f)
	if err != nil {
		return payload, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s Service) CreateProduct(
	ctx context.Context, f domain.ManualProductForm, img domain.Image, categoryID *int64,
) error {
	const op = "Service.CreateProduct"
	log := slog.With("op", op)

	if err := f.Validate(false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := img.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if categoryID != nil {
		if err := validID(*categoryID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	f.ImageBase64 = img.DataURI()
	draft, err := domain.NewProductDraft(f, categoryID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.token()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.backend.CreateProduct(ctx, token, draft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("product created", "name", draft.Name)
	attrs := map[string]string{"price": draft.Price}
	if categoryID != nil {
		attrs["categoryId"] = strconv.FormatInt(*categoryID, 10)
	}
	s.publish(ctx, domain.AuditProductCreated, draft.Name, attrs)
	return nil
}

func (s Service) UpdateProduct(
	ctx context.Context, id int64, p domain.ProductPatch,
) error {
	const op = "Service.UpdateProduct"

	if err := validID(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	p, err := p.Normalize()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.token()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.backend.UpdateProduct(ctx, token, id, p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.AuditProductUpdated, strconv.FormatInt(id, 10), nil)
	return nil
}

func (s Service) DeleteProduct(ctx context.Context, id int64) error {
	const op = "Service.DeleteProduct"

	if err := validID(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.token()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.backend.DeleteProduct(ctx, token, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.AuditProductDeleted, strconv.FormatInt(id, 10), nil)
	return nil
}

// ListProducts loads a sample of the catalog with per-category counts.
// Categories are best effort; a failure only drops the counts.
func (s Service) ListProducts(
	ctx context.Context, categoryID *int64,
) (domain.ProductListing, error) {
	const op = "Service.ListProducts"

	token, err := s.token()
	if err != nil {
		return domain.ProductListing{}, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.backend.RandomProducts(ctx, token, randomProductsCount)
	if err != nil {
		return domain.ProductListing{}, fmt.Errorf("%s: %w", op, err)
	}

	cats := s.CategoryOptions(ctx)
	return domain.NewProductListing(ps, cats, categoryID), nil
}

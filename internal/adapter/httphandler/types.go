package httphandler

import "github.com/niksmo/ecom-admin/internal/core/domain"

type (
	sessionResponse struct {
		Authenticated bool `json:"authenticated"`
	}

	statusUpdateRequest struct {
		Current string `json:"current"`
		Next    string `json:"next"`
	}

	statusOptionsResponse struct {
		Current  domain.OrderStatus    `json:"current"`
		Label    string                `json:"label"`
		Terminal bool                  `json:"terminal"`
		Options  []domain.StatusOption `json:"options"`
	}

	statusSummary struct {
		Status domain.OrderStatus `json:"status"`
		Label  string             `json:"label"`
		Style  domain.StatusStyle `json:"style"`
		Count  int                `json:"count"`
	}

	statsResponse struct {
		domain.OrderStats
		TotalRevenueText string          `json:"totalRevenueText"`
		Statuses         []statusSummary `json:"statuses"`
	}
)

type (
	batchRequest struct {
		Payload string `json:"payload"`
	}

	batchResponse struct {
		feedback
		Created        int     `json:"created"`
		TotalPrice     float64 `json:"totalPrice"`
		TotalPriceText string  `json:"totalPriceText"`
	}

	batchItemRequest struct {
		Payload string                   `json:"payload"`
		Item    domain.ManualProductForm `json:"item"`
	}

	// batchItemResponse returns the payload unchanged on error.
	batchItemResponse struct {
		feedback
		Payload string `json:"payload"`
	}
)

type categoryResponse struct {
	feedback
	Category domain.Category `json:"category"`
}

package httphandler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/pkg/currency"
)

type OrdersHandler struct {
	orders port.OrdersService
}

func RegisterOrders(mux *http.ServeMux, g *FormGuard, orders port.OrdersService) {
	h := OrdersHandler{orders}
	mux.HandleFunc("GET /v1/orders/stats", h.Stats)
	mux.HandleFunc("GET /v1/orders/statuses", h.StatusOptions)
	mux.HandleFunc(
		"PATCH /v1/orders/{id}/status",
		g.Single(formOf("order-status", "id"), h.UpdateStatus),
	)
}

func (h OrdersHandler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.Stats"
	log := slog.With("op", op)

	status := domain.ParseOrderStatus(r.URL.Query().Get("status"))
	st, err := h.orders.Stats(r.Context(), status)
	if err != nil {
		writeFailure(w, log, err, "Could not load order statistics")
		return
	}

	resp := statsResponse{
		OrderStats:       st,
		TotalRevenueText: currency.FormatVND(st.TotalRevenue.OrZero()),
		Statuses:         make([]statusSummary, 0, len(domain.OrderStatuses)),
	}
	if resp.RecentOrders == nil {
		resp.RecentOrders = []domain.Order{}
	}
	for _, s := range domain.OrderStatuses {
		resp.Statuses = append(resp.Statuses, statusSummary{
			Status: s,
			Label:  s.Label(),
			Style:  s.Style(),
			Count:  st.CountFor(s),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// StatusOptions lists what the status select offers for an order in the
// current status.
func (h OrdersHandler) StatusOptions(w http.ResponseWriter, r *http.Request) {
	current := domain.ParseOrderStatus(r.URL.Query().Get("current"))
	writeJSON(w, http.StatusOK, statusOptionsResponse{
		Current:  current,
		Label:    current.Label(),
		Terminal: current.IsTerminal(),
		Options:  domain.StatusOptions(current),
	})
}

func (h OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.UpdateStatus"
	log := slog.With("op", op)

	orderID, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, log, err, "Could not update order status")
		return
	}

	var req statusUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	current := domain.ParseOrderStatus(req.Current)
	next := domain.ParseOrderStatus(req.Next)

	changed, err := h.orders.UpdateOrderStatus(r.Context(), orderID, current, next)
	if err != nil {
		writeFailure(w, log, err, "Could not update order status")
		return
	}
	if !changed {
		writeMessage(w, fmt.Sprintf("Order #%d is already %s.", orderID, next.Label()))
		return
	}
	writeMessage(w, fmt.Sprintf("Order #%d moved to %s.", orderID, next.Label()))
}

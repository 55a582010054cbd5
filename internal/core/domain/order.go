package domain

import (
	"slices"
	"strings"

	"github.com/niksmo/ecom-admin/pkg/loose"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderShipping  OrderStatus = "SHIPPING"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses is the canonical display order.
var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderCompleted,
	OrderShipping,
	OrderDelivered,
	OrderCancelled,
}

type StatusStyle string

const (
	StyleAmber   StatusStyle = "amber"
	StyleEmerald StatusStyle = "emerald"
	StyleBlue    StatusStyle = "blue"
	StyleTeal    StatusStyle = "teal"
	StyleRose    StatusStyle = "rose"
	StyleSlate   StatusStyle = "slate"
)

type statusPolicy struct {
	label string
	style StatusStyle
	next  []OrderStatus
}

var statusPolicies = map[OrderStatus]statusPolicy{
	OrderPending: {
		label: "Awaiting payment",
		style: StyleAmber,
		next:  []OrderStatus{OrderPending, OrderCompleted, OrderCancelled},
	},
	OrderCompleted: {
		label: "Paid",
		style: StyleEmerald,
		next:  []OrderStatus{OrderCompleted, OrderShipping, OrderCancelled},
	},
	OrderShipping: {
		label: "Shipping",
		style: StyleBlue,
		next: []OrderStatus{
			OrderCompleted, OrderShipping, OrderDelivered, OrderCancelled,
		},
	},
	OrderDelivered: {
		label: "Delivered",
		style: StyleTeal,
		next:  []OrderStatus{OrderDelivered},
	},
	OrderCancelled: {
		label: "Cancelled",
		style: StyleRose,
		next:  []OrderStatus{OrderCancelled},
	},
}

// ParseOrderStatus trims and upper-cases s. The result may still be
// an unknown status.
func ParseOrderStatus(s string) OrderStatus {
	return OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
}

func (s OrderStatus) Known() bool {
	_, ok := statusPolicies[s]
	return ok
}

// AllowedTransitions returns the statuses s may move to, s itself
// included, in canonical order. An unknown status may move to any known
// status or stay as it is; it comes last.
func (s OrderStatus) AllowedTransitions() []OrderStatus {
	p, ok := statusPolicies[s]
	if !ok {
		out := slices.Clone(OrderStatuses)
		if s != "" {
			out = append(out, s)
		}
		return out
	}
	out := make([]OrderStatus, 0, len(p.next))
	for _, st := range OrderStatuses {
		if slices.Contains(p.next, st) {
			out = append(out, st)
		}
	}
	return out
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return slices.Contains(s.AllowedTransitions(), to)
}

// IsTerminal reports whether s allows no status but itself.
func (s OrderStatus) IsTerminal() bool {
	p, ok := statusPolicies[s]
	return ok && len(p.next) == 1 && p.next[0] == s
}

// Label falls back to the raw value for unknown statuses.
func (s OrderStatus) Label() string {
	if p, ok := statusPolicies[s]; ok {
		return p.label
	}
	return string(s)
}

func (s OrderStatus) Style() StatusStyle {
	if p, ok := statusPolicies[s]; ok {
		return p.style
	}
	return StyleSlate
}

type StatusOption struct {
	Value    OrderStatus `json:"value"`
	Label    string      `json:"label"`
	Style    StatusStyle `json:"style"`
	Selected bool        `json:"selected"`
}

// StatusOptions lists the choices for a status select opened on an
// order currently in s.
func StatusOptions(s OrderStatus) []StatusOption {
	allowed := s.AllowedTransitions()
	opts := make([]StatusOption, 0, len(allowed))
	for _, st := range allowed {
		opts = append(opts, StatusOption{
			Value:    st,
			Label:    st.Label(),
			Style:    st.Style(),
			Selected: st == s,
		})
	}
	return opts
}

type (
	Order struct {
		ID              int64          `json:"id"`
		CreatedAt       string         `json:"createdAt"`
		TotalPrice      loose.Number   `json:"totalPrice"`
		Status          OrderStatus    `json:"status"`
		ShippingAddress string         `json:"shippingAddress,omitempty"`
		User            *OrderCustomer `json:"user,omitempty"`
		Items           []OrderItem    `json:"items"`
	}

	OrderCustomer struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	OrderItem struct {
		ID       int64         `json:"id"`
		Quantity int           `json:"quantity"`
		Price    loose.Number  `json:"price"`
		Size     string        `json:"size,omitempty"`
		Color    string        `json:"color,omitempty"`
		Product  *OrderProduct `json:"product,omitempty"`
	}

	OrderProduct struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	}
)

type (
	OrderStats struct {
		TotalOrders    *int          `json:"totalOrders,omitempty"`
		TotalCustomers *int          `json:"totalCustomers,omitempty"`
		TotalRevenue   loose.Number  `json:"totalRevenue,omitzero"`
		OrdersByStatus []StatusCount `json:"ordersByStatus"`
		RecentOrders   []Order       `json:"recentOrders"`
	}

	StatusCount struct {
		Status OrderStatus `json:"status"`
		Count  int         `json:"count"`
	}
)

// FilterRecent keeps the recent orders in status; an empty status keeps all.
func (st OrderStats) FilterRecent(status OrderStatus) OrderStats {
	if status == "" {
		return st
	}
	recent := make([]Order, 0, len(st.RecentOrders))
	for _, o := range st.RecentOrders {
		if o.Status == status {
			recent = append(recent, o)
		}
	}
	st.RecentOrders = recent
	return st
}

// CountFor returns the count reported for status, 0 when missing.
func (st OrderStats) CountFor(status OrderStatus) int {
	for _, c := range st.OrdersByStatus {
		if c.Status == status {
			return c.Count
		}
	}
	return 0
}

package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/niksmo/ecom-admin/pkg/loose"
)

var (
	ErrInvalidJSON = errors.New("invalid JSON, check the payload")
	ErrNotAList    = errors.New("payload must be a list of products")
	ErrEmptyBatch  = errors.New("product list must not be empty")
)

// BatchProductInput is an untrusted product record. Any JSON value is
// accepted for every field and for the record itself.
type BatchProductInput struct {
	Name        loose.String    `json:"name,omitzero"`
	Price       loose.Number    `json:"price,omitzero"`
	ImageBase64 loose.String    `json:"imageBase64,omitzero"`
	Description loose.String    `json:"description,omitzero"`
	Rating      loose.Number    `json:"rating,omitzero"`
	ReviewCount loose.Number    `json:"reviewCount,omitzero"`
	Sizes       loose.Strings   `json:"sizes,omitzero"`
	Colors      loose.Strings   `json:"colors,omitzero"`
	CategoryID  json.RawMessage `json:"categoryId,omitempty"`
	Quantity    json.RawMessage `json:"quantity,omitempty"`
	IsSoldOut   json.RawMessage `json:"isSoldOut,omitempty"`
}

// UnmarshalJSON reads a non-object element as an empty record.
func (in *BatchProductInput) UnmarshalJSON(b []byte) error {
	type record BatchProductInput
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		*in = BatchProductInput{}
		return nil
	}
	*in = BatchProductInput(r)
	return nil
}

type NormalizedBatchProduct struct {
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	ImageBase64 string          `json:"imageBase64"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
	ReviewCount float64         `json:"reviewCount"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	CategoryID  json.RawMessage `json:"categoryId,omitempty"`
	Quantity    json.RawMessage `json:"quantity,omitempty"`
	IsSoldOut   json.RawMessage `json:"isSoldOut,omitempty"`
}

// NormalizeBatchProducts coerces every record field by field. It keeps
// order and length and never fails.
func NormalizeBatchProducts(in []BatchProductInput) []NormalizedBatchProduct {
	out := make([]NormalizedBatchProduct, len(in))
	for i, p := range in {
		out[i] = normalizeBatchProduct(p)
	}
	return out
}

func normalizeBatchProduct(p BatchProductInput) NormalizedBatchProduct {
	return NormalizedBatchProduct{
		Name:        strings.TrimSpace(p.Name.String()),
		Price:       p.Price.OrZero(),
		ImageBase64: p.ImageBase64.String(),
		Description: p.Description.String(),
		Rating:      p.Rating.OrZero(),
		ReviewCount: p.ReviewCount.OrZero(),
		Sizes:       listOrEmpty(p.Sizes),
		Colors:      listOrEmpty(p.Colors),
		CategoryID:  cloneRaw(p.CategoryID),
		Quantity:    cloneRaw(p.Quantity),
		IsSoldOut:   cloneRaw(p.IsSoldOut),
	}
}

func listOrEmpty(s loose.Strings) []string {
	if vs, ok := s.Slice(); ok {
		return vs
	}
	return []string{}
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	return bytes.Clone(raw)
}

// TotalPrice sums the normalized prices.
func TotalPrice(ps []NormalizedBatchProduct) float64 {
	var total float64
	for _, p := range ps {
		total += p.Price
	}
	return total
}

// ParseBatchPayload decodes free-form payload text. Blank text is an
// empty list.
func ParseBatchPayload(text string) ([]BatchProductInput, error) {
	raw, err := parseBatchElements(text)
	if err != nil {
		return nil, err
	}
	out := make([]BatchProductInput, len(raw))
	for i, elem := range raw {
		_ = out[i].UnmarshalJSON(elem)
	}
	return out, nil
}

func parseBatchElements(text string) ([]json.RawMessage, error) {
	b := bytes.TrimSpace([]byte(text))
	if len(b) == 0 {
		return []json.RawMessage{}, nil
	}
	if !json.Valid(b) {
		return nil, ErrInvalidJSON
	}
	if b[0] != '[' {
		return nil, ErrNotAList
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(b, &elems); err != nil {
		return nil, ErrInvalidJSON
	}
	if elems == nil {
		elems = []json.RawMessage{}
	}
	return elems, nil
}

// SplitToList splits s on commas and drops blank entries.
func SplitToList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/niksmo/ecom-admin/pkg/loose"
)

var (
	ErrNameRequired        = errors.New("product name is required")
	ErrPriceRequired       = errors.New("product price is required")
	ErrDescriptionRequired = errors.New("product description is required")
	ErrImageRequired       = errors.New("product image is required")
)

const payloadIndent = "  "

// ManualProductForm holds the single product entry fields as typed.
type ManualProductForm struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	ImageBase64 string `json:"imageBase64"`
	Description string `json:"description"`
	Rating      string `json:"rating"`
	ReviewCount string `json:"reviewCount"`
	Sizes       string `json:"sizes"`
	Colors      string `json:"colors"`
	Quantity    string `json:"quantity"`
}

// Validate checks the required fields after trimming. With requireImage
// the image value is required as well.
func (f ManualProductForm) Validate(requireImage bool) error {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return ErrNameRequired
	case strings.TrimSpace(f.Price) == "":
		return ErrPriceRequired
	case strings.TrimSpace(f.Description) == "":
		return ErrDescriptionRequired
	case requireImage && strings.TrimSpace(f.ImageBase64) == "":
		return ErrImageRequired
	}
	return nil
}

// BatchItem converts the form into a batch record. Price stays the
// typed text; blank optional numbers are left out.
func (f ManualProductForm) BatchItem() BatchProductInput {
	item := BatchProductInput{
		Name:        loose.StringOf(strings.TrimSpace(f.Name)),
		Price:       loose.NumericString(strings.TrimSpace(f.Price)),
		ImageBase64: loose.StringOf(strings.TrimSpace(f.ImageBase64)),
		Description: loose.StringOf(strings.TrimSpace(f.Description)),
		Sizes:       loose.StringsOf(SplitToList(f.Sizes)),
		Colors:      loose.StringsOf(SplitToList(f.Colors)),
	}
	if v, ok := optionalNumber(f.Rating); ok {
		item.Rating = loose.NumberOf(v)
	}
	if v, ok := optionalNumber(f.ReviewCount); ok {
		item.ReviewCount = loose.NumberOf(v)
	}
	if v, ok := optionalNumber(f.Quantity); ok {
		item.Quantity = json.RawMessage(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return item
}

func optionalNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	return loose.NumericString(s).Float64()
}

// AppendManualProduct appends the form as a new record to the payload
// text and returns the payload re-rendered with two-space indentation.
// Existing records are kept as written. On error the payload is
// returned unchanged.
func AppendManualProduct(payload string, f ManualProductForm) (string, error) {
	elems, err := parseBatchElements(payload)
	if err != nil {
		return payload, err
	}
	if err := f.Validate(false); err != nil {
		return payload, err
	}

	item, err := json.Marshal(f.BatchItem())
	if err != nil {
		return payload, err
	}
	elems = append(elems, item)

	out, err := json.MarshalIndent(elems, "", payloadIndent)
	if err != nil {
		return payload, err
	}
	return string(out), nil
}

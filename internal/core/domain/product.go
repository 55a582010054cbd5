package domain

import (
	"errors"
	"strings"

	"github.com/niksmo/ecom-admin/pkg/loose"
)

// AdminUserID is the owner recorded on products created here.
const AdminUserID = "admin"

var ErrEmptyPatch = errors.New("nothing to update")

type Product struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Price       loose.Number `json:"price"`
	Description string       `json:"description"`
	ImageBase64 string       `json:"imageBase64,omitempty"`
	Category    *Category    `json:"category,omitempty"`
	CreatedAt   string       `json:"createdAt,omitempty"`
}

func (p Product) InCategory(categoryID int64) bool {
	return p.Category != nil && p.Category.ID == categoryID
}

// ProductDraft is the create request for a single product.
type ProductDraft struct {
	UserID      string   `json:"userId"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	ImageBase64 string   `json:"imageBase64"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *float64 `json:"reviewCount,omitempty"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Quantity    *float64 `json:"quantity,omitempty"`
	CategoryID  *int64   `json:"categoryId,omitempty"`
}

// NewProductDraft validates the form with the image required and
// builds the create request.
func NewProductDraft(f ManualProductForm, categoryID *int64) (ProductDraft, error) {
	if err := f.Validate(true); err != nil {
		return ProductDraft{}, err
	}

	d := ProductDraft{
		UserID:      AdminUserID,
		Name:        strings.TrimSpace(f.Name),
		Price:       strings.TrimSpace(f.Price),
		Description: strings.TrimSpace(f.Description),
		ImageBase64: strings.TrimSpace(f.ImageBase64),
		Sizes:       SplitToList(f.Sizes),
		Colors:      SplitToList(f.Colors),
		CategoryID:  categoryID,
	}
	if v, ok := optionalNumber(f.Rating); ok {
		d.Rating = &v
	}
	if v, ok := optionalNumber(f.ReviewCount); ok {
		d.ReviewCount = &v
	}
	if v, ok := optionalNumber(f.Quantity); ok {
		d.Quantity = &v
	}
	return d, nil
}

// ProductPatch carries only the fields being changed.
type ProductPatch struct {
	Name        *string `json:"name,omitempty"`
	Price       *string `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
	IsSoldOut   *bool   `json:"isSoldOut,omitempty"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
}

func (p ProductPatch) Empty() bool {
	return p == ProductPatch{}
}

// Normalize trims the text fields and rejects blanks for the fields a
// product cannot lose.
func (p ProductPatch) Normalize() (ProductPatch, error) {
	if p.Empty() {
		return p, ErrEmptyPatch
	}
	checks := []struct {
		v   **string
		err error
	}{
		{&p.Name, ErrNameRequired},
		{&p.Price, ErrPriceRequired},
		{&p.Description, ErrDescriptionRequired},
	}
	for _, c := range checks {
		if *c.v == nil {
			continue
		}
		s := strings.TrimSpace(**c.v)
		if s == "" {
			return p, c.err
		}
		*c.v = &s
	}
	return p, nil
}

type CategoryCount struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

type ProductListing struct {
	Products   []Product       `json:"products"`
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
}

// NewProductListing filters ps by category when categoryID is set and
// counts all ps per category in cats order.
func NewProductListing(ps []Product, cats []Category, categoryID *int64) ProductListing {
	l := ProductListing{
		Products:   ps,
		Total:      len(ps),
		Categories: make([]CategoryCount, 0, len(cats)),
	}
	if l.Products == nil {
		l.Products = []Product{}
	}

	for _, c := range cats {
		cc := CategoryCount{CategoryID: c.ID, Name: c.Name}
		for _, p := range ps {
			if p.InCategory(c.ID) {
				cc.Count++
			}
		}
		l.Categories = append(l.Categories, cc)
	}

	if categoryID != nil {
		filtered := make([]Product, 0, len(ps))
		for _, p := range ps {
			if p.InCategory(*categoryID) {
				filtered = append(filtered, p)
			}
		}
		l.Products = filtered
	}
	return l
}

package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() domain.ManualProductForm {
	return domain.ManualProductForm{
		Name:        " Hoodie ",
		Price:       " 350000 ",
		Description: "Warm",
		Rating:      "4.5",
		Sizes:       "M, L",
		Colors:      "black",
	}
}

func TestManualProductFormValidate(t *testing.T) {
	tests := []struct {
		name         string
		edit         func(*domain.ManualProductForm)
		requireImage bool
		want         error
	}{
		{"Valid", func(*domain.ManualProductForm) {}, false, nil},
		{"BlankName", func(f *domain.ManualProductForm) { f.Name = "  " }, false, domain.ErrNameRequired},
		{"BlankPrice", func(f *domain.ManualProductForm) { f.Price = "" }, false, domain.ErrPriceRequired},
		{"BlankDescription", func(f *domain.ManualProductForm) { f.Description = " " }, false, domain.ErrDescriptionRequired},
		{"ImageRequired", func(*domain.ManualProductForm) {}, true, domain.ErrImageRequired},
		{"ImageGiven", func(f *domain.ManualProductForm) { f.ImageBase64 = "https://cdn/x.png" }, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.edit(&f)
			err := f.Validate(tt.requireImage)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAppendManualProduct(t *testing.T) {
	t.Run("AppendsToBlankPayload", func(t *testing.T) {
		out, err := domain.AppendManualProduct("", validForm())
		require.NoError(t, err)

		var items []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Hoodie", items[0]["name"])
		assert.Equal(t, "350000", items[0]["price"])
		assert.Equal(t, 4.5, items[0]["rating"])
		assert.NotContains(t, items[0], "reviewCount")
		assert.Equal(t, []any{"M", "L"}, items[0]["sizes"])
		assert.Contains(t, out, "\n  {")
	})

	t.Run("KeepsExistingRecords", func(t *testing.T) {
		payload := `[{"name":"Old","extra":{"k":1}}]`
		out, err := domain.AppendManualProduct(payload, validForm())
		require.NoError(t, err)

		var items []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "Old", items[0]["name"])
		assert.Equal(t, map[string]any{"k": 1.0}, items[0]["extra"])
		assert.Equal(t, "Hoodie", items[1]["name"])
	})

	t.Run("MissingDescriptionLeavesPayload", func(t *testing.T) {
		payload := `[ {"name": "Old"} ]`
		f := validForm()
		f.Description = ""

		out, err := domain.AppendManualProduct(payload, f)
		assert.ErrorIs(t, err, domain.ErrDescriptionRequired)
		assert.Equal(t, payload, out)
	})

	t.Run("InvalidPayloadLeavesPayload", func(t *testing.T) {
		payload := `{"name": "Old"}`
		out, err := domain.AppendManualProduct(payload, validForm())
		assert.ErrorIs(t, err, domain.ErrNotAList)
		assert.Equal(t, payload, out)
	})
}

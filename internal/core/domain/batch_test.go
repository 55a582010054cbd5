package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) []domain.BatchProductInput {
	t.Helper()
	in, err := domain.ParseBatchPayload(text)
	require.NoError(t, err)
	return in
}

func TestNormalizeBatchProducts(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		out := domain.NormalizeBatchProducts(nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("Coerces", func(t *testing.T) {
		in := parse(t, `[{"name":"  Shirt  ","price":"12000","sizes":["S"," M "]}]`)
		out := domain.NormalizeBatchProducts(in)

		require.Len(t, out, 1)
		p := out[0]
		assert.Equal(t, "Shirt", p.Name)
		assert.Equal(t, 12000.0, p.Price)
		assert.Zero(t, p.Rating)
		assert.Zero(t, p.ReviewCount)
		assert.Equal(t, []string{"S", " M "}, p.Sizes)
		assert.Equal(t, []string{}, p.Colors)
		assert.Equal(t, "", p.ImageBase64)
		assert.Equal(t, "", p.Description)
	})

	t.Run("NonNumericPrice", func(t *testing.T) {
		out := domain.NormalizeBatchProducts(
			parse(t, `[{"name":"X","price":"not-a-number"}]`),
		)
		assert.Zero(t, out[0].Price)
	})

	t.Run("RatingOutOfRangePassesThrough", func(t *testing.T) {
		out := domain.NormalizeBatchProducts(
			parse(t, `[{"rating":7.5,"reviewCount":"12"}]`),
		)
		assert.Equal(t, 7.5, out[0].Rating)
		assert.Equal(t, 12.0, out[0].ReviewCount)
	})

	t.Run("MalformedFieldsDefault", func(t *testing.T) {
		out := domain.NormalizeBatchProducts(parse(t, `[{
			"name": 5,
			"price": true,
			"imageBase64": {"url": "x"},
			"description": null,
			"rating": "abc",
			"reviewCount": [1],
			"sizes": "S,M",
			"colors": {"0": "red"}
		}]`))

		p := out[0]
		assert.Equal(t, "", p.Name)
		assert.Zero(t, p.Price)
		assert.Equal(t, "", p.ImageBase64)
		assert.Equal(t, "", p.Description)
		assert.Zero(t, p.Rating)
		assert.Zero(t, p.ReviewCount)
		assert.Equal(t, []string{}, p.Sizes)
		assert.Equal(t, []string{}, p.Colors)
	})

	t.Run("NumericListElementsKept", func(t *testing.T) {
		out := domain.NormalizeBatchProducts(parse(t, `[{
			"name": "Shoe",
			"price": "1",
			"sizes": [38, 39, "40"],
			"colors": ["red", null]
		}]`))

		require.Len(t, out, 1)
		assert.Equal(t, []string{"38", "39", "40"}, out[0].Sizes)
		assert.Equal(t, []string{"red"}, out[0].Colors)
	})

	t.Run("NonObjectElement", func(t *testing.T) {
		out := domain.NormalizeBatchProducts(parse(t, `[42, "x", null, []]`))
		require.Len(t, out, 4)
		for _, p := range out {
			assert.Equal(t, "", p.Name)
			assert.Equal(t, []string{}, p.Sizes)
		}
	})

	t.Run("PassThroughFields", func(t *testing.T) {
		out := domain.NormalizeBatchProducts(parse(t, `[
			{"name":"A","categoryId":3,"quantity":0,"isSoldOut":false},
			{"name":"B"}
		]`))

		b, err := json.Marshal(out[0])
		require.NoError(t, err)
		assert.Contains(t, string(b), `"categoryId":3`)
		assert.Contains(t, string(b), `"quantity":0`)
		assert.Contains(t, string(b), `"isSoldOut":false`)

		b, err = json.Marshal(out[1])
		require.NoError(t, err)
		assert.NotContains(t, string(b), "categoryId")
		assert.NotContains(t, string(b), "quantity")
		assert.NotContains(t, string(b), "isSoldOut")
	})

	t.Run("PreservesOrderAndLength", func(t *testing.T) {
		out := domain.NormalizeBatchProducts(
			parse(t, `[{"name":"a"},{"name":"b"},{"name":"c"}]`),
		)
		require.Len(t, out, 3)
		assert.Equal(t, "a", out[0].Name)
		assert.Equal(t, "b", out[1].Name)
		assert.Equal(t, "c", out[2].Name)
	})
}

func TestParseBatchPayload(t *testing.T) {
	t.Run("Blank", func(t *testing.T) {
		in, err := domain.ParseBatchPayload(" \n\t")
		require.NoError(t, err)
		assert.Empty(t, in)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := domain.ParseBatchPayload("[")
		assert.ErrorIs(t, err, domain.ErrInvalidJSON)
	})

	t.Run("NotAList", func(t *testing.T) {
		_, err := domain.ParseBatchPayload("{}")
		assert.ErrorIs(t, err, domain.ErrNotAList)

		_, err = domain.ParseBatchPayload(`"text"`)
		assert.ErrorIs(t, err, domain.ErrNotAList)
	})
}

func TestTotalPrice(t *testing.T) {
	out := domain.NormalizeBatchProducts(
		parse(t, `[{"price":"100"},{"price":250.5},{"price":"x"}]`),
	)
	assert.Equal(t, 350.5, domain.TotalPrice(out))
}

func TestSplitToList(t *testing.T) {
	assert.Equal(t, []string{"S", "M", "XL"}, domain.SplitToList(" S, M ,,XL, "))
	assert.Equal(t, []string{}, domain.SplitToList(""))
}

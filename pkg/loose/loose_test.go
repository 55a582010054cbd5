package loose

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		name  string
		json  string
		want  float64
		valid bool
	}{
		{"Integer", `12000`, 12000, true},
		{"Fraction", `4.5`, 4.5, true},
		{"NumericString", `"12000"`, 12000, true},
		{"PaddedString", `"  7.25 "`, 7.25, true},
		{"EmptyString", `""`, 0, false},
		{"Garbage", `"not-a-number"`, 0, false},
		{"InfinityString", `"Infinity"`, 0, false},
		{"Overflow", `1e400`, 0, false},
		{"Null", `null`, 0, false},
		{"Bool", `true`, 0, false},
		{"Object", `{"a":1}`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tc.json), &n))
			v, ok := n.Float64()
			assert.Equal(t, tc.valid, ok)
			assert.Equal(t, tc.want, v)
			assert.Equal(t, tc.want, n.OrZero())
		})
	}

	t.Run("Absent", func(t *testing.T) {
		var n Number
		assert.True(t, n.IsZero())
		assert.Equal(t, 0.0, n.OrZero())
	})
}

func TestNumberKeepsRawValue(t *testing.T) {
	var v struct {
		Price Number `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":"250000"}`), &v))

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"250000"}`, string(b))

	assert.JSONEq(t, `"12"`, mustMarshal(t, NumericString("12")))
	assert.JSONEq(t, `4.5`, mustMarshal(t, NumberOf(4.5)))
}

func TestString(t *testing.T) {
	var s String
	require.NoError(t, json.Unmarshal([]byte(`"  Shirt  "`), &s))
	assert.Equal(t, "  Shirt  ", s.String())

	require.NoError(t, json.Unmarshal([]byte(`42`), &s))
	assert.Equal(t, "", s.String())

	assert.Equal(t, "", String{}.String())
	assert.Equal(t, "x", StringOf("x").String())
}

func TestStrings(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		var s Strings
		require.NoError(t, json.Unmarshal([]byte(`["S", " M ", null]`), &s))
		vs, ok := s.Slice()
		assert.True(t, ok)
		assert.Equal(t, []string{"S", " M "}, vs)
	})

	t.Run("NonStringElements", func(t *testing.T) {
		var s Strings
		require.NoError(t, json.Unmarshal([]byte(`[38, 39.5, "40", true, {"a": 1}]`), &s))
		vs, ok := s.Slice()
		assert.True(t, ok)
		assert.Equal(t, []string{"38", "39.5", "40", "true", `{"a":1}`}, vs)
	})

	t.Run("NotAList", func(t *testing.T) {
		var s Strings
		require.NoError(t, json.Unmarshal([]byte(`"S,M,L"`), &s))
		vs, ok := s.Slice()
		assert.False(t, ok)
		assert.Nil(t, vs)
	})

	t.Run("EmptyList", func(t *testing.T) {
		vs, ok := StringsOf(nil).Slice()
		assert.True(t, ok)
		assert.Empty(t, vs)
		assert.NotNil(t, vs)
	})
}

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

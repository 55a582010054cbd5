package currency_test

import (
	"math"
	"testing"

	"github.com/niksmo/ecom-admin/pkg/currency"
	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	cases := map[string]struct {
		in   float64
		want string
	}{
		"Zero":        {0, "0\u00a0₫"},
		"Hundreds":    {999, "999\u00a0₫"},
		"Thousands":   {250000, "250.000\u00a0₫"},
		"Millions":    {1880000, "1.880.000\u00a0₫"},
		"RoundsHalf":  {1234.5, "1.235\u00a0₫"},
		"Negative":    {-45000, "-45.000\u00a0₫"},
		"NaN":         {math.NaN(), "0\u00a0₫"},
		"PosInfinity": {math.Inf(1), "0\u00a0₫"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, currency.FormatVND(tc.in))
		})
	}
}

// Package currency formats prices for display.
package currency

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	vndSymbol   = "₫"
	vndGroupSep = "."
	nbsp        = "\u00a0"
)

// FormatVND renders v the way the vi-VN locale shows dong amounts:
// no fraction digits, dot-grouped thousands, trailing symbol.
// Non-finite input renders as zero.
func FormatVND(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}

	d := decimal.NewFromFloat(v).Round(0)

	var b strings.Builder
	if d.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(group(d.Abs().String()))
	b.WriteString(nbsp)
	b.WriteString(vndSymbol)
	return b.String()
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	parts := []string{digits[:head]}
	for i := head; i < len(digits); i += 3 {
		parts = append(parts, digits[i:i+3])
	}
	return strings.Join(parts, vndGroupSep)
}

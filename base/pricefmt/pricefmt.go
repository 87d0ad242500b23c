// Package pricefmt renders monetary values for display. Stored values stay
// plain numbers; formatting is presentation only and never feeds back into
// the profit formula.
package pricefmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders a value like -1234567.5 as "-R$ 1.234.567,50",
// matching pt-BR digit grouping with two decimal places.
func FormatBRL(value float64) string {
	d := decimal.NewFromFloat(value).Round(2)

	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := "R$ " + strings.Join(grouped, ".") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

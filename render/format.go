// Package render turns a LeaseResult into something a person can read.
// Formatting here is for display only; the engine never sees rounded values.
package render

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"lease-amortizer/domain"
)

const DefaultCurrency = "R"

// maxGroupable is the largest amount whose whole units fit in an int64.
var maxGroupable = decimal.NewFromInt(math.MaxInt64)

// FormatCurrency formats amount with two decimals and thousands separators,
// e.g. R26,371.15. The printer only groups the whole units; the cents come
// from the decimal itself, never from a float.
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	rounded := amount.Round(2)
	abs := rounded.Abs()
	fixed := abs.StringFixed(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	if abs.GreaterThanOrEqual(maxGroupable) {
		return symbol + sign + fixed
	}

	p := message.NewPrinter(language.English)
	return symbol + sign + p.Sprintf("%d", abs.IntPart()) + fixed[len(fixed)-3:]
}

// ErrorMessage returns the message shown to a user for a failed calculation.
func ErrorMessage(err error) string {
	var calcErr *domain.CalculationError
	if !errors.As(err, &calcErr) {
		return "Calculation failed: " + err.Error()
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTerm):
		return "Lease term is invalid: " + calcErr.Message
	case errors.Is(err, domain.ErrInvalidRate):
		return "Interest rate is invalid: " + calcErr.Message
	default:
		return "Please enter valid numeric values (" + calcErr.Field + " " + calcErr.Message + ")."
	}
}

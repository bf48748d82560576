package utils

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceAmount converts a loosely-typed amount from the external backend
// into a decimal. Missing, null, or non-numeric values coerce to zero so
// aggregate totals stay computable even with partially dirty data; malformed
// input is never propagated as an error.
func CoerceAmount(v any) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return val
	case string:
		return parseAmountString(val)
	case json.Number:
		return parseAmountString(val.String())
	case float64:
		// decimal.NewFromFloat panics on non-finite inputs; NaN and ±Inf
		// are dirty data here, not programming errors.
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(val)
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	default:
		return decimal.Zero
	}
}

func parseAmountString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ClampNonNegative returns the amount, or zero when it is negative.
// Negative debit/credit inputs are clamped, never subtracted.
func ClampNonNegative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// FormatAmount formats an amount with the given display precision.
// Example: amount 12.3456 with precision 2 returns "12.35".
// Formatting happens only at the presentation boundary; arithmetic always
// runs on the unrounded decimals.
func FormatAmount(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

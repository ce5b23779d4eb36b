package Ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round2 rounds a monetary value to 2 decimal places, half away from
// zero. Every amount is passed through here before persistence.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseNumber converts untrusted numeric input to a float64. Missing or
// empty input counts as zero; anything that is not a finite number is a
// validation error. JSON decoding hands us float64 for numbers and
// string for quoted values, so both are accepted.
func ParseNumber(raw interface{}, field string) (float64, error) {
	if raw == nil {
		return 0, nil
	}
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ValidationError(fmt.Sprintf("%s must be a valid number", field))
		}
		return v, nil
	case int:
		return float64(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, ValidationError(fmt.Sprintf("%s must be a valid number", field))
		}
		return n, nil
	default:
		return 0, ValidationError(fmt.Sprintf("%s must be a valid number", field))
	}
}

// ParseNullableNumber is ParseNumber with empty input mapping to nil
// instead of zero.
func ParseNullableNumber(raw interface{}, field string) (*float64, error) {
	if raw == nil {
		return nil, nil
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	n, err := ParseNumber(raw, field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

package canonicaljson

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cross-implementation numeric constants. Every cooperating implementation
// must use these exact boundaries; they are exercised by the shared
// conformance vectors rather than left to per-language float defaults.
const (
	// MaxSafeInteger is the largest integer (2^53 - 1) every implementation
	// can represent exactly. Integer literals beyond it are routed through
	// the IEEE-754 double path.
	MaxSafeInteger = 1<<53 - 1

	// ExpLowerBound and ExpUpperBound delimit plain decimal notation.
	// Magnitudes below the lower bound or at/above the upper bound are
	// rendered in scientific notation.
	ExpLowerBound = 1e-6
	ExpUpperBound = 1e21
)

func formatNumber(v any) (string, error) {
	switch n := v.(type) {
	case json.Number:
		return formatJSONNumber(n)
	case float64:
		return formatFloat(n)
	case float32:
		return formatFloat(float64(n))
	case int:
		return formatInt64(int64(n)), nil
	case int8:
		return formatInt64(int64(n)), nil
	case int16:
		return formatInt64(int64(n)), nil
	case int32:
		return formatInt64(int64(n)), nil
	case int64:
		return formatInt64(n), nil
	case uint:
		return formatUint64(uint64(n)), nil
	case uint8:
		return formatInt64(int64(n)), nil
	case uint16:
		return formatInt64(int64(n)), nil
	case uint32:
		return formatInt64(int64(n)), nil
	case uint64:
		return formatUint64(n), nil
	}
	return "", fmt.Errorf("%w: not a number: %T", ErrInvalidInput, v)
}

// formatJSONNumber canonicalizes from the numeric value of the literal, not
// its spelling: "1.0" and "1" both come out as "1".
func formatJSONNumber(n json.Number) (string, error) {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return formatInt64(i), nil
		}
		// Overflows int64: fall through to the double path.
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", fmt.Errorf("%w: number %q: %v", ErrInvalidInput, s, err)
	}
	return formatFloat(f)
}

func formatInt64(i int64) string {
	if i >= -MaxSafeInteger && i <= MaxSafeInteger {
		return strconv.FormatInt(i, 10)
	}
	s, _ := formatFloat(float64(i))
	return s
}

func formatUint64(u uint64) string {
	if u <= MaxSafeInteger {
		return strconv.FormatUint(u, 10)
	}
	s, _ := formatFloat(float64(u))
	return s
}

func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: non-finite number", ErrInvalidInput)
	}
	if f == 0 {
		// Negative zero collapses here: the value is zero.
		return "0", nil
	}
	abs := math.Abs(f)
	if f == math.Trunc(f) && abs < ExpUpperBound {
		if abs <= MaxSafeInteger {
			return strconv.FormatInt(int64(f), 10), nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	if abs >= ExpUpperBound || abs < ExpLowerBound {
		return normalizeExponent(strconv.FormatFloat(f, 'e', -1, 64)), nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// normalizeExponent rewrites strconv's exponent ("1e-07") into the pinned
// wire form: lowercase e, explicit sign, no leading zeros ("1e-7").
func normalizeExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mant, exp := s[:i], s[i+1:]
	sign := "+"
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		sign = exp[:1]
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}

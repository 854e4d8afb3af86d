package extract

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NormalizeBool coerces a loosely typed JSON value into a bool. Native
// booleans pass through and the strings "true"/"false" match in any case.
// The second result is false when v carries no boolean meaning; callers
// must treat that as "field absent", not as false.
func NormalizeBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// NormalizeNumber coerces a loosely typed JSON value into a float64. Native
// numbers pass through and numeric strings are parsed with
// strconv.ParseFloat. NaN and unparseable input report false.
func NormalizeNumber(v any) (float64, bool) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

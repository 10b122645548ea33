package service

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// coerceNumber converts a decoded JSON value into a float64. Numbers pass
// through, numeric strings ("3", " 19.5 ") coerce; anything else is an error
// so a bad value never reaches the store.
func coerceNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, errors.New("not a number")
	}
}

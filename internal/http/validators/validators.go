package validators

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// FieldErrors accumulates every violation keyed by field so callers can
// render all problems at once instead of only the first.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// coerceDate normalizes an optional date value: nil and "" become null,
// strings are parsed as RFC 3339 or YYYY-MM-DD.
func coerceDate(v any) (*time.Time, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if val == "" {
			return nil, nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return &t, nil
			}
		}
		return nil, fmt.Errorf("invalid date")
	default:
		return nil, fmt.Errorf("invalid date")
	}
}

// coerceID normalizes an optional numeric id: nil and "" become null,
// numbers and numeric strings are coerced to a positive integer.
func coerceID(v any) (*uint, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if val == "" {
			return nil, nil
		}
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("invalid id")
		}
		id := uint(n)
		return &id, nil
	case float64:
		if val <= 0 || val != math.Trunc(val) {
			return nil, fmt.Errorf("invalid id")
		}
		id := uint(val)
		return &id, nil
	case json.Number:
		n, err := val.Int64()
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid id")
		}
		id := uint(n)
		return &id, nil
	default:
		return nil, fmt.Errorf("invalid id")
	}
}

package ledger

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseMoney coerces a loosely typed monetary value into a decimal.
// Managed-store rows and client payloads deliver prices and amounts as
// numbers, numeric strings, or null interchangeably; anything that cannot be
// parsed becomes zero so that a ledger stays renderable with partially
// corrupt source rows. It never panics and never returns an error.
func ParseMoney(v any) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return val
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero
		}
		return *val
	case decimal.NullDecimal:
		if !val.Valid {
			return decimal.Zero
		}
		return val.Decimal
	case string:
		return parseMoneyString(val)
	case *string:
		if val == nil {
			return decimal.Zero
		}
		return parseMoneyString(*val)
	case json.Number:
		return parseMoneyString(val.String())
	case float64:
		return decimal.NewFromFloat(val)
	case float32:
		return decimal.NewFromFloat32(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case int32:
		return decimal.NewFromInt32(val)
	default:
		return decimal.Zero
	}
}

func parseMoneyString(s string) decimal.Decimal {
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

// dateLayouts are tried in order when coercing timestamp strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate coerces a loosely typed timestamp into a time.Time. Invalid or
// missing dates become the zero time, which sorts as the oldest entry and
// keeps ledger computation total.
func ParseDate(v any) time.Time {
	switch val := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return val
	case *time.Time:
		if val == nil {
			return time.Time{}
		}
		return *val
	case string:
		return parseDateString(val)
	case *string:
		if val == nil {
			return time.Time{}
		}
		return parseDateString(*val)
	case int64:
		return time.Unix(val, 0).UTC()
	case float64:
		return time.Unix(int64(val), 0).UTC()
	default:
		return time.Time{}
	}
}

func parseDateString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

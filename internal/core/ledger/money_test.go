package ledger_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vendorkhata/vendor_khata_app/internal/core/ledger"
)

func TestParseMoney(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	decPtr := func(d decimal.Decimal) *decimal.Decimal { return &d }

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "0"},
		{"numeric string", "150.50", "150.5"},
		{"integer string", "100", "100"},
		{"negative string", "-20", "-20"},
		{"string with spaces", "  42.0 ", "42"},
		{"empty string", "", "0"},
		{"garbage string", "abc", "0"},
		{"nil string pointer", (*string)(nil), "0"},
		{"string pointer", strPtr("3.14"), "3.14"},
		{"float64", 12.5, "12.5"},
		{"int", 7, "7"},
		{"int64", int64(-9), "-9"},
		{"json number", json.Number("88.8"), "88.8"},
		{"invalid json number", json.Number("not-a-number"), "0"},
		{"decimal", decimal.RequireFromString("1.23"), "1.23"},
		{"nil decimal pointer", (*decimal.Decimal)(nil), "0"},
		{"decimal pointer", decPtr(decimal.NewFromInt(5)), "5"},
		{"invalid null decimal", decimal.NullDecimal{}, "0"},
		{"valid null decimal", decimal.NullDecimal{Decimal: decimal.NewFromInt(4), Valid: true}, "4"},
		{"unsupported type", struct{}{}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.ParseMoney(tt.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseMoney(%v) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestParseDate(t *testing.T) {
	known := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  time.Time
	}{
		{"nil", nil, time.Time{}},
		{"time value", known, known},
		{"rfc3339", "2024-01-02T15:04:05Z", known},
		{"date only", "2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"space separated", "2024-01-02 15:04:05", known},
		{"garbage", "yesterday-ish", time.Time{}},
		{"empty string", "", time.Time{}},
		{"nil time pointer", (*time.Time)(nil), time.Time{}},
		{"unix seconds", known.Unix(), known},
		{"unsupported type", 3.5 + 0i, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.ParseDate(tt.input)
			assert.True(t, got.Equal(tt.want), "ParseDate(%v) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestParseDate_InvalidSortsOldest(t *testing.T) {
	bad := ledger.ParseDate("not a date")
	good := ledger.ParseDate("1970-01-02")
	assert.True(t, bad.Before(good))
}

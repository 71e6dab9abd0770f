package util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ParseDecimal converts an exchange decimal string ("0.00001234") to float64.
// Malformed input is an error rather than a silent zero.
func ParseDecimal(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	f, _ := d.Float64()
	return f, nil
}

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatOptional renders nil as an empty cell.
func FormatOptional(f *float64) string {
	if f == nil {
		return ""
	}
	return FormatFloat(*f)
}

func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jun878787/northsea-bot/internal/timeutil"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"float64", 12.5, 12.5},
		{"int", 300, 300},
		{"int64", int64(42), 42},
		{"字串", "500", 500},
		{"千分位字串", "1,234.5", 1234.5},
		{"decimal", decimal.NewFromFloat(7.25), 7.25},
		{"nil", nil, 0},
		{"垃圾字串", "abc", 0},
		{"空字串", "", 0},
		{"不支援型別", struct{}{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceAmount(tt.in); got != tt.want {
				t.Errorf("CoerceAmount(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDateToken(t *testing.T) {
	year := timeutil.Now().Year()
	tests := []struct {
		token string
		want  time.Time
	}{
		{"6/1", time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"12/31", time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"2026-06-01", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"6-1", time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"6月1日", time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, ok := ParseDateToken(tt.token)
		if !ok {
			t.Fatalf("ParseDateToken(%q) failed", tt.token)
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDateToken(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestParseDateTokenInvalid(t *testing.T) {
	for _, token := range []string{"", "13/1", "2/30", "6月32日", "abc", "6/"} {
		if _, ok := ParseDateToken(token); ok {
			t.Errorf("ParseDateToken(%q) succeeded, want failure", token)
		}
	}
}

func TestFormatDateToken(t *testing.T) {
	d := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDateToken(d); got != "6/1" {
		t.Errorf("FormatDateToken = %q, want 6/1", got)
	}
	// 來回轉換必須落在同一天
	back, ok := ParseDateToken(FormatDateToken(d))
	if !ok || back.Month() != d.Month() || back.Day() != d.Day() {
		t.Errorf("round trip = %v, %v", back, ok)
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount float64
		ok     bool
	}{
		{500, true},
		{1000000, true},
		{0, false},
		{-1, false},
		{1000001, false},
	}
	for _, tt := range tests {
		if err := ValidateAmount(tt.amount); (err == nil) != tt.ok {
			t.Errorf("ValidateAmount(%v) err = %v, want ok=%v", tt.amount, err, tt.ok)
		}
	}
}

func TestValidateRate(t *testing.T) {
	tests := []struct {
		rate float64
		ok   bool
	}{
		{30, true},
		{0.1, true},
		{100, true},
		{0.05, false},
		{101, false},
		{0, false},
	}
	for _, tt := range tests {
		if err := ValidateRate(tt.rate); (err == nil) != tt.ok {
			t.Errorf("ValidateRate(%v) err = %v, want ok=%v", tt.rate, err, tt.ok)
		}
	}
}

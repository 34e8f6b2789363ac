package report

import "testing"

func TestComma0(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1234, "1,234"},
		{1234567, "1,234,567"},
		{1234.6, "1,235"},
		{-20000, "-20,000"},
	}
	for _, tt := range tests {
		if got := comma0(tt.in); got != tt.want {
			t.Errorf("comma0(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComma2(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{96.666, "96.67"},
		{1234.5, "1,234.50"},
	}
	for _, tt := range tests {
		if got := comma2(tt.in); got != tt.want {
			t.Errorf("comma2(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := formatRate(33.5); got != "33.5" {
		t.Errorf("formatRate(33.5) = %q", got)
	}
	if got := formatRate(30); got != "30" {
		t.Errorf("formatRate(30) = %q", got)
	}
}

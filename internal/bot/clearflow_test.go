package bot

import (
	"testing"
	"time"

	"github.com/Jun878787/northsea-bot/internal/models"
	"github.com/Jun878787/northsea-bot/internal/timeutil"
)

func TestClearDateInput(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"6", true},
		{"12", true},
		{"6/12", true},
		{"06/05", true},
		{"", false},
		{"6月", false},
		{"6/12/3", false},
		{"abc", false},
		{"123", false},
	}
	for _, tt := range tests {
		if got := reClearDate.MatchString(tt.in); got != tt.ok {
			t.Errorf("reClearDate(%q) = %v, want %v", tt.in, got, tt.ok)
		}
	}
}

func TestClearRangeMonth(t *testing.T) {
	year := timeutil.Now().Year()

	from, to, err := clearRange("6")
	if err != nil {
		t.Fatal(err)
	}
	wantFrom := time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)
	if !from.Equal(wantFrom) || !to.Equal(wantFrom.AddDate(0, 1, 0)) {
		t.Errorf("clearRange(6) = %s..%s", from, to)
	}
}

func TestClearRangeDay(t *testing.T) {
	year := timeutil.Now().Year()

	from, to, err := clearRange("6/12")
	if err != nil {
		t.Fatal(err)
	}
	wantFrom := time.Date(year, 6, 12, 0, 0, 0, 0, time.UTC)
	if !from.Equal(wantFrom) || !to.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Errorf("clearRange(6/12) = %s..%s", from, to)
	}
}

func TestClearRangeInvalid(t *testing.T) {
	for _, in := range []string{"0", "13", "6/0", "6/32", "x", "6/x"} {
		if _, _, err := clearRange(in); err == nil {
			t.Errorf("clearRange(%q) 應該報錯", in)
		}
	}
}

func TestFilterMonth(t *testing.T) {
	txs := []models.Transaction{
		{Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Amount: 1},
		{Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Amount: 2},
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Amount: 3},
		{Date: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), Amount: 4},
	}

	got := filterMonth(txs, 2026, time.June)
	if len(got) != 2 {
		t.Fatalf("筆數 = %d, want 2", len(got))
	}
	if got[0].Amount != 1 || got[1].Amount != 4 {
		t.Errorf("留下的不對: %+v", got)
	}
}

package rates

import (
	"errors"
	"testing"
	"time"

	"github.com/Jun878787/northsea-bot/internal/models"
)

type fakeSource struct {
	rates map[string]float64 // key: yyyy-mm-dd|currency，查詢時逐日往前找
	err   error
}

func (f *fakeSource) GetRate(date time.Time, currency models.Currency) (float64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	for d := date; d.After(date.AddDate(0, -1, 0)); d = d.AddDate(0, 0, -1) {
		if rate, ok := f.rates[d.Format("2006-01-02")+"|"+string(currency)]; ok {
			return rate, true, nil
		}
	}
	return 0, false, nil
}

func day(m, d int) time.Time {
	return time.Date(2026, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestResolverLatestPrior(t *testing.T) {
	src := &fakeSource{rates: map[string]float64{
		"2026-06-01|TW": 33.5,
		"2026-06-10|TW": 32.0,
	}}
	r := NewResolver(src, 30.0, 7.0)

	tests := []struct {
		date time.Time
		want float64
	}{
		{day(6, 1), 33.5},
		{day(6, 5), 33.5},  // 沿用 6/1 設定
		{day(6, 10), 32.0}, // 當日優先
		{day(6, 15), 32.0},
	}
	for _, tt := range tests {
		if got := r.For(tt.date, models.CurrencyTW); got != tt.want {
			t.Errorf("For(%v, TW) = %v, want %v", tt.date.Format("01/02"), got, tt.want)
		}
	}
}

func TestResolverFallback(t *testing.T) {
	r := NewResolver(&fakeSource{rates: map[string]float64{}}, 30.0, 7.0)
	if got := r.For(day(6, 1), models.CurrencyTW); got != 30.0 {
		t.Errorf("TW fallback = %v, want 30.0", got)
	}
	if got := r.For(day(6, 1), models.CurrencyCN); got != 7.0 {
		t.Errorf("CN fallback = %v, want 7.0", got)
	}
}

func TestResolverErrorFallsBack(t *testing.T) {
	r := NewResolver(&fakeSource{err: errors.New("db down")}, 30.0, 7.0)
	if got := r.For(day(6, 1), models.CurrencyTW); got != 30.0 {
		t.Errorf("For on error = %v, want fallback 30.0", got)
	}
}

func TestResolverPair(t *testing.T) {
	src := &fakeSource{rates: map[string]float64{
		"2026-06-01|TW": 33.0,
		"2026-06-01|CN": 7.2,
	}}
	r := NewResolver(src, 30.0, 7.0)
	tw, cn := r.Pair(day(6, 1))
	if tw != 33.0 || cn != 7.2 {
		t.Errorf("Pair = %v, %v, want 33.0, 7.2", tw, cn)
	}
}

func TestResolverZeroFallbackDefaults(t *testing.T) {
	r := NewResolver(&fakeSource{}, 0, 0)
	if got := r.For(day(6, 1), models.CurrencyTW); got != 30.0 {
		t.Errorf("default TW fallback = %v, want 30.0", got)
	}
	if got := r.For(day(6, 1), models.CurrencyCN); got != 7.0 {
		t.Errorf("default CN fallback = %v, want 7.0", got)
	}
}

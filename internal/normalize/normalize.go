package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Jun878787/northsea-bot/internal/timeutil"

	"github.com/shopspring/decimal"
)

// CoerceAmount 把任意數值形態安全轉成 float64
// 報表聚合要能容忍資料庫撈出的壞列，所以轉換失敗一律回 0，不報錯
func CoerceAmount(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case decimal.Decimal:
		f, _ := v.Float64()
		return f
	case string:
		d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v), ",", ""))
		if err != nil {
			return 0
		}
		f, _ := d.Float64()
		return f
	}
	return 0
}

var (
	reSlashDate   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	reISODate     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reDashDate    = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)
	reChineseDate = regexp.MustCompile(`^(\d{1,2})月(\d{1,2})日$`)
)

// ParseDateToken 解析日期 token：MM/DD、YYYY-MM-DD、MM-DD、MM月DD日
// 兩段式的格式一律補上今年的年份，即使因此落在未來也照舊
//（年底跨年輸入的行為待產品方確認，先保持原樣）
func ParseDateToken(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)

	if m := reSlashDate.FindStringSubmatch(token); m != nil {
		return makeDate(timeutil.Now().Year(), m[1], m[2])
	}
	if m := reISODate.FindStringSubmatch(token); m != nil {
		return makeDateFull(m[1], m[2], m[3])
	}
	if m := reDashDate.FindStringSubmatch(token); m != nil {
		return makeDate(timeutil.Now().Year(), m[1], m[2])
	}
	if m := reChineseDate.FindStringSubmatch(token); m != nil {
		return makeDate(timeutil.Now().Year(), m[1], m[2])
	}
	return time.Time{}, false
}

// FormatDateToken 把日期格式化回 MM/DD 形式（與 ParseDateToken 往返一致）
func FormatDateToken(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// FormatISODate 完整日期形式 YYYY-MM-DD
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

func makeDate(year int, monthStr, dayStr string) (time.Time, bool) {
	month := atoi(monthStr)
	day := atoi(dayStr)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date 會把 2/31 之類的日期進位到下個月，這裡視為無效
	if int(t.Month()) != month || t.Day() != day || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

func makeDateFull(yearStr, monthStr, dayStr string) (time.Time, bool) {
	year := atoi(yearStr)
	if year < 1 {
		return time.Time{}, false
	}
	return makeDate(year, monthStr, dayStr)
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// ValidateAmount 驗證金額（必須為正數且不超過上限）
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("金額必須大於 0")
	}
	if amount > 1000000 {
		return fmt.Errorf("金額超過單筆上限 1,000,000")
	}
	return nil
}

// ValidateRate 驗證匯率落在合理範圍
func ValidateRate(rate float64) error {
	if rate < 0.1 || rate > 100 {
		return fmt.Errorf("匯率必須介於 0.1 到 100 之間")
	}
	return nil
}

package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/Jun878787/northsea-bot/internal/timeutil"
)

// Comma0 四捨五入到整數並加千分位
func Comma0(f float64) string {
	return comma0(f)
}

// comma0 四捨五入到整數並加千分位，NT$1,234 這種帳面寫法
func comma0(f float64) string {
	return groupThousands(strconv.FormatFloat(f, 'f', 0, 64))
}

// comma2 保留兩位小數並加千分位，USDT 金額用
func comma2(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	return groupThousands(s[:dot]) + s[dot:]
}

func groupThousands(intPart string) string {
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func weekdayOf(d time.Time) string {
	return timeutil.WeekdayChinese(d)
}

// formatRate 匯率顯示不補零，33.5 就印 33.5、30 就印 30
func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

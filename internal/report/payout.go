package report

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Jun878787/northsea-bot/internal/models"
	"github.com/Jun878787/northsea-bot/internal/normalize"
	"github.com/Jun878787/northsea-bot/internal/rates"
	"github.com/Jun878787/northsea-bot/internal/timeutil"
)

// 結構化記錄的備註帶「出款人: 名字 | ...」，當日出款明細優先認這個名字
var rePayerInMemo = regexp.MustCompile(`出款人:\s*([^|]+)`)

// DailyPayout 產生當日出款報表：今日收入總額加上逐人明細。
// 尾端附更新時間與隨機編號，保證連點兩次刷新時訊息內容不同，
// Telegram 對 edit 成完全相同內容會回錯誤
func DailyPayout(txs []models.Transaction, today time.Time, displayName func(int64) string) (out string) {
	defer recoverFormat(&out)
	total := 0.0
	var order []string
	perUser := make(map[string]float64)

	for _, tx := range txs {
		if tx.Kind != models.KindIncome {
			continue
		}
		amount := normalize.CoerceAmount(tx.Amount)
		if amount <= 0 {
			continue
		}
		total += amount

		name := ""
		if m := rePayerInMemo.FindStringSubmatch(tx.Memo); m != nil {
			name = strings.TrimSpace(m[1])
		}
		if name == "" {
			name = displayName(tx.UserID)
		}
		if !strings.HasPrefix(name, "@") {
			name = "@" + name
		}
		if _, ok := perUser[name]; !ok {
			order = append(order, name)
		}
		perUser[name] += amount
	}
	sort.Strings(order)

	var b strings.Builder
	fmt.Fprintf(&b, "<b>◉ 本日總出款</b>\n<code>NT$%s</code>\n", comma0(total))
	b.WriteString("－－－－－－－－－－\n")
	fmt.Fprintf(&b, "%s (%s) 收支明細\n", today.Format("2006年01月02日"), timeutil.WeekdayChinese(today))
	fmt.Fprintf(&b, "<i>更新時間: %s #%d</i>", timeutil.Now().Format("15:04:05"), 100+rand.Intn(900))

	if len(order) > 0 {
		for _, name := range order {
			if perUser[name] > 0 {
				fmt.Fprintf(&b, "\n%s <code>NT$%s</code>", name, comma0(perUser[name]))
			}
		}
		fmt.Fprintf(&b, "\n\n📊 共 %d 筆記錄", len(order))
	} else {
		b.WriteString("\n\n📝 今日暫無記錄")
	}

	return FixHTMLTags(b.String())
}

// MonthlyPayout 產生當月出款報表：兩幣別收入合併成台幣口徑的總出款，
// 再按日期列出各幣別的單日總額
func MonthlyPayout(txs []models.Transaction, now time.Time, r *rates.Resolver) (out string) {
	defer recoverFormat(&out)
	twTotal, cnTotal := 0.0, 0.0
	type dayAmounts struct {
		date   time.Time
		tw, cn float64
	}
	days := make(map[string]*dayAmounts)

	for _, tx := range txs {
		if tx.Kind != models.KindIncome {
			continue
		}
		amount := normalize.CoerceAmount(tx.Amount)
		key := tx.Date.Format("01/02")
		d, ok := days[key]
		if !ok {
			d = &dayAmounts{date: tx.Date}
			days[key] = d
		}
		switch tx.Currency {
		case models.CurrencyTW:
			twTotal += amount
			d.tw += amount
		case models.CurrencyCN:
			cnTotal += amount
			d.cn += amount
		}
	}

	twRate, cnRate := r.Pair(timeutil.DateOnly(now))
	twUSDT, cnUSDT := 0.0, 0.0
	if twTotal > 0 {
		twUSDT = twTotal / twRate
	}
	if cnTotal > 0 {
		cnUSDT = cnTotal / cnRate
	}
	combined := twTotal + cnTotal*cnRate/twRate

	var b strings.Builder
	fmt.Fprintf(&b, "<b>◉ 本月總出款</b>\n<code>NT$%s</code> → <code>USDT$%s</code>\n",
		comma0(combined), comma2(twUSDT+cnUSDT))
	b.WriteString("－－－－－－－－－－\n")
	fmt.Fprintf(&b, "%s收支明細\n", now.Format("2006年01月"))
	fmt.Fprintf(&b, "<i>更新時間: %s #%d</i>", timeutil.Now().Format("15:04:05"), 100+rand.Intn(900))

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var twLines, cnLines []string
	for _, key := range keys {
		d := days[key]
		display := fmt.Sprintf("%s(%s)", key, timeutil.WeekdayChinese(d.date))
		if d.tw > 0 {
			twLines = append(twLines, fmt.Sprintf("<code>%s NT$%s</code>", display, comma0(d.tw)))
		}
		if d.cn > 0 {
			cnLines = append(cnLines, fmt.Sprintf("<code>%s CN¥%s</code>", display, comma0(d.cn)))
		}
	}

	writeBlock := func(lines []string) {
		for i, line := range lines {
			b.WriteString("\n" + line)
			if i < len(lines)-1 && (i+1)%2 == 0 {
				b.WriteString("\n－－－－－－－－－－")
			}
		}
	}
	writeBlock(twLines)
	if len(cnLines) > 0 {
		if len(twLines) > 0 {
			b.WriteString("\n－－－－－－－－－－")
		}
		writeBlock(cnLines)
	}
	if len(twLines) == 0 && len(cnLines) == 0 {
		b.WriteString("\n\n📝 本月暫無記錄")
	}

	return FixHTMLTags(b.String())
}

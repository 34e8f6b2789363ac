package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jun878787/northsea-bot/internal/models"
	"github.com/Jun878787/northsea-bot/internal/normalize"
	"github.com/Jun878787/northsea-bot/internal/rates"
)

// FleetTitle 車隊報表的固定抬頭
const FleetTitle = "North™Sea 北金國際"

// dayBucket 一天的收入彙總，只收 income，expense 不進業績報表
type dayBucket struct {
	date    time.Time
	tw, cn  float64
	members []memberTotal // 依首次出現順序
	index   map[string]int
}

type memberTotal struct {
	name   string
	tw, cn float64
}

func (b *dayBucket) add(name string, currency models.Currency, amount float64) {
	switch currency {
	case models.CurrencyTW:
		b.tw += amount
	case models.CurrencyCN:
		b.cn += amount
	default:
		return
	}
	i, ok := b.index[name]
	if !ok {
		i = len(b.members)
		b.members = append(b.members, memberTotal{name: name})
		b.index[name] = i
	}
	if currency == models.CurrencyTW {
		b.members[i].tw += amount
	} else {
		b.members[i].cn += amount
	}
}

// bucketIncome 把收入交易按 MM/DD 分桶，nameFn 決定明細行掛在誰名下
// （群組報表掛用戶、車隊報表掛群組）。金額經 CoerceAmount 容錯，壞列不讓整份報表掛掉
func bucketIncome(txs []models.Transaction, nameFn func(models.Transaction) string) map[string]*dayBucket {
	buckets := make(map[string]*dayBucket)
	for _, tx := range txs {
		if tx.Kind != models.KindIncome {
			continue
		}
		if !tx.Currency.Valid() {
			logrus.WithFields(logrus.Fields{
				"id":       tx.ID,
				"currency": tx.Currency,
			}).Warn("略過幣別異常的交易")
			continue
		}
		key := tx.Date.Format("01/02")
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{date: tx.Date, index: make(map[string]int)}
			buckets[key] = b
		}
		b.add(nameFn(tx), tx.Currency, normalize.CoerceAmount(tx.Amount))
	}
	return buckets
}

func sortedDayKeys(buckets map[string]*dayBucket) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys) // MM/DD 補零後字典序即日期序
	return keys
}

// convertThenSum 逐日除以當日匯率再相加
// 總額換算必須走這條路，先加總再用單一匯率除會算錯跨匯率日的帳
func convertThenSum(buckets map[string]*dayBucket, r *rates.Resolver) (twAmount, cnAmount, twUSDT, cnUSDT float64) {
	for _, b := range buckets {
		twRate, cnRate := r.Pair(b.date)
		twAmount += b.tw
		cnAmount += b.cn
		if b.tw > 0 {
			twUSDT += b.tw / twRate
		}
		if b.cn > 0 {
			cnUSDT += b.cn / cnRate
		}
	}
	return
}

// formatMonthly 群組與車隊報表共用的版面：
// 總業績抬頭、分隔線、逐日匯率與明細。wrapName 決定明細行名稱的呈現方式
func formatMonthly(title string, buckets map[string]*dayBucket, r *rates.Resolver, wrapName func(string) string) string {
	twAmount, cnAmount, twUSDT, cnUSDT := convertThenSum(buckets, r)

	var lines []string
	lines = append(lines, title, "")
	if twAmount > 0 {
		lines = append(lines, "◉ 台幣業績",
			fmt.Sprintf("NT$%s → USDT$%s", comma0(twAmount), comma2(twUSDT)))
	}
	if cnAmount > 0 {
		lines = append(lines, "◉ 人民幣業績",
			fmt.Sprintf("CN¥%s → USDT$%s", comma0(cnAmount), comma2(cnUSDT)))
	}
	lines = append(lines, "_____________________________")

	for _, key := range sortedDayKeys(buckets) {
		b := buckets[key]
		if b.tw <= 0 && b.cn <= 0 {
			continue
		}
		twRate, cnRate := r.Pair(b.date)
		lines = append(lines, fmt.Sprintf("%s 台幣匯率%s 人民幣匯率%s", key, formatRate(twRate), formatRate(cnRate)))

		var dayParts []string
		if b.tw > 0 {
			dayParts = append(dayParts, fmt.Sprintf("NT$%s(%s)", comma0(b.tw), comma2(b.tw/twRate)))
		}
		if b.cn > 0 {
			dayParts = append(dayParts, fmt.Sprintf("CN¥%s(%s)", comma0(b.cn), comma2(b.cn/cnRate)))
		}
		lines = append(lines, strings.Join(dayParts, "  "))

		for _, m := range b.members {
			var parts []string
			if m.tw > 0 {
				parts = append(parts, "NT$"+comma0(m.tw))
			}
			if m.cn > 0 {
				parts = append(parts, "CN¥"+comma0(m.cn))
			}
			if len(parts) > 0 {
				lines = append(lines, fmt.Sprintf("   • %s %s", strings.Join(parts, "  "), wrapName(m.name)))
			}
		}
		lines = append(lines, "")
	}

	return FixHTMLTags(strings.Join(lines, "\n"))
}

// recoverFormat 報表組裝途中 panic 時兜底，回固定錯誤文案而不是讓 bot 掛掉
func recoverFormat(out *string) {
	if rec := recover(); rec != nil {
		logrus.WithField("panic", rec).Error("報表格式化失敗")
		*out = fmt.Sprintf("報表格式化失敗: %v", rec)
	}
}

// Group 產生群組月報表，明細行掛用戶
func Group(txs []models.Transaction, groupName string, year int, month time.Month, r *rates.Resolver, displayName func(int64) string) (out string) {
	defer recoverFormat(&out)
	title := fmt.Sprintf("<b>%s %d年%d月群組報表</b>", groupName, year, int(month))
	buckets := bucketIncome(txs, func(tx models.Transaction) string {
		return displayName(tx.UserID)
	})
	if len(buckets) == 0 {
		return title + "\n\n❌ 暫無數據"
	}
	return formatMonthly(title, buckets, r, func(name string) string {
		return "<code>" + name + "</code>"
	})
}

// Fleet 產生跨群組的車隊月報表，明細行掛群組名
func Fleet(txs []models.Transaction, year int, month time.Month, r *rates.Resolver, groupName func(int64) string) (out string) {
	defer recoverFormat(&out)
	title := fmt.Sprintf("<b>%s %d年%d月車隊報表</b>", FleetTitle, year, int(month))
	buckets := bucketIncome(txs, func(tx models.Transaction) string {
		if name := groupName(tx.GroupID); name != "" {
			return name
		}
		return fmt.Sprintf("群組%d", tx.GroupID)
	})
	if len(buckets) == 0 {
		return title + "\n\n❌ 暫無數據"
	}
	return formatMonthly(title, buckets, r, func(name string) string { return name })
}

// Personal 產生個人月報表，總額同樣逐日換算
func Personal(txs []models.Transaction, userName, groupName string, r *rates.Resolver) (out string) {
	defer recoverFormat(&out)
	if len(txs) == 0 {
		return fmt.Sprintf("📊 <b>%s個人報表</b>\n\n❌ 本月暫無交易記錄", userName)
	}

	buckets := bucketIncome(txs, func(models.Transaction) string { return userName })
	twAmount, cnAmount, twUSDT, cnUSDT := convertThenSum(buckets, r)

	lines := []string{
		fmt.Sprintf("📊 <b>%s個人報表 (%s)</b>", userName, groupName),
		"－－－－－－－－－－",
		"◉ 台幣業績",
		fmt.Sprintf("<code>NT$%s</code> → <code>USDT$%s</code>", comma0(twAmount), comma2(twUSDT)),
		"◉ 人民幣業績",
		fmt.Sprintf("<code>CN¥%s</code> → <code>USDT$%s</code>", comma0(cnAmount), comma2(cnUSDT)),
		"－－－－－－－－－－",
	}

	for _, key := range sortedDayKeys(buckets) {
		b := buckets[key]
		if b.tw <= 0 && b.cn <= 0 {
			continue
		}
		var parts []string
		if b.tw > 0 {
			parts = append(parts, fmt.Sprintf("<code>NT$%s</code>", comma0(b.tw)))
		}
		if b.cn > 0 {
			parts = append(parts, fmt.Sprintf("<code>CN¥%s</code>", comma0(b.cn)))
		}
		lines = append(lines, fmt.Sprintf("<b>%s (%s)</b> • %s",
			key, weekdayOf(b.date), strings.Join(parts, " ")))
	}

	return FixHTMLTags(strings.Join(lines, "\n"))
}

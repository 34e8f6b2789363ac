package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Jun878787/northsea-bot/internal/models"
	"github.com/Jun878787/northsea-bot/internal/normalize"
)

// Command 是單行指令解析出的變體型別
// 解析失敗時 Parse 回傳 nil，由呼叫端顯示用法提示，解析本身不報錯
type Command interface {
	isCommand()
}

// Transaction 一筆幣別記帳指令
type Transaction struct {
	Mention  string // 代記帳的 @用戶名，未解析成 ID，由呼叫端查表
	Date     time.Time
	Currency models.Currency
	Amount   float64 // 永遠為正，方向在 Kind
	Kind     models.TxKind
}

// FundAdjust 公桶/私人資金調整，沒有日期，永遠記在當下
type FundAdjust struct {
	Kind   models.FundKind
	Op     models.TxKind // income=增加 expense=減少
	Amount float64
}

// SetRate 設定某日匯率
type SetRate struct {
	Date     time.Time // 零值表示今天，由呼叫端補
	Currency models.Currency
	Rate     float64
}

// RateHelp 「設定...匯率」字樣出現但格式不符，需回覆用法說明
type RateHelp struct{}

// DeleteEntry 刪除單筆（依 日期+幣別+金額 精確比對，限本人）
type DeleteEntry struct {
	Date     time.Time
	Currency models.Currency
	Amount   float64
}

// DeleteMonth 刪除整月某幣別記錄（限本人，今年）
type DeleteMonth struct {
	Month    int
	Currency models.Currency
}

// DeleteHelp 「刪除」開頭但格式不符
type DeleteHelp struct{}

// Record 結構化金融記錄區塊（項目/金額欄位的多行訊息）
type Record struct {
	PayerCode string
	PayerName string // "未指定" 時由呼叫端補發話人
	Item      string
	Bank      string
	Amount    int // 正為收入、負為支出
	Code      string
	Account   string
	Mention   string
	Date      time.Time // 零值表示今天
}

func (Transaction) isCommand() {}
func (FundAdjust) isCommand()  {}
func (SetRate) isCommand()     {}
func (RateHelp) isCommand()    {}
func (DeleteEntry) isCommand() {}
func (DeleteMonth) isCommand() {}
func (DeleteHelp) isCommand()  {}
func (Record) isCommand()      {}

// 規則依固定優先序逐一嘗試，先中先贏。順序是有語義的：
//  1. 結構化記錄區塊
//  2. 幣別記帳
//  3. 資金調整
//  4. 匯率指令
//  5. 刪除指令
//
// 記帳與資金規則會先排除 設定/刪除 開頭的指令字樣，
// 否則「刪除"6/1"TW500」會被當成一筆 6/1 的台幣記帳吃掉。
var rules = []struct {
	name string
	fn   func(string) Command
}{
	{"record", parseRecord},
	{"transaction", parseTransaction},
	{"fund", parseFund},
	{"rate", parseRate},
	{"delete", parseDelete},
}

// Parse 將一則訊息分類成指令，無法辨識時回傳 nil
func Parse(text string) Command {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	for _, rule := range rules {
		if cmd := rule.fn(text); cmd != nil {
			return cmd
		}
	}
	return nil
}

// ---------- 幣別記帳 ----------

var (
	reMention = regexp.MustCompile(`^@(\S+)\s+`)

	// 日期樣式按原始優先序：MM/DD、YYYY-MM-DD、MM-DD、MM月DD日
	dateTokenPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}/\d{1,2}`),
		regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),
		regexp.MustCompile(`\d{1,2}-\d{1,2}`),
		regexp.MustCompile(`\d{1,2}月\d{1,2}日`),
	}

	reTWAmount = regexp.MustCompile(`(?i)(?:TW|台幣|臺幣)\s*([+\-＋－])?\s*(-?\d+(?:\.\d+)?)`)
	reCNAmount = regexp.MustCompile(`(?i)(?:CN|人民幣|RMB)\s*([+\-＋－])?\s*(-?\d+(?:\.\d+)?)`)
)

func isDirective(text string) bool {
	return strings.HasPrefix(text, "刪除") || strings.HasPrefix(text, "設定") ||
		strings.HasPrefix(text, "匯率設定")
}

func parseTransaction(text string) Command {
	if isDirective(text) {
		return nil
	}

	mention := ""
	if m := reMention.FindStringSubmatch(text); m != nil {
		mention = m[1]
		text = strings.TrimSpace(text[len(m[0]):])
	}

	// 沒有日期 token 就整個不收：強制要求輸入日期是刻意的嚴格政策
	var txDate time.Time
	found := false
	for _, p := range dateTokenPatterns {
		loc := p.FindStringIndex(text)
		if loc == nil {
			continue
		}
		d, ok := normalize.ParseDateToken(text[loc[0]:loc[1]])
		if !ok {
			continue
		}
		txDate = d
		text = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
		found = true
		break
	}
	if !found {
		return nil
	}

	for _, cand := range []struct {
		re       *regexp.Regexp
		currency models.Currency
	}{
		{reTWAmount, models.CurrencyTW},
		{reCNAmount, models.CurrencyCN},
	} {
		m := cand.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}

		kind := defaultKind(cand.currency)
		switch m[1] {
		case "+", "＋":
			kind = models.KindIncome
		case "-", "－":
			kind = models.KindExpense
		default:
			if amount < 0 {
				kind = models.KindExpense
			}
		}
		return Transaction{
			Mention:  mention,
			Date:     txDate,
			Currency: cand.currency,
			Amount:   absFloat(amount),
			Kind:     kind,
		}
	}
	return nil
}

// defaultKind 無正負號時的預設方向：台幣進、人民幣出。
// 這個不對稱是領域慣用的速記（人民幣通常代表出款結算），
// 必須原樣保留，不要「修正」成對稱規則。
func defaultKind(c models.Currency) models.TxKind {
	if c == models.CurrencyCN {
		return models.KindExpense
	}
	return models.KindIncome
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// ---------- 資金調整 ----------

var (
	rePublicFund  = regexp.MustCompile(`(?:公桶|公共)\s*([+\-＋－])?\s*(-?\d+(?:\.\d+)?)`)
	rePrivateFund = regexp.MustCompile(`(?:私人|個人)\s*([+\-＋－])?\s*(-?\d+(?:\.\d+)?)`)
)

func parseFund(text string) Command {
	if isDirective(text) {
		return nil
	}
	for _, cand := range []struct {
		re   *regexp.Regexp
		kind models.FundKind
	}{
		{rePublicFund, models.FundPublic},
		{rePrivateFund, models.FundPrivate},
	} {
		m := cand.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		op := models.TxKind(models.KindIncome)
		if m[1] == "-" || m[1] == "－" || amount < 0 {
			op = models.KindExpense
		}
		return FundAdjust{Kind: cand.kind, Op: op, Amount: absFloat(amount)}
	}
	return nil
}

// ---------- 匯率指令 ----------

// 四種固定寫法，其餘「設定...匯率」一律回用法說明而不是默默忽略
var (
	reRateToday    = regexp.MustCompile(`^設定匯率(\d+\.?\d*)$`)
	reRateDated    = regexp.MustCompile(`^設定(\d{1,2}/\d{1,2})匯率(\d+\.?\d*)$`)
	reRateCNToday  = regexp.MustCompile(`^設定CN匯率(\d+\.?\d*)$`)
	reRateCNDated  = regexp.MustCompile(`^設定(\d{1,2}/\d{1,2})CN匯率(\d+\.?\d*)$`)
)

func parseRate(text string) Command {
	if m := reRateToday.FindStringSubmatch(text); m != nil {
		return rateCmd("", m[1], models.CurrencyTW)
	}
	if m := reRateDated.FindStringSubmatch(text); m != nil {
		return rateCmd(m[1], m[2], models.CurrencyTW)
	}
	if m := reRateCNToday.FindStringSubmatch(text); m != nil {
		return rateCmd("", m[1], models.CurrencyCN)
	}
	if m := reRateCNDated.FindStringSubmatch(text); m != nil {
		return rateCmd(m[1], m[2], models.CurrencyCN)
	}
	if (strings.Contains(text, "設定") && strings.Contains(text, "匯率")) ||
		strings.HasPrefix(text, "匯率設定") {
		return RateHelp{}
	}
	return nil
}

func rateCmd(dateToken, rateStr string, currency models.Currency) Command {
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return RateHelp{}
	}
	var d time.Time
	if dateToken != "" {
		parsed, ok := normalize.ParseDateToken(dateToken)
		if !ok {
			return RateHelp{}
		}
		d = parsed
	}
	return SetRate{Date: d, Currency: currency, Rate: rate}
}

// ---------- 刪除指令 ----------

var (
	reDeleteEntry = regexp.MustCompile("刪除[\"'“”]?(\\d{1,2}/\\d{1,2})[\"'“”]?(TW|CN)(\\d+(?:\\.\\d+)?)")
	reDeleteMonth = regexp.MustCompile("刪除[\"'“”]?(\\d{1,2})月[\"'“”]?(TW|CN)報表")
)

func parseDelete(text string) Command {
	if !strings.HasPrefix(text, "刪除") {
		return nil
	}
	if m := reDeleteEntry.FindStringSubmatch(text); m != nil {
		d, ok := normalize.ParseDateToken(m[1])
		if !ok {
			return DeleteHelp{}
		}
		amount, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return DeleteHelp{}
		}
		return DeleteEntry{Date: d, Currency: models.Currency(m[2]), Amount: amount}
	}
	if m := reDeleteMonth.FindStringSubmatch(text); m != nil {
		month, err := strconv.Atoi(m[1])
		if err != nil || month < 1 || month > 12 {
			return DeleteHelp{}
		}
		return DeleteMonth{Month: month, Currency: models.Currency(m[2])}
	}
	return DeleteHelp{}
}

package parser

import (
	"testing"
	"time"

	"github.com/Jun878787/northsea-bot/internal/models"
	"github.com/Jun878787/northsea-bot/internal/timeutil"
)

func date(m, d int) time.Time {
	return time.Date(timeutil.Now().Year(), time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParseTransaction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Transaction
	}{
		{"台幣加號", "6/1 TW+500", Transaction{Date: date(6, 1), Currency: models.CurrencyTW, Amount: 500, Kind: models.KindIncome}},
		{"台幣減號", "6/1 TW-500", Transaction{Date: date(6, 1), Currency: models.CurrencyTW, Amount: 500, Kind: models.KindExpense}},
		{"全形加號", "6/1 TW＋500", Transaction{Date: date(6, 1), Currency: models.CurrencyTW, Amount: 500, Kind: models.KindIncome}},
		{"台幣無符號預設收入", "6/1 TW500", Transaction{Date: date(6, 1), Currency: models.CurrencyTW, Amount: 500, Kind: models.KindIncome}},
		{"人民幣無符號預設支出", "6/1 CN500", Transaction{Date: date(6, 1), Currency: models.CurrencyCN, Amount: 500, Kind: models.KindExpense}},
		{"人民幣加號", "6/1 CN+500", Transaction{Date: date(6, 1), Currency: models.CurrencyCN, Amount: 500, Kind: models.KindIncome}},
		{"中文幣名", "6/1 台幣+1000", Transaction{Date: date(6, 1), Currency: models.CurrencyTW, Amount: 1000, Kind: models.KindIncome}},
		{"人民幣別名", "6/1 RMB-200", Transaction{Date: date(6, 1), Currency: models.CurrencyCN, Amount: 200, Kind: models.KindExpense}},
		{"負數字面值", "6/1 TW-500.5", Transaction{Date: date(6, 1), Currency: models.CurrencyTW, Amount: 500.5, Kind: models.KindExpense}},
		{"中文日期", "6月1日 TW+500", Transaction{Date: date(6, 1), Currency: models.CurrencyTW, Amount: 500, Kind: models.KindIncome}},
		{"ISO日期", "2026-06-01 TW+500", Transaction{Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Currency: models.CurrencyTW, Amount: 500, Kind: models.KindIncome}},
		{"代記帳", "@N3 6/1 TW+500", Transaction{Mention: "N3", Date: date(6, 1), Currency: models.CurrencyTW, Amount: 500, Kind: models.KindIncome}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.text).(Transaction)
			if !ok {
				t.Fatalf("Parse(%q) = %v, want Transaction", tt.text, Parse(tt.text))
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseTransactionRequiresDate(t *testing.T) {
	for _, text := range []string{"TW+500", "CN500", "台幣1000"} {
		if cmd := Parse(text); cmd != nil {
			t.Errorf("Parse(%q) = %+v, want nil (缺日期不收)", text, cmd)
		}
	}
}

func TestParseFund(t *testing.T) {
	tests := []struct {
		text string
		want FundAdjust
	}{
		{"公桶+1000", FundAdjust{Kind: models.FundPublic, Op: models.KindIncome, Amount: 1000}},
		{"公桶-300", FundAdjust{Kind: models.FundPublic, Op: models.KindExpense, Amount: 300}},
		{"公共500", FundAdjust{Kind: models.FundPublic, Op: models.KindIncome, Amount: 500}},
		{"私人＋200", FundAdjust{Kind: models.FundPrivate, Op: models.KindIncome, Amount: 200}},
		{"個人-50", FundAdjust{Kind: models.FundPrivate, Op: models.KindExpense, Amount: 50}},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.text).(FundAdjust)
		if !ok {
			t.Fatalf("Parse(%q) = %v, want FundAdjust", tt.text, Parse(tt.text))
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		text string
		want SetRate
	}{
		{"設定匯率33.5", SetRate{Currency: models.CurrencyTW, Rate: 33.5}},
		{"設定6/1匯率33.5", SetRate{Date: date(6, 1), Currency: models.CurrencyTW, Rate: 33.5}},
		{"設定CN匯率7.2", SetRate{Currency: models.CurrencyCN, Rate: 7.2}},
		{"設定6/1CN匯率7.2", SetRate{Date: date(6, 1), Currency: models.CurrencyCN, Rate: 7.2}},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.text).(SetRate)
		if !ok {
			t.Fatalf("Parse(%q) = %v, want SetRate", tt.text, Parse(tt.text))
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestParseRateHelp(t *testing.T) {
	for _, text := range []string{"設定 匯率 abc", "設定匯率", "匯率設定30"} {
		if _, ok := Parse(text).(RateHelp); !ok {
			t.Errorf("Parse(%q) = %+v, want RateHelp", text, Parse(text))
		}
	}
}

func TestParseDelete(t *testing.T) {
	if got, ok := Parse(`刪除"6/1"TW500`).(DeleteEntry); !ok {
		t.Fatalf(`Parse(刪除"6/1"TW500) = %+v, want DeleteEntry`, Parse(`刪除"6/1"TW500`))
	} else {
		want := DeleteEntry{Date: date(6, 1), Currency: models.CurrencyTW, Amount: 500}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}

	if got, ok := Parse(`刪除"6月"TW報表`).(DeleteMonth); !ok {
		t.Fatalf(`Parse(刪除"6月"TW報表) = %+v, want DeleteMonth`, Parse(`刪除"6月"TW報表`))
	} else {
		want := DeleteMonth{Month: 6, Currency: models.CurrencyTW}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}

	// 引號可省略
	if _, ok := Parse("刪除6/1CN200").(DeleteEntry); !ok {
		t.Errorf("Parse(刪除6/1CN200) = %+v, want DeleteEntry", Parse("刪除6/1CN200"))
	}

	if _, ok := Parse("刪除 全部").(DeleteHelp); !ok {
		t.Errorf("Parse(刪除 全部) = %+v, want DeleteHelp", Parse("刪除 全部"))
	}
}

func TestParseRecord(t *testing.T) {
	text := "【N3-小明】\n項目：推廣\n銀行：台新\n金額：-20000\n代碼：812\n帳號：1234567890"
	got, ok := Parse(text).(Record)
	if !ok {
		t.Fatalf("Parse = %+v, want Record", Parse(text))
	}
	want := Record{PayerCode: "N3", PayerName: "小明", Item: "推廣", Bank: "台新", Amount: -20000, Code: "812", Account: "1234567890"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseRecordMention(t *testing.T) {
	text := "@N3 7/1\n項目：薪資\n金額：5000"
	got, ok := Parse(text).(Record)
	if !ok {
		t.Fatalf("Parse = %+v, want Record", Parse(text))
	}
	if got.Mention != "N3" || !got.Date.Equal(date(7, 1)) {
		t.Errorf("mention/date = %q/%v, want N3/%v", got.Mention, got.Date, date(7, 1))
	}
	if got.PayerName != "@N3" || got.Amount != 5000 {
		t.Errorf("payer/amount = %q/%d", got.PayerName, got.Amount)
	}
}

func TestParseNoMatch(t *testing.T) {
	for _, text := range []string{"", "大家好", "今天天氣不錯 500"} {
		if cmd := Parse(text); cmd != nil {
			t.Errorf("Parse(%q) = %+v, want nil", text, cmd)
		}
	}
}

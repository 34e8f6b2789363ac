package listfmt

import (
	"context"
	"strings"
	"testing"
)

func newTestFormatter() *Formatter {
	return NewFormatter("") // 無金鑰，地標查詢停用
}

func TestFormatCustomer(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"客戶名稱：王小明", "王小明"},
		{"姓名：陳大文（本人）", "陳大文"},
		{"客戶：林", "林Ms.r"}, // 只有姓氏補稱謂
		{"代表人姓名：張三", "張三"},
		{"沒有姓名欄位", ""},
	}
	for _, tt := range tests {
		if got := formatCustomer(tt.line); got != tt.want {
			t.Errorf("formatCustomer(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"金額：50萬", "50.0萬"},
		{"收款金額：120萬", "120.0萬"},
		{"金額：250,000", "25.0萬"}, // 元轉萬
		{"儲值金額：100公克", "100.0萬"},
		{"30萬元整", "30.0萬"},
		{"沒有金額", ""},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.line); got != tt.want {
			t.Errorf("formatAmount(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"時間：14:30", "14:30"},
		{"時間：下午3點", "15:00"},
		{"預約時間：3點半", "03:30"},
		{"時間：晚上8點15", "20:15"},
		{"上午9點", "09:00"},
		{"沒有時間", ""},
	}
	for _, tt := range tests {
		if got := formatTime(tt.line); got != tt.want {
			t.Errorf("formatTime(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestExtractCityDistrict(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"台北市信義區信義路五段7號", "台北市信義區"},
		{"新北市板橋區文化路", "新北市板橋區"},
		{"高雄市", "高雄市"},
		{"某個沒有縣市的地方", ""},
	}
	for _, tt := range tests {
		if got := extractCityDistrict(tt.address); got != tt.want {
			t.Errorf("extractCityDistrict(%q) = %q, want %q", tt.address, got, tt.want)
		}
	}
}

func TestFormatCompany(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"公司名稱：鴻海精密工業股份有限公司", "鴻海投資"},
		{"公司名稱：台積電", "台積投資"},
		{"公司：宏達國際投資股份有限公司", "宏達投資"},
		{"沒有公司", ""},
	}
	for _, tt := range tests {
		if got := formatCompany(tt.line); got != tt.want {
			t.Errorf("formatCompany(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestValidFormat(t *testing.T) {
	if ValidFormat("太短") {
		t.Error("過短文字不應通過")
	}
	if ValidFormat("這是一段完全無關的長文字內容而已啦") {
		t.Error("無關鍵字不應通過")
	}
	if !ValidFormat("姓名：王小明\n金額：50萬") {
		t.Error("含姓名與金額應通過")
	}
}

func TestFormatFull(t *testing.T) {
	text := `客戶名稱：王小明
預約時間：下午2點半
金額：50萬
交易地點：台北市大安區忠孝東路
公司名稱：宏達國際股份有限公司`

	got := newTestFormatter().Format(context.Background(), text)
	want := "王小明/14:30/50.0萬/台北市大安區/宏達投資"
	if got.FormattedText != want {
		t.Errorf("FormattedText = %q, want %q", got.FormattedText, want)
	}
	if len(got.MissingFields) != 0 {
		t.Errorf("MissingFields = %v, want 空", got.MissingFields)
	}
}

func TestFormatMissingFields(t *testing.T) {
	got := newTestFormatter().Format(context.Background(), "姓名：王小明\n金額：10萬")
	if !strings.Contains(got.FormattedText, "未知") {
		t.Errorf("缺欄位要補未知: %q", got.FormattedText)
	}
	if len(got.MissingFields) != 3 {
		t.Errorf("MissingFields = %v, want 3 個", got.MissingFields)
	}
}

// Package listfmt 解析客戶資訊文字並壓成 姓名/時間/金額/地址/公司 的單行格式。
// 地址若帶常見地標（超商、速食店等）會先打 Google 地理編碼查實際縣市區域
package listfmt

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

// Parsed 解析後的五個欄位，缺的留空
type Parsed struct {
	Customer string
	Amount   string
	Time     string
	Address  string
	Company  string
}

// Result 格式化結果
type Result struct {
	FormattedText string
	MissingFields []string
	Parsed        Parsed
}

type Formatter struct {
	gmaps *maps.Client // 可為 nil，沒金鑰時地標查詢直接跳過
}

func NewFormatter(apiKey string) *Formatter {
	f := &Formatter{}
	if apiKey == "" {
		logrus.Warn("未設定 Google Maps API 金鑰，地標查詢停用")
		return f
	}
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		logrus.WithError(err).Error("初始化 Google Maps 客戶端失敗")
		return f
	}
	f.gmaps = c
	return f
}

// ---------- 客戶姓名 ----------

var customerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`客戶名稱[：:]\s*([^\s\n\(（]+)`),
	regexp.MustCompile(`客戶名字[：:]\s*([^\s\n\(（]+)`),
	regexp.MustCompile(`姓名[：:]\s*([^\s\n\(（]+)`),
	regexp.MustCompile(`代表人姓名[：:]\s*([^\s\n\(（]+)`),
	regexp.MustCompile(`客戶[：:]\s*([^\s\n\(（]+)`),
}

var reParenSuffix = regexp.MustCompile(`[（(].*?[）)]`)

// formatCustomer 取全名，只有姓氏時補 Ms.r 稱謂
func formatCustomer(line string) string {
	for _, p := range customerPatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			name := reParenSuffix.ReplaceAllString(strings.TrimSpace(m[1]), "")
			if utf8.RuneCountInString(name) == 1 {
				return name + "Ms.r"
			}
			return name
		}
	}
	return ""
}

// ---------- 金額 ----------

// 萬/公克 單位的樣式直接取數值，元的樣式除一萬換算
type amountPattern struct {
	re    *regexp.Regexp
	inWan bool
}

var amountPatterns = []amountPattern{
	{regexp.MustCompile(`金額[：:]\s*(\d+)[萬万]`), true},
	{regexp.MustCompile(`預約金額[：:]\s*(\d+)[萬万]`), true},
	{regexp.MustCompile(`收款金額[：:]\s*(\d+)[萬万]`), true},
	{regexp.MustCompile(`存入操作金額[：:]\s*(\d+)[萬万]現金`), true},
	{regexp.MustCompile(`額度[：:]\s*(\d+)[萬万]`), true},
	{regexp.MustCompile(`儲值金額[：:]\s*(\d+)公克`), true},
	{regexp.MustCompile(`現場辦理金額[：:]\s*([\d,]+)`), false},
	{regexp.MustCompile(`存入操作金額[：:]\s*([\d,]+)`), false},
	{regexp.MustCompile(`金額[：:]\s*([\d,]+)`), false},
	{regexp.MustCompile(`收款金額[：:]\s*([\d,]+)`), false},
	{regexp.MustCompile(`歸還信用金[：:]\s*([\d,]+)[萬万]`), true},
	{regexp.MustCompile(`(\d+)[萬万]元整`), true},
	{regexp.MustCompile(`(\d+)[萬万]現金`), true},
	{regexp.MustCompile(`(\d+)[萬万]`), true},
	{regexp.MustCompile(`(\d+)公克`), true},
}

func formatAmount(line string) string {
	for _, p := range amountPatterns {
		if m := p.re.FindStringSubmatch(line); m != nil {
			amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
			if err != nil {
				continue
			}
			if !p.inWan {
				amount /= 10000
			}
			return fmt.Sprintf("%.1f萬", amount)
		}
	}
	return ""
}

// ---------- 時間 ----------

type timePattern struct {
	re   *regexp.Regexp
	half bool
}

var timePatterns = []timePattern{
	{regexp.MustCompile(`時間[：:]\s*(\d{1,2})[：:](\d{2})`), false},
	{regexp.MustCompile(`預約時間[：:]\s*(\d{1,2})[：:](\d{2})`), false},
	{regexp.MustCompile(`時間[：:]\s*(\d{1,2})[點点](\d{1,2})`), false},
	{regexp.MustCompile(`預約時間[：:]\s*(\d{1,2})[點点](\d{1,2})`), false},
	{regexp.MustCompile(`日期時間[：:]\s*.*?(\d{1,2})[點点](\d{1,2})`), false},
	{regexp.MustCompile(`時間[：:]\s*(\d{1,2})[點点]半`), true},
	{regexp.MustCompile(`預約時間[：:]\s*(\d{1,2})[點点]半`), true},
	{regexp.MustCompile(`時間[：:]\s*[下午晚上](\d{1,2})[點点]半`), true},
	{regexp.MustCompile(`時間[：:]\s*[上午早上](\d{1,2})[點点]半`), true},
	{regexp.MustCompile(`時間[：:]\s*(\d{1,2})[點点]`), false},
	{regexp.MustCompile(`預約時間[：:]\s*(\d{1,2})[點点]`), false},
	{regexp.MustCompile(`日期時間[：:]\s*.*?(\d{1,2})[點点]`), false},
	{regexp.MustCompile(`(\d{1,2})[點点](\d{1,2})`), false},
	{regexp.MustCompile(`(\d{1,2})[點点]半`), true},
	{regexp.MustCompile(`(\d{1,2})[：:](\d{2})`), false},
	{regexp.MustCompile(`(\d{1,2})[點点]`), false},
	{regexp.MustCompile(`(\d{1,2})時`), false},
	{regexp.MustCompile(`[下午晚上](\d{1,2})[點点]半`), true},
	{regexp.MustCompile(`[上午早上](\d{1,2})[點点]半`), true},
	{regexp.MustCompile(`[下午晚上](\d{1,2})[點点]`), false},
	{regexp.MustCompile(`[上午早上](\d{1,2})[點点]`), false},
}

// formatTime 轉 24 小時制，下午/晚上的時刻加 12
func formatTime(line string) string {
	isAfternoon := strings.Contains(line, "下午") || strings.Contains(line, "晚上")
	isMorning := strings.Contains(line, "早上") || strings.Contains(line, "上午")

	for _, p := range timePatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		hour, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		minute := 0
		if p.half {
			minute = 30
		} else if len(m) > 2 && m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}

		if isAfternoon && hour < 12 {
			hour += 12
		} else if isMorning && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	return ""
}

// ---------- 地址 ----------

var addressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`預約地點[：:]\s*([^，\n]+)`),
	regexp.MustCompile(`地點[：:]\s*([^，\n]+)`),
	regexp.MustCompile(`交易地點[：:]\s*([^，\n]+)`),
	regexp.MustCompile(`收款地點[：:]\s*([^，\n]+)`),
	regexp.MustCompile(`預約地址[：:]\s*([^，\n]+)`),
	regexp.MustCompile(`收款地址[：:]\s*([^，\n]+)`),
	regexp.MustCompile(`現場辦理地址[：:]\s*([^，\n]+)`),
}

var reCity = regexp.MustCompile(`(台北市|新北市|桃園市|台中市|台南市|高雄市|基隆市|新竹市|嘉義市|新竹縣|苗栗縣|彰化縣|南投縣|雲林縣|嘉義縣|屏東縣|宜蘭縣|花蓮縣|台東縣|澎湖縣|金門縣|連江縣)`)
var reDistrict = regexp.MustCompile(`([^0-9\s，]*?[鄉鎮市區])`)

var landmarkKeywords = []string{
	"7-11", "7-ELEVEN", "全家", "FamilyMart", "萊爾富", "Hi-Life", "麥當勞", "McDonald",
	"KFC", "肯德基", "星巴克", "Starbucks", "85度C", "摩斯漢堡", "MOS", "便利商店",
}

// extractCityDistrict 從完整地址抓出 縣市+鄉鎮市區
func extractCityDistrict(address string) string {
	m := reCity.FindStringSubmatchIndex(address)
	if m == nil {
		return ""
	}
	city := address[m[2]:m[3]]
	rest := address[m[1]:]
	if d := reDistrict.FindStringSubmatch(rest); d != nil {
		return city + d[1]
	}
	return city
}

// lookupLandmark 帶地標關鍵字的地點打地理編碼查實際位置
func (f *Formatter) lookupLandmark(ctx context.Context, text string) string {
	if f.gmaps == nil {
		return ""
	}
	hasLandmark := false
	for _, kw := range landmarkKeywords {
		if strings.Contains(text, kw) {
			hasLandmark = true
			break
		}
	}
	if !hasLandmark {
		return ""
	}

	results, err := f.gmaps.Geocode(ctx, &maps.GeocodingRequest{Address: text, Region: "tw"})
	if err != nil {
		logrus.WithError(err).WithField("landmark", text).Error("地標搜尋失敗")
		return ""
	}
	if len(results) == 0 {
		logrus.WithField("landmark", text).Warn("無法找到地標位置")
		return ""
	}
	return extractCityDistrict(results[0].FormattedAddress)
}

func (f *Formatter) formatAddress(ctx context.Context, line string) string {
	if strings.Contains(line, "公司地址") {
		return ""
	}
	for _, p := range addressPatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			address := strings.TrimSpace(m[1])
			if loc := f.lookupLandmark(ctx, address); loc != "" {
				return loc
			}
			return extractCityDistrict(address)
		}
	}
	return ""
}

// ---------- 公司 ----------

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`公司名稱[：:]\s*([^\n]+)`),
	regexp.MustCompile(`公司[：:]\s*([^\n]+)`),
}

// 長後綴要先剝，免得「投資股份有限公司」剩一個「投資」
var reCompanySuffix = regexp.MustCompile(`(投資股份有限公司|股份有限公司|企業有限公司|投顧企業有限公司|資本有限公司|有限公司).*$`)

// formatCompany 取公司名前兩個字加「投資」
func formatCompany(line string) string {
	for _, p := range companyPatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			name := reCompanySuffix.ReplaceAllString(strings.TrimSpace(m[1]), "")
			runes := []rune(name)
			if len(runes) >= 2 {
				return string(runes[:2]) + "投資"
			}
			if len(runes) == 1 {
				return string(runes) + "投資"
			}
		}
	}
	return ""
}

// ---------- 整合 ----------

// ValidFormat 粗篩：太短或關鍵字太少的訊息不當列表處理
func ValidFormat(text string) bool {
	if len(strings.TrimSpace(text)) < 10 {
		return false
	}
	found := 0
	for _, kw := range []string{"姓名", "金額", "時間", "地址", "公司", "萬", "克", "點"} {
		if strings.Contains(text, kw) {
			found++
		}
	}
	return found >= 2
}

// Parse 逐行解析列表訊息
func (f *Formatter) Parse(ctx context.Context, text string) Parsed {
	var result Parsed
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if containsAny(line, "姓名", "客戶名稱", "客戶：") {
			if v := formatCustomer(line); v != "" {
				result.Customer = v
			}
		}
		if containsAny(line, "金額", "萬", "克", "額度", "收款金額", "儲值金額") {
			if v := formatAmount(line); v != "" {
				result.Amount = v
			}
		}
		if containsAny(line, "時間", "點", "：", ":", "時", "預約時間", "收款時間") {
			if v := formatTime(line); v != "" {
				result.Time = v
			}
		}
		if containsAny(line, "地點", "地址", "交易地點", "收款地點", "預約地址") {
			if v := f.formatAddress(ctx, line); v != "" {
				result.Address = v
			}
		}
		if strings.Contains(line, "公司名稱") && !strings.Contains(line, "地址") {
			if v := formatCompany(line); v != "" {
				result.Company = v
			}
		}
	}
	return result
}

// Format 解析並組出 姓名/時間/金額/地址/公司，缺欄位補「未知」
func (f *Formatter) Format(ctx context.Context, text string) Result {
	parsed := f.Parse(ctx, text)

	var missing []string
	fill := func(field *string, name string) {
		if *field == "" {
			*field = "未知"
			missing = append(missing, name)
		}
	}
	fill(&parsed.Customer, "customer")
	fill(&parsed.Amount, "amount")
	fill(&parsed.Time, "time")
	fill(&parsed.Address, "address")
	fill(&parsed.Company, "company")

	return Result{
		FormattedText: fmt.Sprintf("%s/%s/%s/%s/%s",
			parsed.Customer, parsed.Time, parsed.Amount, parsed.Address, parsed.Company),
		MissingFields: missing,
		Parsed:        parsed,
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

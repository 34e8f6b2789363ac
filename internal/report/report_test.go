package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Jun878787/northsea-bot/internal/models"
	"github.com/Jun878787/northsea-bot/internal/rates"
)

type fakeRates struct {
	tw map[string]float64
	cn map[string]float64
}

func (f *fakeRates) GetRate(date time.Time, currency models.Currency) (float64, bool, error) {
	m := f.tw
	if currency == models.CurrencyCN {
		m = f.cn
	}
	// 往前找最近一筆
	for d := date; d.After(date.AddDate(0, -1, 0)); d = d.AddDate(0, 0, -1) {
		if rate, ok := m[d.Format("01/02")]; ok {
			return rate, true, nil
		}
	}
	return 0, false, nil
}

func day(m, d int) time.Time {
	return time.Date(2026, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func tx(m, d int, userID int64, currency models.Currency, amount float64, kind models.TxKind) models.Transaction {
	return models.Transaction{
		UserID:   userID,
		GroupID:  -100,
		Date:     day(m, d),
		Currency: currency,
		Amount:   amount,
		Kind:     kind,
	}
}

func testResolver(f *fakeRates) *rates.Resolver {
	return rates.NewResolver(f, 30.0, 7.0)
}

func nameOf(int64) string { return "小明" }

func TestGroupReportConvertThenSum(t *testing.T) {
	// 6/1 匯率 30、6/2 匯率 33.5：各日先除當日匯率再相加
	r := testResolver(&fakeRates{
		tw: map[string]float64{"06/01": 30.0, "06/02": 33.5},
		cn: map[string]float64{},
	})
	txs := []models.Transaction{
		tx(6, 1, 1, models.CurrencyTW, 3000, models.KindIncome),
		tx(6, 2, 1, models.CurrencyTW, 3350, models.KindIncome),
	}
	got := Group(txs, "測試群", 2026, time.June, r, nameOf)

	// 3000/30 + 3350/33.5 = 100 + 100 = 200
	if !strings.Contains(got, "NT$6,350 → USDT$200.00") {
		t.Errorf("總業績未逐日換算:\n%s", got)
	}
	if !strings.Contains(got, "06/01 台幣匯率30") || !strings.Contains(got, "06/02 台幣匯率33.5") {
		t.Errorf("缺逐日匯率標頭:\n%s", got)
	}
}

func TestGroupReportIncomeOnly(t *testing.T) {
	r := testResolver(&fakeRates{tw: map[string]float64{}, cn: map[string]float64{}})
	txs := []models.Transaction{
		tx(6, 1, 1, models.CurrencyTW, 1000, models.KindIncome),
		tx(6, 1, 1, models.CurrencyTW, 400, models.KindExpense), // 業績報表不含支出
	}
	got := Group(txs, "測試群", 2026, time.June, r, nameOf)
	if !strings.Contains(got, "NT$1,000") {
		t.Errorf("收入未入帳:\n%s", got)
	}
	if strings.Contains(got, "600") || strings.Contains(got, "400") {
		t.Errorf("支出混入業績:\n%s", got)
	}
}

func TestGroupReportEmpty(t *testing.T) {
	r := testResolver(&fakeRates{tw: map[string]float64{}, cn: map[string]float64{}})
	got := Group(nil, "測試群", 2026, time.June, r, nameOf)
	if !strings.Contains(got, "測試群 2026年6月群組報表") || !strings.Contains(got, "暫無數據") {
		t.Errorf("空報表要有標題與暫無數據:\n%s", got)
	}
}

func TestGroupReportRecoversFromPanic(t *testing.T) {
	r := testResolver(&fakeRates{tw: map[string]float64{}, cn: map[string]float64{}})
	txs := []models.Transaction{
		tx(6, 1, 1, models.CurrencyTW, 100, models.KindIncome),
	}
	got := Group(txs, "測試群", 2026, time.June, r, func(int64) string {
		panic("壞掉的名字查詢")
	})
	if !strings.Contains(got, "報表格式化失敗") {
		t.Errorf("panic 沒有被兜住:\n%s", got)
	}
}

func TestGroupReportDayOrdering(t *testing.T) {
	r := testResolver(&fakeRates{tw: map[string]float64{}, cn: map[string]float64{}})
	txs := []models.Transaction{
		tx(6, 10, 1, models.CurrencyTW, 100, models.KindIncome),
		tx(6, 2, 1, models.CurrencyTW, 100, models.KindIncome),
		tx(6, 1, 1, models.CurrencyTW, 100, models.KindIncome),
	}
	got := Group(txs, "測試群", 2026, time.June, r, nameOf)
	i1 := strings.Index(got, "06/01")
	i2 := strings.Index(got, "06/02")
	i10 := strings.Index(got, "06/10")
	if i1 < 0 || i2 < 0 || i10 < 0 || !(i1 < i2 && i2 < i10) {
		t.Errorf("日期順序錯亂 (%d, %d, %d):\n%s", i1, i2, i10, got)
	}
}

func TestGroupReportFallbackRates(t *testing.T) {
	r := testResolver(&fakeRates{tw: map[string]float64{}, cn: map[string]float64{}})
	txs := []models.Transaction{
		tx(6, 1, 1, models.CurrencyTW, 3000, models.KindIncome),
		tx(6, 1, 1, models.CurrencyCN, 700, models.KindIncome),
	}
	got := Group(txs, "測試群", 2026, time.June, r, nameOf)
	if !strings.Contains(got, "USDT$100.00") {
		t.Errorf("台幣預設匯率 30 未生效:\n%s", got)
	}
	if !strings.Contains(got, "CN¥700 → USDT$100.00") {
		t.Errorf("人民幣預設匯率 7 未生效:\n%s", got)
	}
}

func TestFleetReportGroupsByGroup(t *testing.T) {
	r := testResolver(&fakeRates{tw: map[string]float64{}, cn: map[string]float64{}})
	txs := []models.Transaction{
		{UserID: 1, GroupID: -100, Date: day(6, 1), Currency: models.CurrencyTW, Amount: 1000, Kind: models.KindIncome},
		{UserID: 2, GroupID: -200, Date: day(6, 1), Currency: models.CurrencyTW, Amount: 2000, Kind: models.KindIncome},
	}
	names := map[int64]string{-100: "北金一群", -200: "北金二群"}
	got := Fleet(txs, 2026, time.June, r, func(id int64) string { return names[id] })

	if !strings.Contains(got, FleetTitle+" 2026年6月車隊報表") {
		t.Errorf("車隊標題錯誤:\n%s", got)
	}
	if !strings.Contains(got, "北金一群") || !strings.Contains(got, "北金二群") {
		t.Errorf("缺群組明細行:\n%s", got)
	}
	if !strings.Contains(got, "NT$3,000") {
		t.Errorf("跨群總額錯誤:\n%s", got)
	}
}

func TestFleetReportUnknownGroupName(t *testing.T) {
	r := testResolver(&fakeRates{tw: map[string]float64{}, cn: map[string]float64{}})
	txs := []models.Transaction{
		{GroupID: -300, Date: day(6, 1), Currency: models.CurrencyTW, Amount: 100, Kind: models.KindIncome},
	}
	got := Fleet(txs, 2026, time.June, r, func(int64) string { return "" })
	if !strings.Contains(got, "群組-300") {
		t.Errorf("未知群組要用 群組<id> 代稱:\n%s", got)
	}
}

func TestPersonalReport(t *testing.T) {
	r := testResolver(&fakeRates{tw: map[string]float64{"06/01": 30.0}, cn: map[string]float64{}})
	txs := []models.Transaction{
		tx(6, 1, 1, models.CurrencyTW, 1500, models.KindIncome),
		tx(6, 2, 1, models.CurrencyCN, 70, models.KindIncome),
	}
	got := Personal(txs, "小明", "測試群", r)
	if !strings.Contains(got, "小明個人報表 (測試群)") {
		t.Errorf("標題錯誤:\n%s", got)
	}
	if !strings.Contains(got, "NT$1,500") || !strings.Contains(got, "CN¥70") {
		t.Errorf("缺日明細:\n%s", got)
	}
	// 1500/30 = 50
	if !strings.Contains(got, "USDT$50.00") {
		t.Errorf("台幣換算錯誤:\n%s", got)
	}
}

func TestPersonalReportEmpty(t *testing.T) {
	r := testResolver(&fakeRates{})
	got := Personal(nil, "小明", "測試群", r)
	if !strings.Contains(got, "小明個人報表") || !strings.Contains(got, "本月暫無交易記錄") {
		t.Errorf("空個人報表文案錯誤:\n%s", got)
	}
}

func TestConvertThenSumDiffersFromSumThenConvert(t *testing.T) {
	r := testResolver(&fakeRates{
		tw: map[string]float64{"06/01": 30.0, "06/02": 33.33},
		cn: map[string]float64{},
	})
	buckets := bucketIncome([]models.Transaction{
		tx(6, 1, 1, models.CurrencyTW, 1000, models.KindIncome),
		tx(6, 2, 1, models.CurrencyTW, 1000, models.KindIncome),
	}, func(models.Transaction) string { return "x" })

	_, _, twUSDT, _ := convertThenSum(buckets, r)
	want := 1000.0/30.0 + 1000.0/33.33
	if math.Abs(twUSDT-want) > 1e-9 {
		t.Errorf("convertThenSum = %v, want %v", twUSDT, want)
	}
	naive := 2000.0 / 30.0
	if math.Abs(twUSDT-naive) < 1e-9 {
		t.Errorf("逐日換算不應等於整批單一匯率換算")
	}
}

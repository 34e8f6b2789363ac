package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/Jun878787/northsea-bot/internal/listfmt"
	"github.com/Jun878787/northsea-bot/internal/models"
	"github.com/Jun878787/northsea-bot/internal/normalize"
	"github.com/Jun878787/northsea-bot/internal/parser"
	"github.com/Jun878787/northsea-bot/internal/report"
	"github.com/Jun878787/northsea-bot/internal/timeutil"
)

// bookkeeperSignature 結構化記帳回條上的記帳員落款
const bookkeeperSignature = "北金國際-M8P-Ann"

func chatGroupID(chat *tgbotapi.Chat) int64 {
	if chat.IsGroup() || chat.IsSuperGroup() {
		return chat.ID
	}
	return 0
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil || msg.Text == "" {
		return
	}

	// 看到人就記下來：代記帳與報表顯示名稱都靠這份名單
	b.rememberSender(msg)

	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	text := strings.TrimSpace(msg.Text)

	if cmd := parser.Parse(text); cmd != nil {
		b.dispatchCommand(msg, cmd)
		return
	}

	switch {
	case text == "📝選單":
		b.replyWithKeyboard(msg.Chat.ID, mainMenuText, mainMenuKeyboard())
	case text == "📊出款報表":
		b.replyWithKeyboard(msg.Chat.ID, payoutMenuText, payoutReportKeyboard())
	case text == "列表":
		b.handleListFormat(msg)
	case text == "車隊報表":
		b.handleFleetReportText(msg)
	case text == "用戶列表" || text == "查看用戶":
		b.handleUserList(msg)
	case strings.HasPrefix(text, "查找用戶"):
		b.handleFindUser(msg, text)
	case text == "匯出報表":
		b.handleExport(msg)
	default:
		if reply, ok := stubReply(text); ok {
			b.reply(msg.Chat.ID, reply)
			return
		}
		// 清空報表對話進行中的話，這則就是日期或確認輸入
		b.continueClearFlow(msg, text)
	}
}

func (b *Bot) rememberSender(msg *tgbotapi.Message) {
	u := &models.User{
		UserID:      msg.From.ID,
		Username:    msg.From.UserName,
		DisplayName: strings.TrimSpace(msg.From.FirstName + " " + msg.From.LastName),
		FirstName:   msg.From.FirstName,
		LastName:    msg.From.LastName,
	}
	if err := b.store.UpsertUser(u); err != nil {
		logrus.WithError(err).Warn("記錄用戶失敗")
	}

	if gid := chatGroupID(msg.Chat); gid != 0 && msg.Chat.Title != "" {
		if err := b.store.UpsertGroup(gid, msg.Chat.Title); err != nil {
			logrus.WithError(err).Warn("記錄群組失敗")
		}
	}
}

// displayName 報表顯示用的名稱查詢，查不到時退回 User<id>
func (b *Bot) displayName(userID int64) string {
	u, err := b.store.FindUser(userID)
	if err != nil || u == nil {
		return fmt.Sprintf("User%d", userID)
	}
	return u.DisplayOrFallback()
}

// ---------- 指令分派 ----------

func (b *Bot) dispatchCommand(msg *tgbotapi.Message, cmd parser.Command) {
	switch c := cmd.(type) {
	case parser.Record:
		b.handleRecord(msg, c)
	case parser.Transaction:
		b.handleTransaction(msg, c)
	case parser.FundAdjust:
		b.handleFund(msg, c)
	case parser.SetRate:
		b.handleSetRate(msg, c)
	case parser.RateHelp:
		b.reply(msg.Chat.ID, rateHelpText)
	case parser.DeleteEntry:
		b.handleDeleteEntry(msg, c)
	case parser.DeleteMonth:
		b.handleDeleteMonth(msg, c)
	case parser.DeleteHelp:
		b.reply(msg.Chat.ID, deleteHelpText)
	}
}

// stubReply 選單上列出但尚未完成的功能回固定的開發中提示，
// 不能放進清空對話的 fall-through 變成無聲
func stubReply(text string) (string, bool) {
	switch {
	case strings.HasPrefix(text, "使用者設定"):
		return "🚧 用戶設定功能開發中...", true
	case strings.HasPrefix(text, "歡迎詞設定"):
		return "🚧 歡迎設定功能開發中...", true
	case text == "初始化報表":
		return "🚧 初始化報表功能開發中...", true
	}
	return "", false
}

// resolveTarget @用戶名 解析成記帳對象，找不到時記到發話人名下
func (b *Bot) resolveTarget(mention string, senderID int64) (int64, bool) {
	if mention == "" {
		return senderID, false
	}
	target, err := b.store.FindUserByUsername(mention)
	if err != nil || target == nil {
		logrus.WithField("username", mention).Warn("被@的用戶不在名單中，記到發話人名下")
		return senderID, false
	}
	return target.UserID, true
}

func (b *Bot) handleTransaction(msg *tgbotapi.Message, c parser.Transaction) {
	if err := normalize.ValidateAmount(c.Amount); err != nil {
		b.reply(msg.Chat.ID, "❌ "+err.Error())
		return
	}

	targetID, isProxy := b.resolveTarget(c.Mention, msg.From.ID)
	tx := &models.Transaction{
		UserID:    targetID,
		GroupID:   chatGroupID(msg.Chat),
		Date:      c.Date,
		Currency:  c.Currency,
		Amount:    c.Amount,
		Kind:      c.Kind,
		CreatedBy: msg.From.ID,
	}
	if err := b.store.AddTransaction(tx); err != nil {
		logrus.WithError(err).Error("寫入交易失敗")
		b.reply(msg.Chat.ID, "❌ 記帳失敗，請稍後再試")
		return
	}

	currencyIcon := "💰"
	if c.Currency == models.CurrencyCN {
		currencyIcon = "💴"
	}
	sign := "+"
	if c.Kind == models.KindExpense {
		sign = "-"
	}
	var display string
	switch {
	case isProxy:
		display = "@" + c.Mention
	case msg.From.UserName != "":
		display = "@" + msg.From.UserName
	case msg.From.FirstName != "":
		display = msg.From.FirstName
	default:
		display = fmt.Sprintf("User%d", msg.From.ID)
	}

	b.reply(msg.Chat.ID, fmt.Sprintf(`✅ 記帳成功

%s %s%s%s
📅 日期: %s
👤 用戶: %s`,
		currencyIcon, c.Currency, sign, comma(c.Amount),
		c.Date.Format("01/02"), display))
}

func (b *Bot) handleRecord(msg *tgbotapi.Message, c parser.Record) {
	targetID, isProxy := b.resolveTarget(c.Mention, msg.From.ID)

	payerName := c.PayerName
	if payerName == "未指定" {
		switch {
		case isProxy:
			payerName = "@" + c.Mention
		case msg.From.UserName != "":
			payerName = "@" + msg.From.UserName
		default:
			payerName = b.displayName(msg.From.ID)
		}
	}

	txDate := c.Date
	if txDate.IsZero() {
		txDate = timeutil.Today()
	}
	kind := models.KindIncome
	if c.Amount < 0 {
		kind = models.KindExpense
	}
	amount := float64(c.Amount)
	if amount < 0 {
		amount = -amount
	}

	memo := fmt.Sprintf("出款人: %s | 項目: %s | 銀行: %s", payerName, c.Item, c.Bank)
	if isProxy {
		memo += " | 代記帳"
	}

	groupID := chatGroupID(msg.Chat)
	tx := &models.Transaction{
		UserID:    targetID,
		GroupID:   groupID,
		Date:      txDate,
		Currency:  models.CurrencyTW,
		Amount:    amount,
		Kind:      kind,
		CreatedBy: msg.From.ID,
		Memo:      memo,
	}
	if err := b.store.AddTransaction(tx); err != nil {
		logrus.WithError(err).Error("寫入結構化記帳失敗")
		b.reply(msg.Chat.ID, "❌ 記帳失敗，請稍後再試")
		return
	}

	dailyTotal, err := b.store.NetTotal(groupID, txDate, txDate.AddDate(0, 0, 1))
	if err != nil {
		logrus.WithError(err).Warn("計算今日總計失敗")
	}
	monthStart := time.Date(txDate.Year(), txDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthlyTotal, err := b.store.NetTotal(groupID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		logrus.WithError(err).Warn("計算本月總計失敗")
	}

	b.reply(msg.Chat.ID, fmt.Sprintf(`已經收到代記帳紀錄！

%s (%s)
出款人：%s 金額：%s
記帳員：%s

📊 今日總計：%s
📊 本月總計：%s`,
		txDate.Format("2006/01/02"), timeutil.WeekdayChinese(txDate),
		payerName, comma(float64(c.Amount)),
		bookkeeperSignature,
		comma(dailyTotal), comma(monthlyTotal)))
}

func (b *Bot) handleFund(msg *tgbotapi.Message, c parser.FundAdjust) {
	if err := normalize.ValidateAmount(c.Amount); err != nil {
		b.reply(msg.Chat.ID, "❌ "+err.Error())
		return
	}

	delta := c.Amount
	if c.Op == models.KindExpense {
		delta = -delta
	}
	balance, err := b.store.AdjustFund(c.Kind, models.CurrencyTW, chatGroupID(msg.Chat), delta, msg.From.ID)
	if err != nil {
		logrus.WithError(err).Error("資金調整失敗")
		b.reply(msg.Chat.ID, "❌ 資金操作失敗")
		return
	}

	opText := "增加"
	if c.Op == models.KindExpense {
		opText = "減少"
	}
	b.reply(msg.Chat.ID, fmt.Sprintf(`✅ <b>%s資金%s成功</b>

💰 %s金額: %s
💳 當前餘額: %s
👤 操作人員: %s`,
		c.Kind.Name(), opText, opText, comma(c.Amount), comma(balance), msg.From.FirstName))
}

func (b *Bot) handleSetRate(msg *tgbotapi.Message, c parser.SetRate) {
	if err := normalize.ValidateRate(c.Rate); err != nil {
		b.reply(msg.Chat.ID, "❌ "+err.Error())
		return
	}

	d := c.Date
	if d.IsZero() {
		d = timeutil.Today()
	}
	if err := b.store.SetRate(d, c.Currency, c.Rate, msg.From.ID); err != nil {
		logrus.WithError(err).Error("設定匯率失敗")
		b.reply(msg.Chat.ID, "❌ 匯率設定失敗")
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("✅ %s匯率設定成功\n日期: %s\n匯率: %v",
		c.Currency.Name(), d.Format("2006-01-02"), c.Rate))
}

func (b *Bot) handleDeleteEntry(msg *tgbotapi.Message, c parser.DeleteEntry) {
	deleted, err := b.store.DeleteTransaction(msg.From.ID, chatGroupID(msg.Chat), c.Date, c.Currency, c.Amount)
	if err != nil {
		logrus.WithError(err).Error("刪除記錄失敗")
		b.reply(msg.Chat.ID, "❌ 刪除指令處理錯誤")
		return
	}
	if deleted == 0 {
		b.reply(msg.Chat.ID, "❌ 找不到符合條件的記錄")
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf(`✅ <b>刪除記錄成功</b>

📅 日期: %s
💰 幣別: %s
💵 金額: %s
👤 操作人: %s`,
		c.Date.Format("01/02"), c.Currency.Name(), comma(c.Amount), msg.From.FirstName))
}

func (b *Bot) handleDeleteMonth(msg *tgbotapi.Message, c parser.DeleteMonth) {
	year := timeutil.Now().Year()
	deleted, err := b.store.DeleteMonth(msg.From.ID, chatGroupID(msg.Chat), year, c.Month, c.Currency)
	if err != nil {
		logrus.WithError(err).Error("刪除月份記錄失敗")
		b.reply(msg.Chat.ID, "❌ 刪除指令處理錯誤")
		return
	}
	if deleted == 0 {
		b.reply(msg.Chat.ID, "❌ 該月份沒有找到記錄")
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf(`✅ <b>刪除月份記錄成功</b>

📅 月份: %d年%d月
💰 幣別: %s
👤 操作人: %s

⚠️ 該月份的所有%s記錄已被刪除`,
		year, c.Month, c.Currency.Name(), msg.From.FirstName, c.Currency.Name()))
}

// ---------- 文字功能 ----------

func (b *Bot) handleListFormat(msg *tgbotapi.Message) {
	if msg.ReplyToMessage == nil {
		b.reply(msg.Chat.ID, listUsageText)
		return
	}

	original := msg.ReplyToMessage.Text
	if original == "" {
		original = msg.ReplyToMessage.Caption
	}
	if original == "" {
		b.reply(msg.Chat.ID, "❌ 請回覆包含文字內容的訊息並輸入「列表」")
		return
	}

	if !listfmt.ValidFormat(original) {
		b.reply(msg.Chat.ID, "❌ 無法識別列表格式，請確保訊息包含必要資訊\n\n需要包含: 客戶姓名、金額、時間、地址、公司等資訊")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result := b.lists.Format(ctx, original)
	b.reply(msg.Chat.ID, result.FormattedText)
}

func (b *Bot) handleFleetReportText(msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, "❌ 您沒有權限執行此操作")
		return
	}
	b.reply(msg.Chat.ID, b.buildFleetReport())
}

func (b *Bot) buildFleetReport() string {
	txs, err := b.store.AllGroupsTransactions()
	if err != nil {
		logrus.WithError(err).Error("讀取車隊交易失敗")
		return "❌ 車隊報表生成失敗"
	}
	now := timeutil.Now()
	txs = filterMonth(txs, now.Year(), now.Month())
	return report.Fleet(txs, now.Year(), now.Month(), b.rates, func(groupID int64) string {
		name, err := b.store.GroupName(groupID)
		if err != nil {
			return ""
		}
		return name
	})
}

func (b *Bot) handleUserList(msg *tgbotapi.Message) {
	users, err := b.store.ListUsers()
	if err != nil {
		logrus.WithError(err).Error("讀取用戶列表失敗")
		b.reply(msg.Chat.ID, "❌ 獲取用戶列表失敗")
		return
	}
	if len(users) == 0 {
		b.reply(msg.Chat.ID, "📝 資料庫中暫無用戶記錄")
		return
	}

	var sb strings.Builder
	sb.WriteString("👥 <b>用戶列表</b>\n\n")
	for i, u := range users {
		username := u.Username
		if username == "" {
			username = "未設定"
		}
		firstName := u.FirstName
		if firstName == "" {
			firstName = "未設定"
		}
		fmt.Fprintf(&sb, "%d. <code>@%s</code>\n   名稱: %s\n   加入: %s\n\n",
			i+1, username, firstName, u.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(&sb, "📊 總計: %d 位用戶", len(users))
	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) handleFindUser(msg *tgbotapi.Message, text string) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		b.reply(msg.Chat.ID, "❓ 請指定要查找的用戶名\n\n格式: <code>查找用戶 @M8-N3</code>")
		return
	}

	username := strings.TrimPrefix(parts[1], "@")
	u, err := b.store.FindUserByUsername(username)
	if err != nil {
		logrus.WithError(err).Error("查找用戶失敗")
		b.reply(msg.Chat.ID, "❌ 查找用戶失敗")
		return
	}
	if u == nil {
		b.reply(msg.Chat.ID, fmt.Sprintf("❌ 找不到用戶: @%s", username))
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf(`👤 <b>用戶資訊</b>

🆔 用戶ID: <code>%d</code>
👤 用戶名: <code>@%s</code>
📝 顯示名: %s
👋 名字: %s
📅 加入時間: %s`,
		u.UserID, orDefault(u.Username, "未設定"), orDefault(u.DisplayName, "未設定"),
		orDefault(u.FirstName, "未設定"), u.CreatedAt.Format("2006-01-02")))
}

func (b *Bot) handleExport(msg *tgbotapi.Message) {
	groupID := chatGroupID(msg.Chat)

	// 匯出範圍是當月，不是整份歷史
	now := timeutil.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	txs, err := b.store.GroupTransactionsRange(groupID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		logrus.WithError(err).Error("讀取交易失敗")
		b.reply(msg.Chat.ID, "❌ 匯出報表失敗")
		return
	}
	if len(txs) == 0 {
		b.reply(msg.Chat.ID, "📝 暫無交易記錄可匯出")
		return
	}

	groupName := msg.Chat.Title
	if groupName == "" {
		groupName = "個人"
	}
	data, filename, err := report.ExportXLSX(txs, groupName, b.displayName)
	if err != nil {
		logrus.WithError(err).Error("產生 XLSX 失敗")
		b.reply(msg.Chat.ID, "❌ 匯出報表失敗")
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = "📥 交易明細匯出"
	if _, err := b.api.Send(doc); err != nil {
		logrus.WithError(err).Error("上傳報表檔案失敗")
		b.reply(msg.Chat.ID, "❌ 匯出報表失敗")
	}
}

// ---------- 小工具 ----------

func filterMonth(txs []models.Transaction, year int, month time.Month) []models.Transaction {
	out := txs[:0:0]
	for _, tx := range txs {
		if tx.Date.Year() == year && tx.Date.Month() == month {
			out = append(out, tx)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func comma(f float64) string {
	return report.Comma0(f)
}

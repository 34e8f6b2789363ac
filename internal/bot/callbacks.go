package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/Jun878787/northsea-bot/internal/models"
	"github.com/Jun878787/northsea-bot/internal/report"
	"github.com/Jun878787/northsea-bot/internal/state"
	"github.com/Jun878787/northsea-bot/internal/timeutil"
)

func (b *Bot) handleCallback(q *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		logrus.WithError(err).Warn("回應 callback 失敗")
	}
	if q.Message == nil {
		return
	}

	chatID := q.Message.Chat.ID
	messageID := q.Message.MessageID

	if strings.HasPrefix(q.Data, cbMonthPrefix) {
		b.showHistoryMonth(q, strings.TrimPrefix(q.Data, cbMonthPrefix))
		return
	}

	switch q.Data {
	case cbMainMenu:
		b.edit(chatID, messageID, mainMenuText, mainMenuKeyboard())
	case cbMoneyActions:
		b.edit(chatID, messageID, moneyActionsText, moneyActionsKeyboard())
	case cbReportDisplay:
		b.edit(chatID, messageID, reportDisplayText, reportDisplayKeyboard())
	case cbSettingsMenu:
		b.edit(chatID, messageID, settingsMenuText, settingsMenuKeyboard())
	case cbCommandHelp:
		b.edit(chatID, messageID, commandHelpText, commandHelpKeyboard())

	case cbPersonalReport:
		b.showPersonalReport(q)
	case cbGroupReport:
		b.showGroupReport(q)
	case cbFleetReport:
		b.edit(chatID, messageID, b.buildFleetReport(), reportDisplayKeyboard())
	case cbHistoryReport:
		b.edit(chatID, messageID, "📚 <b>歷史報表查詢</b>\n\n請選擇要查詢的月份：", monthSelectionKeyboard())
	case cbExportReport:
		b.handleExport(q.Message)

	case cbPayoutDaily:
		b.showDailyPayout(q)
	case cbPayoutMonthly:
		b.showMonthlyPayout(q)

	case cbRateInfo:
		b.showRateInfo(q)

	case cbCurrencyTW:
		b.edit(chatID, messageID, twHelpText, backToMoneyActionsKeyboard())
	case cbCurrencyCN:
		b.edit(chatID, messageID, cnHelpText, backToMoneyActionsKeyboard())
	case cbFundPublic:
		b.showFundHelp(q, models.FundPublic, publicFundHelpFmt)
	case cbFundPrivate:
		b.showFundHelp(q, models.FundPrivate, privateFundHelpFmt)

	case cbHelpOwner:
		b.edit(chatID, messageID, ownerHelpText, commandHelpKeyboard())
	case cbHelpAdmin:
		b.edit(chatID, messageID, adminHelpText, commandHelpKeyboard())
	case cbHelpOperator:
		b.edit(chatID, messageID, operatorHelpText, commandHelpKeyboard())

	case cbClearReports:
		b.edit(chatID, messageID, clearReportsMenuText, clearReportsKeyboard())
	case cbClearPersonal:
		b.beginClearFlow(q, state.ClearPersonal)
	case cbClearGroup:
		b.beginClearFlow(q, state.ClearGroup)
	case cbClearFleet:
		b.beginClearFlow(q, state.ClearFleet)

	default:
		b.edit(chatID, messageID, "❌ 未知的操作", mainMenuKeyboard())
	}
}

// showHistoryMonth 顯示今年指定月份的個人報表
func (b *Bot) showHistoryMonth(q *tgbotapi.CallbackQuery, monthStr string) {
	chatID := q.Message.Chat.ID
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		b.edit(chatID, q.Message.MessageID, "❌ 月份報表生成失敗", mainMenuKeyboard())
		return
	}

	groupID := chatGroupID(q.Message.Chat)
	txs, err := b.store.UserTransactions(q.From.ID, groupID)
	if err != nil {
		logrus.WithError(err).Error("讀取歷史交易失敗")
		b.edit(chatID, q.Message.MessageID, "❌ 月份報表生成失敗", mainMenuKeyboard())
		return
	}

	txs = filterMonth(txs, timeutil.Now().Year(), time.Month(month))
	groupName := q.Message.Chat.Title
	if groupName == "" {
		groupName = "私聊"
	}
	text := report.Personal(txs, b.displayName(q.From.ID), groupName, b.rates)
	b.edit(chatID, q.Message.MessageID, text, monthSelectionKeyboard())
}

func (b *Bot) showPersonalReport(q *tgbotapi.CallbackQuery) {
	chatID := q.Message.Chat.ID
	groupID := chatGroupID(q.Message.Chat)

	txs, err := b.store.UserTransactions(q.From.ID, groupID)
	if err != nil {
		logrus.WithError(err).Error("讀取個人交易失敗")
		b.edit(chatID, q.Message.MessageID, "❌ 個人報表生成失敗", reportDisplayKeyboard())
		return
	}

	now := timeutil.Now()
	txs = filterMonth(txs, now.Year(), now.Month())
	groupName := q.Message.Chat.Title
	if groupName == "" {
		groupName = "私聊"
	}
	text := report.Personal(txs, b.displayName(q.From.ID), groupName, b.rates)
	b.edit(chatID, q.Message.MessageID, text, reportDisplayKeyboard())
}

func (b *Bot) showGroupReport(q *tgbotapi.CallbackQuery) {
	chatID := q.Message.Chat.ID
	groupID := chatGroupID(q.Message.Chat)

	txs, err := b.store.GroupTransactions(groupID)
	if err != nil {
		logrus.WithError(err).Error("讀取群組交易失敗")
		b.edit(chatID, q.Message.MessageID, "❌ 群組報表生成失敗", reportDisplayKeyboard())
		return
	}

	now := timeutil.Now()
	txs = filterMonth(txs, now.Year(), now.Month())
	groupName := q.Message.Chat.Title
	if groupName == "" {
		groupName = "私聊"
	}
	text := report.Group(txs, groupName, now.Year(), now.Month(), b.rates, b.displayName)
	b.edit(chatID, q.Message.MessageID, text, reportDisplayKeyboard())
}

func (b *Bot) showDailyPayout(q *tgbotapi.CallbackQuery) {
	chatID := q.Message.Chat.ID
	groupID := chatGroupID(q.Message.Chat)

	today := timeutil.Today()
	txs, err := b.store.GroupTransactionsRange(groupID, today, today.AddDate(0, 0, 1))
	if err != nil {
		logrus.WithError(err).Error("讀取當日交易失敗")
		b.edit(chatID, q.Message.MessageID, "❌ 當日報表生成失敗", payoutReportKeyboard())
		return
	}

	text := report.DailyPayout(txs, today, b.displayName)
	b.edit(chatID, q.Message.MessageID, text, payoutReportKeyboard())
}

func (b *Bot) showMonthlyPayout(q *tgbotapi.CallbackQuery) {
	chatID := q.Message.Chat.ID
	groupID := chatGroupID(q.Message.Chat)

	now := timeutil.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	txs, err := b.store.GroupTransactionsRange(groupID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		logrus.WithError(err).Error("讀取當月交易失敗")
		b.edit(chatID, q.Message.MessageID, "❌ 當月報表生成失敗", payoutReportKeyboard())
		return
	}

	text := report.MonthlyPayout(txs, now, b.rates)
	b.edit(chatID, q.Message.MessageID, text, payoutReportKeyboard())
}

func (b *Bot) showRateInfo(q *tgbotapi.CallbackQuery) {
	today := timeutil.Today()
	twRate, cnRate := b.rates.Pair(today)

	twText := fmt.Sprintf("台幣匯率: %.2f", twRate)
	if _, ok, err := b.store.GetRate(today, models.CurrencyTW); err == nil && !ok {
		twText = "台幣匯率: 未設定 (預設值)"
	}
	cnText := fmt.Sprintf("人民幣匯率: %.2f", cnRate)
	if _, ok, err := b.store.GetRate(today, models.CurrencyCN); err == nil && !ok {
		cnText = fmt.Sprintf("人民幣匯率: %.2f (預設值)", cnRate)
	}

	text := fmt.Sprintf(`💱 <b>當前匯率資訊</b>

📅 查詢日期: %s

💰 %s
💴 %s

💡 <b>設置匯率指令:</b>
• 設定匯率30.5 (設定台幣匯率)
• 設定06/01匯率30.2 (設定指定日期台幣匯率)
• 設定CN匯率7.2 (設定人民幣匯率)
• 設定06/01CN匯率7.1 (設定指定日期人民幣匯率)

⚠️ 匯率設定需要管理員權限`, today.Format("2006/01/02"), twText, cnText)

	b.edit(q.Message.Chat.ID, q.Message.MessageID, text, settingsMenuKeyboard())
}

func (b *Bot) showFundHelp(q *tgbotapi.CallbackQuery, kind models.FundKind, format string) {
	balance, err := b.store.FundBalance(kind, models.CurrencyTW, chatGroupID(q.Message.Chat))
	if err != nil {
		logrus.WithError(err).Warn("查詢資金餘額失敗")
	}
	text := fmt.Sprintf(format, report.Comma0(balance))
	b.edit(q.Message.Chat.ID, q.Message.MessageID, text, backToMoneyActionsKeyboard())
}

func (b *Bot) beginClearFlow(q *tgbotapi.CallbackQuery, action state.Action) {
	b.states.Begin(q.From.ID, state.Clearing{
		Action:  action,
		Step:    state.StepAwaitingDate,
		GroupID: chatGroupID(q.Message.Chat),
	})

	text := fmt.Sprintf(clearDatePromptFmt, action.Name())
	b.edit(q.Message.Chat.ID, q.Message.MessageID, text, backToClearReportsKeyboard())
}

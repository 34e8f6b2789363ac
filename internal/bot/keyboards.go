package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// callback data 常數，選單按鈕與路由共用
const (
	cbMainMenu      = "main_menu"
	cbMoneyActions  = "money_actions"
	cbReportDisplay = "report_display"
	cbSettingsMenu  = "settings_menu"
	cbCommandHelp   = "command_help"

	cbPersonalReport = "personal_report"
	cbGroupReport    = "group_report"
	cbFleetReport    = "fleet_report"
	cbHistoryReport  = "history_report"
	cbExportReport   = "export_report"
	cbMonthPrefix    = "month_" // month_01 .. month_12

	cbPayoutDaily   = "payout_daily"
	cbPayoutMonthly = "payout_monthly"

	cbRateInfo = "current_exchange_rates"

	cbClearReports  = "clear_reports"
	cbClearPersonal = "clear_personal"
	cbClearGroup    = "clear_group"
	cbClearFleet    = "clear_fleet"

	cbCurrencyTW   = "currency_tw"
	cbCurrencyCN   = "currency_cn"
	cbFundPublic   = "fund_public"
	cbFundPrivate  = "fund_private"
	cbHelpOwner    = "help_owner"
	cbHelpAdmin    = "help_admin"
	cbHelpOperator = "help_operator"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰金額異動", cbMoneyActions),
			tgbotapi.NewInlineKeyboardButtonData("📊報表顯示", cbReportDisplay),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔣指令說明", cbCommandHelp),
			tgbotapi.NewInlineKeyboardButtonData("⚙️設置選單", cbSettingsMenu),
		),
	)
}

// currencyKeyboard 常駐的快速操作鍵盤
func currencyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("💰TW"),
			tgbotapi.NewKeyboardButton("💰CN"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("💵公桶"),
			tgbotapi.NewKeyboardButton("💵私人"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📝選單"),
			tgbotapi.NewKeyboardButton("📊出款報表"),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func moneyActionsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰台幣", cbCurrencyTW),
			tgbotapi.NewInlineKeyboardButtonData("💰人民幣", cbCurrencyCN),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💵公桶", cbFundPublic),
			tgbotapi.NewInlineKeyboardButtonData("💵私人", cbFundPrivate),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️返回主選單", cbMainMenu),
		),
	)
}

func commandHelpKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("1️⃣群主", cbHelpOwner),
			tgbotapi.NewInlineKeyboardButtonData("2️⃣管理員", cbHelpAdmin),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("3️⃣操作員", cbHelpOperator),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️返回主選單", cbMainMenu),
		),
	)
}

func backToMoneyActionsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙返回金額異動", cbMoneyActions),
		),
	)
}

func reportDisplayKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊個人報表", cbPersonalReport),
			tgbotapi.NewInlineKeyboardButtonData("📊組別報表", cbGroupReport),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊車隊報表", cbFleetReport),
			tgbotapi.NewInlineKeyboardButtonData("📚歷史報表", cbHistoryReport),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📥匯出報表", cbExportReport),
			tgbotapi.NewInlineKeyboardButtonData("💱匯率資訊", cbRateInfo),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️返回主選單", cbMainMenu),
		),
	)
}

// monthSelectionKeyboard 歷史報表的月份選擇，每列三個月
func monthSelectionKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for m := 1; m <= 12; m += 3 {
		var row []tgbotapi.InlineKeyboardButton
		for j := m; j < m+3; j++ {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%d月", j), fmt.Sprintf("%s%02d", cbMonthPrefix, j)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙返回", cbReportDisplay)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func settingsMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💱匯率資訊", cbRateInfo),
			tgbotapi.NewInlineKeyboardButtonData("🚯清空報表", cbClearReports),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️返回主選單", cbMainMenu),
		),
	)
}

func clearReportsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚯清空個人報表", cbClearPersonal),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚯清空組別報表", cbClearGroup),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚯清空車隊總表", cbClearFleet),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️返回設置選單", cbSettingsMenu),
		),
	)
}

func payoutReportKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅當日報表", cbPayoutDaily),
			tgbotapi.NewInlineKeyboardButtonData("📊當月報表", cbPayoutMonthly),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙返回主選單", cbMainMenu),
		),
	)
}

func backToClearReportsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙返回清空報表", cbClearReports),
		),
	)
}

package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(msg)
	case "help":
		b.replyWithKeyboard(msg.Chat.ID, helpText, mainMenuKeyboard())
	case "restart":
		b.handleRestart(msg)
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	b.replyWithKeyboard(msg.Chat.ID, fmt.Sprintf(welcomeTextFmt, msg.From.FirstName), mainMenuKeyboard())
	b.replyWithKeyboard(msg.Chat.ID, "🎯 快速操作鍵盤已啟用", currencyKeyboard())
}

func (b *Bot) handleRestart(msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.replyWithKeyboard(msg.Chat.ID, "❌ 您沒有權限執行此操作", mainMenuKeyboard())
		return
	}

	b.reply(msg.Chat.ID, "🔄 系統刷新中...")

	// 丟掉進行中的對話狀態，資料庫連線由連線池自理
	b.states.Reset()
	logrus.Info("系統刷新完成")

	b.reply(msg.Chat.ID, "✅ <b>系統刷新完成</b>\n\n🚀 所有功能已恢復正常\n📊 繼續提供記帳服務")
}

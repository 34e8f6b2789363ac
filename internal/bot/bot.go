package bot

import (
	"fmt"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/Jun878787/northsea-bot/internal/config"
	"github.com/Jun878787/northsea-bot/internal/listfmt"
	"github.com/Jun878787/northsea-bot/internal/rates"
	"github.com/Jun878787/northsea-bot/internal/state"
	"github.com/Jun878787/northsea-bot/internal/store"
)

// Bot 北金管家：把 Telegram 更新接到帳本邏輯上
type Bot struct {
	api    *tgbotapi.BotAPI
	cfg    *config.Config
	store  store.Store
	rates  *rates.Resolver
	states *state.Manager
	lists  *listfmt.Formatter
}

func New(cfg *config.Config, s store.Store, r *rates.Resolver) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("連接 Telegram 失敗: %w", err)
	}
	logrus.WithField("username", api.Self.UserName).Info("Telegram bot 已連線")

	return &Bot{
		api:    api,
		cfg:    cfg,
		store:  s,
		rates:  r,
		states: state.NewManager(state.DefaultTTL),
		lists:  listfmt.NewFormatter(cfg.MapsKey),
	}, nil
}

// Run 以長輪詢收更新，阻塞直到更新通道關閉
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	logrus.Info("開始接收更新（長輪詢）")
	for update := range updates {
		b.ProcessUpdate(update)
	}
}

// ProcessUpdate 處理單一更新。任何 handler panic 都在這裡收掉，
// 一則壞訊息不能把整個輪詢迴圈帶下去
func (b *Bot) ProcessUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("處理更新時 panic")
			if chatID := updateChatID(update); chatID != 0 {
				b.reply(chatID, "❌ 操作失敗，請稍後再試")
			}
		}
	}()

	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

func updateChatID(update tgbotapi.Update) int64 {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}

// reply 發送 HTML 模式的回覆
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		logrus.WithError(err).Error("發送訊息失敗")
	}
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, kb interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		logrus.WithError(err).Error("發送訊息失敗")
	}
}

// edit 以 HTML 模式改寫 callback 來源訊息
func (b *Bot) edit(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		logrus.WithError(err).Error("編輯訊息失敗")
	}
}

// isAdmin 管理員名單有設定時照名單，沒設定時放行（交給群組權限）
func (b *Bot) isAdmin(userID int64) bool {
	ids := b.cfg.AdminIDs()
	if len(ids) == 0 {
		return true
	}
	for _, id := range ids {
		if id == userID {
			return true
		}
	}
	return false
}

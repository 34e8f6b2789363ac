package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Jun878787/northsea-bot/internal/router"
)

// RunWebhook 向 Telegram 註冊 webhook 並啟動 HTTP 伺服器，阻塞直到伺服器結束。
// 路徑沒設定時用隨機 UUID，路徑本身就當成一層弱驗證
func (b *Bot) RunWebhook() error {
	path := b.cfg.Webhook.Path
	if path == "" {
		path = "/webhook/" + uuid.NewString()
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	publicURL := strings.TrimSuffix(b.cfg.Webhook.PublicURL, "/")
	if publicURL == "" {
		return fmt.Errorf("webhook 模式需要 public_url（RAILWAY_PUBLIC_DOMAIN）")
	}
	if !strings.HasPrefix(publicURL, "http") {
		publicURL = "https://" + publicURL
	}

	// WebhookConfig 沒有 secret_token 欄位，直接呼叫 setWebhook
	params := tgbotapi.Params{"url": publicURL + path}
	if b.cfg.Webhook.Secret != "" {
		params["secret_token"] = b.cfg.Webhook.Secret
	}
	if _, err := b.api.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("註冊 webhook 失敗: %w", err)
	}

	info, err := b.api.GetWebhookInfo()
	if err == nil && info.LastErrorDate != 0 {
		logrus.WithField("error", info.LastErrorMessage).Warn("Telegram 回報 webhook 曾出錯")
	}

	r := router.SetupRouter(b.cfg, b, path)
	addr := fmt.Sprintf(":%d", b.cfg.Webhook.Port)
	logrus.WithFields(logrus.Fields{"addr": addr, "path": path}).Info("開始接收更新（webhook）")
	return r.Run(addr)
}

package handler

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UpdateProcessor 消化一則 Telegram 更新，bot.Bot 實作這個介面
type UpdateProcessor interface {
	ProcessUpdate(update tgbotapi.Update)
}

// Webhook 接收 Telegram 推送的更新。
// 一律回 200：回錯誤碼 Telegram 會不斷重送同一則更新
func Webhook(p UpdateProcessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			logrus.WithError(err).Warn("webhook 更新解析失敗")
			c.Status(http.StatusOK)
			return
		}

		p.ProcessUpdate(update)
		c.Status(http.StatusOK)
	}
}

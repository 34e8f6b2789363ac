package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Telegram 設定 webhook 時帶上 secret_token，之後每個請求都會附在這個標頭
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// SecretToken 驗證 webhook 請求確實來自 Telegram。
// secret 為空時不驗，本地開發或平台已有網路層隔離時用
func SecretToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(secretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			logrus.WithField("ip", c.ClientIP()).Warn("webhook 請求 secret token 不符")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

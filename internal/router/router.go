package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Jun878787/northsea-bot/internal/config"
	"github.com/Jun878787/northsea-bot/internal/handler"
	"github.com/Jun878787/northsea-bot/internal/middleware"
)

// SetupRouter 組出 webhook 模式用的 gin engine。
// webhookPath 是掛更新端點的路徑，由呼叫端決定（設定值或隨機產生）
func SetupRouter(cfg *config.Config, p handler.UpdateProcessor, webhookPath string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.RequestLog(), gin.Recovery())

	r.GET("/healthz", handler.Health)
	r.POST(webhookPath, middleware.SecretToken(cfg.Webhook.Secret), handler.Webhook(p))

	return r
}

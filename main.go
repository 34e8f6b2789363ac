package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Jun878787/northsea-bot/internal/bot"
	"github.com/Jun878787/northsea-bot/internal/config"
	"github.com/Jun878787/northsea-bot/internal/database"
	"github.com/Jun878787/northsea-bot/internal/logging"
	"github.com/Jun878787/northsea-bot/internal/rates"
	"github.com/Jun878787/northsea-bot/internal/store"
)

func main() {
	// 本地開發從 .env 讀環境變數，部署環境直接吃平台注入的變數
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(cfg.Log.Level)

	if cfg.Bot.Token == "" {
		logrus.Fatal("缺少 BOT_TOKEN")
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("初始化資料庫失敗")
	}
	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("資料庫遷移失敗")
	}

	st := store.NewGormStore(db)
	resolver := rates.NewResolver(st, cfg.Rates.FallbackTW, cfg.Rates.FallbackCN)

	b, err := bot.New(cfg, st, resolver)
	if err != nil {
		logrus.WithError(err).Fatal("啟動 bot 失敗")
	}

	if cfg.Webhook.Enabled {
		if err := b.RunWebhook(); err != nil {
			logrus.WithError(err).Fatal("webhook 伺服器結束")
		}
		return
	}
	b.Run()
}

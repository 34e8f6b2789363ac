package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type BotConfig struct {
	Token    string `mapstructure:"token"`
	AdminIDs string `mapstructure:"admin_ids"` // 逗號分隔，空字串表示交給群組管理員判斷
	GroupIDs string `mapstructure:"group_ids"`
}

type DatabaseConfig struct {
	Backend string `mapstructure:"backend"` // sqlite / postgres
	Path    string `mapstructure:"path"`    // sqlite 檔案路徑
	DSN     string `mapstructure:"dsn"`     // postgres 連線字串（Railway 的 DATABASE_URL）
	LogMode bool   `mapstructure:"log_mode"`
}

type WebhookConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Port      int    `mapstructure:"port"`
	PublicURL string `mapstructure:"public_url"`
	Path      string `mapstructure:"path"`   // 留空則啟動時隨機產生
	Secret    string `mapstructure:"secret"` // Telegram secret_token，留空則不驗
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type RatesConfig struct {
	FallbackTW float64 `mapstructure:"fallback_tw"` // 從未設定匯率時的預設值
	FallbackCN float64 `mapstructure:"fallback_cn"`
}

type Config struct {
	Bot      BotConfig      `mapstructure:"bot"`
	Database DatabaseConfig `mapstructure:"database"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Log      LogConfig      `mapstructure:"log"`
	Rates    RatesConfig    `mapstructure:"rates"`
	Timezone string         `mapstructure:"timezone"`
	MapsKey  string         `mapstructure:"maps_api_key"`
}

var (
	appConfig *Config
	loadErr   error
	once      sync.Once
)

// Load loads configuration from the given file path (e.g. "config.yaml").
// 環境變數可覆寫同名設定（BOT_TOKEN、DATABASE_URL、ADMIN_IDS...）。
// 只載入一次；首次失敗的話之後每次呼叫都回同一個錯誤
func Load(path string) (*Config, error) {
	once.Do(func() {
		v := viper.New()
		v.SetConfigFile(path)

		v.SetDefault("database.backend", "sqlite")
		v.SetDefault("database.path", "data/north_sea_bot.db")
		v.SetDefault("webhook.port", 5000)
		v.SetDefault("webhook.path", "")
		v.SetDefault("log.level", "info")
		v.SetDefault("rates.fallback_tw", 30.0)
		v.SetDefault("rates.fallback_cn", 7.0)
		v.SetDefault("timezone", "Asia/Taipei")

		// Railway 部署只給環境變數，設定檔不存在時不視為錯誤
		if readErr := v.ReadInConfig(); readErr != nil && fileExists(path) {
			loadErr = fmt.Errorf("read config: %w", readErr)
			return
		}

		v.BindEnv("bot.token", "BOT_TOKEN")
		v.BindEnv("bot.admin_ids", "ADMIN_IDS")
		v.BindEnv("bot.group_ids", "GROUP_ID")
		v.BindEnv("database.backend", "DATABASE_BACKEND")
		v.BindEnv("database.dsn", "DATABASE_URL")
		v.BindEnv("webhook.enabled", "WEBHOOK_ENABLED")
		v.BindEnv("webhook.port", "PORT")
		v.BindEnv("webhook.public_url", "RAILWAY_PUBLIC_DOMAIN")
		v.BindEnv("webhook.secret", "WEBHOOK_SECRET")
		v.BindEnv("timezone", "TZ")
		v.BindEnv("maps_api_key", "GOOGLE_MAPS_API_KEY")

		cfg := &Config{}
		if unmarshalErr := v.Unmarshal(cfg); unmarshalErr != nil {
			loadErr = fmt.Errorf("unmarshal config: %w", unmarshalErr)
			return
		}
		appConfig = cfg
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return appConfig, nil
}

// AdminIDs 解析逗號分隔的管理員 ID 清單
func (c *Config) AdminIDs() []int64 {
	return parseIDList(c.Bot.AdminIDs)
}

// GroupIDs 解析逗號分隔的群組 ID 清單
func (c *Config) GroupIDs() []int64 {
	return parseIDList(c.Bot.GroupIDs)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func parseIDList(s string) []int64 {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

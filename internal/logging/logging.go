package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup 設定全域 logrus：等級來自設定，輸出帶完整時間戳
func Setup(level string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
		logrus.WithField("configured", level).Warn("invalid log level, defaulting to info")
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

package timeutil

import (
	"time"

	"github.com/sirupsen/logrus"
)

// 台灣時區：所有「今天」「本月」的預設值都以這個時區計算
var taiwanLoc = mustLoad("Asia/Taipei")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logrus.WithError(err).Warn("load timezone failed, falling back to UTC+8")
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}

// Now 取台灣當前時間
func Now() time.Time {
	return time.Now().In(taiwanLoc)
}

// Today 取台灣當前日期（截到當日零點）
func Today() time.Time {
	return DateOnly(Now())
}

// DateOnly 去掉時刻，只留日期部分
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var weekdayChinese = [7]string{"日", "一", "二", "三", "四", "五", "六"}

// WeekdayChinese 回傳中文星期（一～日）
func WeekdayChinese(t time.Time) string {
	return weekdayChinese[int(t.Weekday())]
}

package rates

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jun878787/northsea-bot/internal/models"
)

// Source 是解析匯率需要的最小查詢面，store.Store 滿足它
type Source interface {
	GetRate(date time.Time, currency models.Currency) (rate float64, ok bool, err error)
}

// Resolver 負責把「某一天的匯率」解析出來：
// 取不晚於該日的最新設定值，完全沒設定過時退回預設匯率。
// 報表換算永遠拿得到數字，缺匯率不會讓報表開天窗
type Resolver struct {
	store      Source
	fallbackTW float64
	fallbackCN float64
}

func NewResolver(s Source, fallbackTW, fallbackCN float64) *Resolver {
	if fallbackTW <= 0 {
		fallbackTW = 30.0
	}
	if fallbackCN <= 0 {
		fallbackCN = 7.0
	}
	return &Resolver{store: s, fallbackTW: fallbackTW, fallbackCN: fallbackCN}
}

// For 回傳某日某幣別的生效匯率
func (r *Resolver) For(date time.Time, currency models.Currency) float64 {
	rate, ok, err := r.store.GetRate(date, currency)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"date":     date.Format("2006-01-02"),
			"currency": currency,
		}).Warn("查詢匯率失敗，改用預設匯率")
		return r.fallback(currency)
	}
	if !ok {
		return r.fallback(currency)
	}
	return rate
}

// Pair 一次回傳兩種幣別在某日的生效匯率
func (r *Resolver) Pair(date time.Time) (tw, cn float64) {
	return r.For(date, models.CurrencyTW), r.For(date, models.CurrencyCN)
}

func (r *Resolver) fallback(currency models.Currency) float64 {
	if currency == models.CurrencyCN {
		return r.fallbackCN
	}
	return r.fallbackTW
}

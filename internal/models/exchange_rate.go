package models

import "time"

// ExchangeRate 某日的結算匯率（1 USDT 兌多少當地貨幣）
// (Date, Currency) 唯一；查詢取目標日以前最近的一筆，不內插、不取未來匯率
type ExchangeRate struct {
	Date      time.Time `gorm:"primaryKey;type:date"`
	Currency  Currency  `gorm:"primaryKey;size:10"`
	Rate      float64   `gorm:"not null"`
	SetBy     int64
	CreatedAt time.Time
}

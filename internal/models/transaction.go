package models

import (
	"fmt"
	"time"
)

// Currency 支援的兩種記帳幣別
type Currency string

const (
	CurrencyTW Currency = "TW" // 台幣
	CurrencyCN Currency = "CN" // 人民幣
)

// Valid reports whether c is one of the two supported codes.
func (c Currency) Valid() bool {
	return c == CurrencyTW || c == CurrencyCN
}

// Name 回傳幣別的中文名稱
func (c Currency) Name() string {
	if c == CurrencyCN {
		return "人民幣"
	}
	return "台幣"
}

// Symbol 回傳報表顯示用的貨幣符號
func (c Currency) Symbol() string {
	if c == CurrencyCN {
		return "CN¥"
	}
	return "NT$"
}

// TxKind 收入或支出，方向由 kind 表示，金額永遠為正
type TxKind string

const (
	KindIncome  TxKind = "income"
	KindExpense TxKind = "expense"
)

// Transaction 表示一筆現金收支記錄
// 金額一律存正數，方向由 Kind 表示，避免重複取負的錯誤；
// 記錄建立後不再修改，「編輯」以刪除加重新記帳實現。
type Transaction struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    int64     `gorm:"index;not null"` // 記帳對象（可能是被代記帳的用戶）
	GroupID   int64     `gorm:"index"`          // 0 表示私聊
	Date      time.Time `gorm:"index;not null;type:date"`
	Currency  Currency  `gorm:"size:10;not null"`
	Amount    float64   `gorm:"not null"`
	Kind      TxKind    `gorm:"size:20;not null;column:transaction_type"`
	CreatedBy int64     // 下指令的人，代記帳時與 UserID 不同
	Memo      string    `gorm:"type:text;column:description"`
	CreatedAt time.Time
}

func fallbackUserName(id int64) string {
	return fmt.Sprintf("User%d", id)
}

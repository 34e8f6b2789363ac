package store

import (
	"time"

	"github.com/Jun878787/northsea-bot/internal/models"
)

// Store 是帳本的儲存契約，SQLite 與 PostgreSQL 後端共用同一套語義：
// 交易金額永遠為正、方向在 transaction_type；匯率查詢取「不晚於指定日的最新一筆」；
// 資金餘額更新是讀改寫，由實作負責序列化
type Store interface {
	UpsertUser(u *models.User) error
	FindUser(userID int64) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)
	ListUsers() ([]models.User, error)

	UpsertGroup(groupID int64, name string) error
	GroupName(groupID int64) (string, error)

	AddTransaction(tx *models.Transaction) error
	UserTransactions(userID, groupID int64) ([]models.Transaction, error)
	GroupTransactions(groupID int64) ([]models.Transaction, error)
	GroupTransactionsRange(groupID int64, from, to time.Time) ([]models.Transaction, error)
	AllGroupsTransactions() ([]models.Transaction, error)

	// NetTotal 回傳群組在區間內 收入-支出 的淨額，記帳回報的今日/本月總計用
	NetTotal(groupID int64, from, to time.Time) (float64, error)

	// DeleteTransaction 刪除本人某日某幣別金額完全相符的記錄，回傳刪除筆數
	DeleteTransaction(userID, groupID int64, date time.Time, currency models.Currency, amount float64) (int64, error)
	// DeleteMonth 刪除本人當年某月某幣別的全部記錄
	DeleteMonth(userID, groupID int64, year, month int, currency models.Currency) (int64, error)
	// ClearUserRange 清除某用戶在群組內一段日期區間的記錄，清空個人報表用
	ClearUserRange(userID, groupID int64, from, to time.Time) (int64, error)
	// ClearGroupRange 清除整個群組一段日期區間的記錄
	ClearGroupRange(groupID int64, from, to time.Time) (int64, error)
	// ClearAllRange 清除所有群組一段日期區間的記錄，清空車隊總表用
	ClearAllRange(from, to time.Time) (int64, error)

	SetRate(date time.Time, currency models.Currency, rate float64, setBy int64) error
	// GetRate 取 date 當日或之前最近一筆匯率，找不到時 ok 為 false
	GetRate(date time.Time, currency models.Currency) (rate float64, ok bool, err error)

	FundBalance(kind models.FundKind, currency models.Currency, groupID int64) (float64, error)
	// AdjustFund 對資金餘額加減 delta，回傳調整後餘額
	AdjustFund(kind models.FundKind, currency models.Currency, groupID int64, delta float64, updatedBy int64) (float64, error)
}

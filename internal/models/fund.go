package models

import "time"

// FundKind 資金池類別
type FundKind string

const (
	FundPublic  FundKind = "public"  // 公桶
	FundPrivate FundKind = "private" // 私人
)

// Name 回傳資金池的中文名稱
func (k FundKind) Name() string {
	if k == FundPrivate {
		return "私人"
	}
	return "公桶"
}

// Fund 群組內某資金池在某幣別下的餘額
// (FundKind, Currency, GroupID) 唯一；寫入是整數覆寫，
// 新餘額由呼叫端以舊值加減算出，靠 store 的全域鎖保證不丟更新
type Fund struct {
	ID        uint     `gorm:"primaryKey"`
	FundKind  FundKind `gorm:"size:50;uniqueIndex:idx_fund_scope;column:fund_type"`
	Currency  Currency `gorm:"size:10;uniqueIndex:idx_fund_scope"`
	Amount    float64
	GroupID   int64 `gorm:"uniqueIndex:idx_fund_scope"`
	UpdatedBy int64
	UpdatedAt time.Time
}

package models

import "time"

// User 快取 Telegram 用戶的顯示資訊
// 每次互動時 upsert，沒有刪除路徑
type User struct {
	UserID      int64  `gorm:"primaryKey;autoIncrement:false"`
	Username    string `gorm:"size:255;index"`
	DisplayName string `gorm:"size:255"`
	FirstName   string `gorm:"size:255"`
	LastName    string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayOrFallback 依序取顯示名、用戶名、名字，最後退回 UserNNN
func (u *User) DisplayOrFallback() string {
	switch {
	case u.DisplayName != "":
		return u.DisplayName
	case u.Username != "":
		return u.Username
	case u.FirstName != "":
		return u.FirstName
	}
	return fallbackUserName(u.UserID)
}

package models

import "time"

// Group 群組識別與報表顯示用的名稱快取
// 觀察到群組訊息時 upsert
type Group struct {
	GroupID   int64  `gorm:"primaryKey;autoIncrement:false"`
	GroupName string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

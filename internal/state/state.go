package state

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Action 清空報表的目標範圍
type Action string

const (
	ClearPersonal Action = "clear_personal"
	ClearGroup    Action = "clear_group"
	ClearFleet    Action = "clear_fleet"
)

// Name 回傳操作的中文名稱，確認與完成訊息用
func (a Action) Name() string {
	switch a {
	case ClearPersonal:
		return "個人報表"
	case ClearGroup:
		return "組別報表"
	case ClearFleet:
		return "車隊總表"
	}
	return "報表"
}

// Step 多輪對話進行到哪一步
type Step int

const (
	StepAwaitingDate Step = iota + 1
	StepAwaitingConfirmation
)

// Clearing 一位用戶進行中的清空報表對話
type Clearing struct {
	Action    Action
	Step      Step
	GroupID   int64
	DateInput string // "6" 或 "6/12"，確認後才解析
}

// Manager 以 TTL 快取保存每位用戶的對話狀態，
// 放著不理的對話過期自動消失，不會把用戶永遠卡在等輸入的狀態
type Manager struct {
	c *cache.Cache
}

// DefaultTTL 對話閒置多久視為放棄
const DefaultTTL = 5 * time.Minute

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{c: cache.New(ttl, 2*ttl)}
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// Begin 啟動或重設一位用戶的清空對話
func (m *Manager) Begin(userID int64, st Clearing) {
	m.c.SetDefault(key(userID), st)
}

// Get 取進行中的對話，沒有或已過期時 ok 為 false
func (m *Manager) Get(userID int64) (Clearing, bool) {
	v, ok := m.c.Get(key(userID))
	if !ok {
		return Clearing{}, false
	}
	st, ok := v.(Clearing)
	return st, ok
}

// Advance 覆寫對話狀態並重新計時
func (m *Manager) Advance(userID int64, st Clearing) {
	m.c.SetDefault(key(userID), st)
}

// End 結束對話
func (m *Manager) End(userID int64) {
	m.c.Delete(key(userID))
}

// Reset 丟掉所有進行中的對話，系統刷新時用
func (m *Manager) Reset() {
	m.c.Flush()
}

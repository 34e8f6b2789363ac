package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Jun878787/northsea-bot/internal/models"
	"github.com/Jun878787/northsea-bot/internal/timeutil"
)

// GormStore 以同一套 gorm 程式跑 SQLite 與 PostgreSQL 兩種後端
// 全域互斥鎖把所有存取序列化，資金讀改寫與 SQLite 單寫入都靠它
type GormStore struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ---------- 用戶與群組 ----------

func (s *GormStore) UpsertUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username", "display_name", "first_name", "last_name", "updated_at",
		}),
	}).Create(u).Error
}

func (s *GormStore) FindUser(userID int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var u models.User
	err := s.db.Where("user_id = ?", userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查詢用戶失敗: %w", err)
	}
	return &u, nil
}

func (s *GormStore) FindUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var u models.User
	err := s.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查詢用戶失敗: %w", err)
	}
	return &u, nil
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("查詢用戶列表失敗: %w", err)
	}
	return users, nil
}

func (s *GormStore) UpsertGroup(groupID int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := models.Group{GroupID: groupID, GroupName: name}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"group_name", "updated_at"}),
	}).Create(&g).Error
}

func (s *GormStore) GroupName(groupID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var g models.Group
	err := s.db.Where("group_id = ?", groupID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return g.GroupName, nil
}

// ---------- 交易 ----------

func (s *GormStore) AddTransaction(tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.Date = timeutil.DateOnly(tx.Date)
	if err := s.db.Create(tx).Error; err != nil {
		return fmt.Errorf("寫入交易失敗: %w", err)
	}
	return nil
}

func (s *GormStore) UserTransactions(userID, groupID int64) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	err := s.db.
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Order("date ASC, id ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("查詢個人交易失敗: %w", err)
	}
	return txs, nil
}

func (s *GormStore) GroupTransactions(groupID int64) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	err := s.db.
		Where("group_id = ?", groupID).
		Order("date ASC, id ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("查詢群組交易失敗: %w", err)
	}
	return txs, nil
}

func (s *GormStore) GroupTransactionsRange(groupID int64, from, to time.Time) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	err := s.db.
		Where("group_id = ? AND date >= ? AND date < ?",
			groupID, timeutil.DateOnly(from), timeutil.DateOnly(to)).
		Order("date ASC, id ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("查詢群組區間交易失敗: %w", err)
	}
	return txs, nil
}

func (s *GormStore) AllGroupsTransactions() ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	err := s.db.Order("group_id ASC, date ASC, id ASC").Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("查詢車隊交易失敗: %w", err)
	}
	return txs, nil
}

func (s *GormStore) NetTotal(groupID int64, from, to time.Time) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	err := s.db.
		Where("group_id = ? AND date >= ? AND date < ?",
			groupID, timeutil.DateOnly(from), timeutil.DateOnly(to)).
		Find(&txs).Error
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, tx := range txs {
		if tx.Kind == models.KindIncome {
			total += tx.Amount
		} else {
			total -= tx.Amount
		}
	}
	return total, nil
}

func (s *GormStore) DeleteTransaction(userID, groupID int64, date time.Time, currency models.Currency, amount float64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.db.
		Where("user_id = ? AND group_id = ? AND date = ? AND currency = ? AND amount = ?",
			userID, groupID, timeutil.DateOnly(date), currency, amount).
		Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, fmt.Errorf("刪除交易失敗: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) DeleteMonth(userID, groupID int64, year, month int, currency models.Currency) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	res := s.db.
		Where("user_id = ? AND group_id = ? AND currency = ? AND date >= ? AND date < ?",
			userID, groupID, currency, from, to).
		Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, fmt.Errorf("刪除月報表失敗: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) ClearUserRange(userID, groupID int64, from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.db.
		Where("user_id = ? AND group_id = ? AND date >= ? AND date < ?",
			userID, groupID, timeutil.DateOnly(from), timeutil.DateOnly(to)).
		Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, fmt.Errorf("清除個人報表失敗: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) ClearGroupRange(groupID int64, from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.db.
		Where("group_id = ? AND date >= ? AND date < ?",
			groupID, timeutil.DateOnly(from), timeutil.DateOnly(to)).
		Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, fmt.Errorf("清除群組報表失敗: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) ClearAllRange(from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.db.
		Where("date >= ? AND date < ?", timeutil.DateOnly(from), timeutil.DateOnly(to)).
		Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, fmt.Errorf("清除車隊報表失敗: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ---------- 匯率 ----------

func (s *GormStore) SetRate(date time.Time, currency models.Currency, rate float64, setBy int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := models.ExchangeRate{
		Date:     timeutil.DateOnly(date),
		Currency: currency,
		Rate:     rate,
		SetBy:    setBy,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "set_by"}),
	}).Create(&r).Error
	if err != nil {
		return fmt.Errorf("寫入匯率失敗: %w", err)
	}
	return nil
}

func (s *GormStore) GetRate(date time.Time, currency models.Currency) (float64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r models.ExchangeRate
	err := s.db.
		Where("currency = ? AND date <= ?", currency, timeutil.DateOnly(date)).
		Order("date DESC").
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("查詢匯率失敗: %w", err)
	}
	return r.Rate, true, nil
}

// ---------- 資金 ----------

func (s *GormStore) FundBalance(kind models.FundKind, currency models.Currency, groupID int64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f models.Fund
	err := s.db.
		Where("fund_type = ? AND currency = ? AND group_id = ?", kind, currency, groupID).
		First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("查詢資金餘額失敗: %w", err)
	}
	return f.Amount, nil
}

func (s *GormStore) AdjustFund(kind models.FundKind, currency models.Currency, groupID int64, delta float64, updatedBy int64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f models.Fund
	err := s.db.
		Where("fund_type = ? AND currency = ? AND group_id = ?", kind, currency, groupID).
		First(&f).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		f = models.Fund{FundKind: kind, Currency: currency, GroupID: groupID}
	case err != nil:
		return 0, fmt.Errorf("讀取資金餘額失敗: %w", err)
	}

	f.Amount += delta
	f.UpdatedBy = updatedBy
	if err := s.db.Save(&f).Error; err != nil {
		return 0, fmt.Errorf("更新資金餘額失敗: %w", err)
	}
	return f.Amount, nil
}

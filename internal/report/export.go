package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Jun878787/northsea-bot/internal/models"
)

// ExportXLSX 把交易明細匯出成 XLSX 工作簿，回傳可直接當 Telegram 文件上傳的位元組。
// displayName 把 user_id 換成顯示名稱
func ExportXLSX(txs []models.Transaction, groupName string, displayName func(int64) string) ([]byte, string, error) {
	f := excelize.NewFile()
	sheetName := "交易明細"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("建立工作表失敗: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"日期", "用戶", "幣別", "類型", "金額", "備註"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	for idx, tx := range txs {
		row := idx + 2

		kindText := "支出"
		if tx.Kind == models.KindIncome {
			kindText = "收入"
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), displayName(tx.UserID))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tx.Currency.Name())
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), kindText)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), tx.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), tx.Memo)
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 10)
	f.SetColWidth(sheetName, "D", "D", 8)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 30)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("匯出失敗: %w", err)
	}

	filename := fmt.Sprintf("%s_報表.xlsx", groupName)
	return buf.Bytes(), filename, nil
}

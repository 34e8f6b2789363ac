package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Jun878787/northsea-bot/internal/normalize"
)

// 結構化金融記錄是多行訊息，必須同時出現 項目 與 金額 欄位才進入解析。
// 出款人來源依序：【代碼-姓名】標記、@用戶名、短首行、最後退回 "未指定"
var (
	rePayerTag  = regexp.MustCompile(`【([^-]+)(?:-([^】]+))?】`)
	reItemField = regexp.MustCompile(`項目[：:]\s*([^\n]+)`)
	reBankField = regexp.MustCompile(`銀行[：:]\s*([^\n]+)`)
	reAmtField  = regexp.MustCompile(`金額[：:]\s*(-?\d+)`)
	reCodeField = regexp.MustCompile(`代碼[：:]\s*(\d+)`)
	reAcctField = regexp.MustCompile(`帳號[：:]\s*(\d+)`)
)

func parseRecord(text string) Command {
	if !strings.Contains(text, "項目") || !strings.Contains(text, "金額") {
		return nil
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	firstLine := strings.TrimSpace(lines[0])

	mention := ""
	var recordDate time.Time

	// 首行 @用戶名 [M/D] 是群主代記帳格式
	if strings.HasPrefix(firstLine, "@") {
		parts := strings.Fields(firstLine)
		mention = strings.TrimPrefix(parts[0], "@")
		if len(parts) >= 2 {
			if d, ok := normalize.ParseDateToken(parts[1]); ok {
				recordDate = d
			}
		}
		lines = lines[1:]
		text = strings.Join(lines, "\n")
	}

	payerCode, payerName := "", ""
	if m := rePayerTag.FindStringSubmatch(text); m != nil {
		payerCode = strings.TrimSpace(m[1])
		payerName = payerCode
		if m[2] != "" {
			payerName = strings.TrimSpace(m[2])
		}
	} else if mention != "" {
		payerCode = mention
		payerName = "@" + mention
	} else if utf8.RuneCountInString(firstLine) <= 10 && len(lines) > 1 && strings.Contains(lines[1], "項目") {
		payerCode = firstLine
		payerName = firstLine
	} else {
		payerCode = "未指定"
		payerName = "未指定"
	}

	item := "未指定"
	if m := reItemField.FindStringSubmatch(text); m != nil {
		item = strings.TrimSpace(m[1])
	}
	bank := "未指定"
	if m := reBankField.FindStringSubmatch(text); m != nil {
		bank = strings.TrimSpace(m[1])
	}

	m := reAmtField.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	code, account := "", ""
	if m := reCodeField.FindStringSubmatch(text); m != nil {
		code = m[1]
	}
	if m := reAcctField.FindStringSubmatch(text); m != nil {
		account = m[1]
	}

	return Record{
		PayerCode: payerCode,
		PayerName: payerName,
		Item:      item,
		Bank:      bank,
		Amount:    amount,
		Code:      code,
		Account:   account,
		Mention:   mention,
		Date:      recordDate,
	}
}

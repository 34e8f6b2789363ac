package bot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/Jun878787/northsea-bot/internal/state"
	"github.com/Jun878787/northsea-bot/internal/timeutil"
)

// 清空報表對話接受「6」(整月) 或「6/12」(單日) 兩種輸入
var reClearDate = regexp.MustCompile(`^(\d{1,2})$|^(\d{1,2}/\d{1,2})$`)

// continueClearFlow 把不屬於任何指令的訊息餵給進行中的清空對話。
// 沒有進行中的對話時什麼都不做，群組裡的閒聊不該觸發回覆。
func (b *Bot) continueClearFlow(msg *tgbotapi.Message, text string) {
	st, ok := b.states.Get(msg.From.ID)
	if !ok {
		return
	}

	switch st.Step {
	case state.StepAwaitingDate:
		b.clearFlowDate(msg, st, text)
	case state.StepAwaitingConfirmation:
		b.clearFlowConfirm(msg, st, text)
	}
}

func (b *Bot) clearFlowDate(msg *tgbotapi.Message, st state.Clearing, text string) {
	if !reClearDate.MatchString(text) {
		b.reply(msg.Chat.ID, clearBadDateText)
		return
	}

	st.Step = state.StepAwaitingConfirmation
	st.DateInput = text
	b.states.Advance(msg.From.ID, st)

	b.reply(msg.Chat.ID, fmt.Sprintf(clearConfirmFmt, st.Action.Name(), text, st.Action.Name()))
}

func (b *Bot) clearFlowConfirm(msg *tgbotapi.Message, st state.Clearing, text string) {
	b.states.End(msg.From.ID)

	if text != "確認" {
		b.reply(msg.Chat.ID, clearCancelledText)
		return
	}

	from, to, err := clearRange(st.DateInput)
	if err != nil {
		b.reply(msg.Chat.ID, clearBadDateText)
		return
	}

	var deleted int64
	switch st.Action {
	case state.ClearPersonal:
		deleted, err = b.store.ClearUserRange(msg.From.ID, st.GroupID, from, to)
	case state.ClearGroup:
		deleted, err = b.store.ClearGroupRange(st.GroupID, from, to)
	case state.ClearFleet:
		deleted, err = b.store.ClearAllRange(from, to)
	}
	if err != nil {
		logrus.WithError(err).WithField("action", st.Action).Error("清空報表失敗")
		b.reply(msg.Chat.ID, "❌ 清空操作失敗，請稍後再試")
		return
	}

	logrus.WithFields(logrus.Fields{
		"action":  st.Action,
		"range":   st.DateInput,
		"deleted": deleted,
	}).Info("清空報表完成")
	b.reply(msg.Chat.ID, fmt.Sprintf(clearDoneFmt, st.DateInput, st.Action.Name()))
}

// clearRange 把「6」轉成當年 6 月整月、「6/12」轉成當年該日一天的半開區間
func clearRange(input string) (from, to time.Time, err error) {
	year := timeutil.Now().Year()

	if md := strings.SplitN(input, "/", 2); len(md) == 2 {
		month, merr := strconv.Atoi(md[0])
		day, derr := strconv.Atoi(md[1])
		if merr != nil || derr != nil || month < 1 || month > 12 || day < 1 || day > 31 {
			return from, to, fmt.Errorf("無效的日期輸入: %q", input)
		}
		from = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 0, 1), nil
	}

	month, merr := strconv.Atoi(input)
	if merr != nil || month < 1 || month > 12 {
		return from, to, fmt.Errorf("無效的月份輸入: %q", input)
	}
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), nil
}

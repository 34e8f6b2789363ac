package report

import "regexp"

// Telegram 的 HTML parse mode 只認小寫標籤，且缺結尾標籤會整則發送失敗。
// 報表文字在送出前都先過這裡修補：大寫標籤轉小寫、
// <b>文字<b> 這種漏斜線的寫法補成正確的結尾標籤。
// 修補是冪等的，已經正確的文字再過一次不會變形
var (
	upperTagFixes = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`<CODE>`), "<code>"},
		{regexp.MustCompile(`</CODE>`), "</code>"},
		{regexp.MustCompile(`<Code>`), "<code>"},
		{regexp.MustCompile(`</Code>`), "</code>"},
		{regexp.MustCompile(`<B>`), "<b>"},
		{regexp.MustCompile(`</B>`), "</b>"},
		{regexp.MustCompile(`<STRONG>`), "<strong>"},
		{regexp.MustCompile(`</STRONG>`), "</strong>"},
		{regexp.MustCompile(`<I>`), "<i>"},
		{regexp.MustCompile(`</I>`), "</i>"},
		{regexp.MustCompile(`<U>`), "<u>"},
		{regexp.MustCompile(`</U>`), "</u>"},
		{regexp.MustCompile(`<EM>`), "<em>"},
		{regexp.MustCompile(`</EM>`), "</em>"},
	}

	missingCloseFixes = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`<b>([^<]*)<b>`), "<b>$1</b>"},
		{regexp.MustCompile(`<code>([^<]*)<code>`), "<code>$1</code>"},
		{regexp.MustCompile(`<strong>([^<]*)<strong>`), "<strong>$1</strong>"},
		{regexp.MustCompile(`<i>([^<]*)<i>`), "<i>$1</i>"},
	}
)

// FixHTMLTags 修補報表文字中壞掉的 HTML 標籤
func FixHTMLTags(text string) string {
	if text == "" {
		return text
	}
	for _, f := range upperTagFixes {
		text = f.re.ReplaceAllString(text, f.repl)
	}
	for _, f := range missingCloseFixes {
		text = f.re.ReplaceAllString(text, f.repl)
	}
	return text
}

package intent

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Label 表示自由输入被识别出的意图。
type Label string

const (
	Unknown Label = ""
	End     Label = "end"
	Reset   Label = "reset"
	Help    Label = "help"
	Yes     Label = "yes"
	No      Label = "no"
	Option  Label = "option"
)

// Decision 给出意图识别结果。Option 为 0 起始的选项下标，仅在 Label 为 Option 时有效。
type Decision struct {
	Label  Label
	Option int
	Score  int
}

var keywordBuckets = map[Label][]string{
	End:   {"종료", "끝내", "그만", "bye", "exit", "quit"},
	Reset: {"처음", "다시", "리셋", "reset", "restart"},
	Help:  {"도움", "도움말", "help", "?"},
	Yes:   {"응", "네", "예", "만들었", "만듬", "yes", "yeah", "yep"},
	No:    {"아니", "아직", "없", "no", "nope", "not yet"},
}

// 命令类意图优先于作答类意图，避免 "아니, 처음부터" 之类的输入被当成否定回答。
// 肯定与否定同时出现时按肯定处理，如 "네, 아직…"。
var priority = []Label{End, Reset, Help, Yes, No}

var circled = []string{"①", "②", "③", "④", "⑤"}

// Analyze 根据关键词推断访客的自由输入意图。
func Analyze(text string) Decision {
	// macOS 输入法可能提交分解形式 (NFD) 的한글，关键词表按 NFC 书写。
	normalized := norm.NFC.String(strings.TrimSpace(strings.ToLower(text)))
	if normalized == "" {
		return Decision{Label: Unknown}
	}

	if idx, ok := parseOption(normalized); ok {
		return Decision{Label: Option, Option: idx, Score: 3}
	}

	scores := scoreText(normalized)
	for _, label := range priority {
		if scores[label] > 0 {
			return Decision{Label: label, Score: scores[label]}
		}
	}
	return Decision{Label: Unknown}
}

func scoreText(normalized string) map[Label]int {
	scores := make(map[Label]int)
	for label, keywords := range keywordBuckets {
		for _, word := range keywords {
			if word == "" {
				continue
			}
			if containsKeyword(normalized, word) {
				scores[label] += 3
			}
		}
	}
	return scores
}

// containsKeyword 对纯 ASCII 关键词按单词边界匹配，避免 "no" 命中 "know"。
func containsKeyword(text, word string) bool {
	if !isASCII(word) {
		return strings.Contains(text, word)
	}
	if word == "?" {
		return strings.Contains(text, word)
	}
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '\''
	}) {
		if field == word {
			return true
		}
	}
	return strings.Contains(word, " ") && strings.Contains(text, word)
}

func parseOption(normalized string) (int, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(normalized, "번"), ".")
	if n, err := strconv.Atoi(strings.TrimSpace(trimmed)); err == nil {
		if n >= 1 && n <= len(circled) {
			return n - 1, true
		}
		return 0, false
	}
	for i, symbol := range circled {
		if strings.Contains(normalized, symbol) {
			return i, true
		}
	}
	return 0, false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

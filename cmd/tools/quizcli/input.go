package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
)

// toAction 把终端输入翻译成操作：数字对应最近一条消息上的按钮或选项，其余作为自由输入。
func toAction(input string, last *chat.Payload) dialogue.Action {
	input = strings.TrimSpace(input)
	text := dialogue.Action{Kind: dialogue.ActionText, Text: input}
	if last == nil || input == "" {
		return text
	}

	switch last.Kind {
	case chat.PayloadArtifactChoices:
		if ids, ok := pickArtifacts(input, last); ok {
			return dialogue.Action{Kind: dialogue.ActionConfirmArtifacts, ArtifactIDs: ids}
		}
	case chat.PayloadQuizChoices:
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(last.Choices) {
			return dialogue.SubmitAnswer(n - 1)
		}
	}

	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(last.Buttons) {
		return fromButton(last.Buttons[n-1])
	}
	return text
}

func fromButton(b chat.Button) dialogue.Action {
	kind := dialogue.ActionKind(b.Action)
	switch kind {
	case dialogue.ActionSelectAgeGroup:
		return dialogue.Action{Kind: kind, ProfileID: b.Value}
	case dialogue.ActionTourCheck:
		return dialogue.TourCheck(b.Value == "yes")
	}
	return dialogue.Action{Kind: kind}
}

// pickArtifacts 解析 "1,3,5" 或 "1 3 5"，编号越界时整体视为无效输入。
func pickArtifacts(input string, p *chat.Payload) ([]string, bool) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, false
	}
	ids := make([]string, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(p.Artifacts) {
			return nil, false
		}
		ids = append(ids, p.Artifacts[n-1].ID)
	}
	return ids, true
}

// render 以纯文本输出一条消息，按钮编号从 1 开始。
func render(turn chat.Turn) string {
	var b strings.Builder
	if turn.Role == chat.RoleUser {
		fmt.Fprintf(&b, "> %s\n", turn.Text)
		return b.String()
	}
	fmt.Fprintf(&b, "%s\n", turn.Text)
	if turn.Payload == nil {
		return b.String()
	}
	if r := turn.Payload.Result; r != nil {
		fmt.Fprintf(&b, "  [%d/%d, %d%%]\n", r.Correct, r.Total, r.Percent)
	}
	for i, btn := range turn.Payload.Buttons {
		fmt.Fprintf(&b, "  [%d] %s\n", i+1, btn.Label)
	}
	return b.String()
}

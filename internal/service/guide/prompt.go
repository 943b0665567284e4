package guide

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
)

// BuildSystemPrompt 组合导览员设定、文物上下文与语气提示。
func BuildSystemPrompt(language string, a *artifact.Artifact, p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(baseSystemPrompt)

	if a != nil {
		fmt.Fprintf(&b, `

현재 관람객이 보고 있는 유물:
- 이름: %s (%s)
- 시대: %s
- 재질: %s
- 위치: %s %s
- 설명: %s
- 재미있는 사실: %s`,
			a.Name, a.NameEn, a.Period, a.Material, a.Location, a.Gallery, a.Description,
			strings.Join(a.FunFacts, ", "))
	}

	if p != nil {
		b.WriteString("\n\n관람객: ")
		b.WriteString(p.Label)
		if hints := toneHints(p); len(hints) > 0 {
			b.WriteString("\n말투 지침:\n- ")
			b.WriteString(strings.Join(hints, "\n- "))
		}
	}

	if language == "en" {
		b.WriteString("\n\nAnswer in English.")
	}
	return b.String()
}

func toneHints(p *profile.Profile) []string {
	var hints []string
	if p.Casual {
		hints = append(hints, "친구처럼 반말로 이야기하세요.")
	} else {
		hints = append(hints, "존댓말을 사용하세요.")
	}
	if p.Simple {
		hints = append(hints, "어려운 한자어 대신 쉬운 낱말로 짧게 설명하세요.")
	}
	if p.Emoji {
		hints = append(hints, "이모지를 한두 개 섞어도 좋아요.")
	}
	return hints
}

const baseSystemPrompt = `당신은 국립중앙박물관의 친절한 AI 도슨트입니다.
규칙:
- 유물의 역사, 제작 기법, 의미를 정확하게 설명합니다.
- 모르는 내용은 추측하지 말고 모른다고 말합니다.
- 답변은 3~5문장 이내로 간결하게 합니다.
- 관람객이 더 관찰해 볼 만한 포인트를 하나 제안합니다.`

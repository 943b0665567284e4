package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	quizmodel "github.com/zhouzirui/museum-guide/backend/internal/model/quiz"
)

var errInvalidPayload = errors.New("invalid quiz payload")

// 指针字段用于区分缺失或 null 与零值。
type quizPayload struct {
	Question    *string  `json:"question"`
	Options     []string `json:"options"`
	Answer      *int     `json:"answer"`
	Explanation *string  `json:"explanation"`
}

// parseItem 从模型输出中截取第一个 "{" 到最后一个 "}" 之间的 JSON 并校验。
func parseItem(content string) (quizmodel.Item, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return quizmodel.Item{}, fmt.Errorf("%w: missing json object", errInvalidPayload)
	}
	body := []byte(trimmed[start : end+1])

	var payload quizPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return quizmodel.Item{}, fmt.Errorf("%w: %v", errInvalidPayload, err)
	}
	switch {
	case payload.Question == nil:
		return quizmodel.Item{}, fmt.Errorf("%w: missing key %q", errInvalidPayload, "question")
	case payload.Options == nil:
		return quizmodel.Item{}, fmt.Errorf("%w: missing key %q", errInvalidPayload, "options")
	case payload.Answer == nil:
		return quizmodel.Item{}, fmt.Errorf("%w: missing key %q", errInvalidPayload, "answer")
	case payload.Explanation == nil:
		return quizmodel.Item{}, fmt.Errorf("%w: missing key %q", errInvalidPayload, "explanation")
	}

	question := strings.TrimSpace(*payload.Question)
	if question == "" {
		return quizmodel.Item{}, fmt.Errorf("%w: empty question", errInvalidPayload)
	}
	if n := len(payload.Options); n < 4 || n > 5 {
		return quizmodel.Item{}, fmt.Errorf("%w: want 4 or 5 options, got %d", errInvalidPayload, n)
	}

	options := make([]string, len(payload.Options))
	seen := make(map[string]struct{}, len(payload.Options))
	for i, raw := range payload.Options {
		option := strings.TrimSpace(raw)
		if option == "" {
			return quizmodel.Item{}, fmt.Errorf("%w: option %d is empty", errInvalidPayload, i)
		}
		if _, dup := seen[option]; dup {
			return quizmodel.Item{}, fmt.Errorf("%w: duplicate option %q", errInvalidPayload, option)
		}
		seen[option] = struct{}{}
		options[i] = option
	}
	answer := *payload.Answer
	if answer < 0 || answer >= len(options) {
		return quizmodel.Item{}, fmt.Errorf("%w: answer %d out of range", errInvalidPayload, answer)
	}

	return quizmodel.Item{
		Question:    question,
		Options:     options,
		Answer:      answer,
		Explanation: strings.TrimSpace(*payload.Explanation),
		Strategy:    quizmodel.StrategyLLM,
	}, nil
}

func buildPrompt(a artifact.Artifact, difficulty quizmodel.Difficulty) string {
	var builder strings.Builder
	builder.WriteString("다음 유물 정보를 바탕으로 4지선다 퀴즈를 만들어 주세요.\n\n유물 정보:\n")
	fmt.Fprintf(&builder, "- 이름: %s\n", orDefault(a.Name, "알 수 없음"))
	fmt.Fprintf(&builder, "- 시대: %s\n", orDefault(a.Period, "시대 미상"))
	fmt.Fprintf(&builder, "- 재질: %s\n", a.Material)
	fmt.Fprintf(&builder, "- 지정: %s\n", a.Designation)
	fmt.Fprintf(&builder, "- 전시실: %s\n", a.Gallery)
	fmt.Fprintf(&builder, "- 설명: %s\n", a.Description)
	builder.WriteString("\n")
	builder.WriteString(difficultyHints[difficulty])
	builder.WriteString("\n\n다음 JSON 형식으로만 응답해 주세요:\n")
	builder.WriteString(`{"question": "퀴즈 질문", "options": ["선택지1", "선택지2", "선택지3", "선택지4"], "answer": 0, "explanation": "정답 해설 (2-3문장)"}`)
	return builder.String()
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

var difficultyHints = map[quizmodel.Difficulty]string{
	quizmodel.DifficultyAny:    "난이도: 너무 쉽거나 어렵지 않은 중간 난이도.",
	quizmodel.DifficultyEasy:   "난이도: 어린이도 풀 수 있도록 쉬운 낱말로, 이름이나 시대처럼 눈에 띄는 특징을 물어봐 주세요.",
	quizmodel.DifficultyNormal: "난이도: 중간. 시대, 재질, 전시 위치 중 하나를 물어봐 주세요.",
	quizmodel.DifficultyHard:   "난이도: 어려움. 제작 기법이나 역사적 의의처럼 설명을 꼼꼼히 읽어야 풀 수 있는 문제를 내 주세요.",
}

const quizSystemPrompt = "당신은 국립중앙박물관의 교육 담당 큐레이터입니다. 주어진 유물 정보만 사용해 사실에 맞는 객관식 퀴즈를 만듭니다.\n규칙: answer는 정답 선택지의 0부터 시작하는 인덱스입니다. 선택지는 그럴듯하지만 명확히 구분되어야 합니다. JSON 객체 외의 텍스트는 출력하지 마세요."

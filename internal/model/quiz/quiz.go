package quiz

import "strings"

// Strategy records how an Item was produced.
type Strategy string

const (
	StrategyLLM      Strategy = "llm"
	StrategyName     Strategy = "name"
	StrategyPeriod   Strategy = "period"
	StrategyMaterial Strategy = "material"
	StrategyFact     Strategy = "fact"
	StrategyCurated  Strategy = "curated"
	StrategyFallback Strategy = "fallback"
)

// Difficulty tailors which template strategies are eligible.
type Difficulty string

const (
	DifficultyAny    Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Item is one multiple-choice question about a single artifact.
type Item struct {
	ID          string   `json:"id"`
	ArtifactID  string   `json:"artifactId"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation"`
	Strategy    Strategy `json:"strategy"`
}

// Correct returns the text of the correct option, or "" for a malformed item.
func (i Item) Correct() string {
	if i.Answer < 0 || i.Answer >= len(i.Options) {
		return ""
	}
	return i.Options[i.Answer]
}

// Valid reports whether the item can be shown and scored.
func (i Item) Valid() bool {
	if strings.TrimSpace(i.Question) == "" || len(i.Options) < 2 {
		return false
	}
	return i.Answer >= 0 && i.Answer < len(i.Options)
}

// HasOption reports whether idx addresses an existing option.
func (i Item) HasOption(idx int) bool {
	return idx >= 0 && idx < len(i.Options)
}

// AnswerRecord captures one submitted answer.
type AnswerRecord struct {
	ItemID      string `json:"itemId"`
	ArtifactID  string `json:"artifactId"`
	Question    string `json:"question"`
	Chosen      int    `json:"chosen"`
	ChosenText  string `json:"chosenText"`
	CorrectText string `json:"correctText"`
	Explanation string `json:"explanation"`
	Correct     bool   `json:"correct"`
}

package chat

import (
	"time"

	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// PayloadKind tags the interactive affordance attached to a turn.
type PayloadKind string

const (
	PayloadText            PayloadKind = "text"
	PayloadButtons         PayloadKind = "buttons"
	PayloadQuizChoices     PayloadKind = "quiz_choices"
	PayloadArtifactChoices PayloadKind = "artifact_choices"
	PayloadFeedback        PayloadKind = "feedback"
	PayloadResult          PayloadKind = "result"
	PayloadLoading         PayloadKind = "loading"
)

// Button is one clickable affordance. Action matches a dialogue action kind.
type Button struct {
	Label  string `json:"label"`
	Action string `json:"action"`
	Value  string `json:"value,omitempty"`
}

// ResultSummary is the final score card.
type ResultSummary struct {
	Total   int    `json:"total"`
	Correct int    `json:"correct"`
	Percent int    `json:"percent"`
	Tier    string `json:"tier"`
}

// Payload is the structured part of a turn that a renderer turns into controls.
type Payload struct {
	Kind      PayloadKind    `json:"kind"`
	Buttons   []Button       `json:"buttons,omitempty"`
	Choices   []string       `json:"choices,omitempty"`
	Artifacts []artifact.Ref `json:"artifacts,omitempty"`
	MinSelect int            `json:"minSelect,omitempty"`
	MaxSelect int            `json:"maxSelect,omitempty"`
	Correct   *bool          `json:"correct,omitempty"`
	Result    *ResultSummary `json:"result,omitempty"`
}

// Turn is one logged message. The log is append-only; the single exception is a
// loading turn, which is rewritten in place once generation finishes.
type Turn struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Payload   *Payload  `json:"payload,omitempty"`
}

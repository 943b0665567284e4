package dialogue

import (
	"fmt"

	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
)

// ActionKind 标识一次用户操作。
type ActionKind string

const (
	ActionStart            ActionKind = "start"
	ActionSelectAgeGroup   ActionKind = "select_age_group"
	ActionTourCheck        ActionKind = "tour_check"
	ActionConfirmArtifacts ActionKind = "confirm_artifacts"
	ActionBeginQuiz        ActionKind = "begin_quiz"
	ActionSubmitAnswer     ActionKind = "submit_answer"
	ActionAdvance          ActionKind = "advance"
	ActionReviewWrong      ActionKind = "review_wrong"
	ActionEnd              ActionKind = "end"
	ActionRestart          ActionKind = "restart"
	ActionText             ActionKind = "text"
	ActionHelp             ActionKind = "help"
)

// 一次测验可选择的文物数量范围。
const (
	MinSelection = 3
	MaxSelection = 10
)

// Action 是展示层提交给控制器的类型化操作，只读取与 Kind 对应的字段。
// HasTour 与 OptionIndex 用指针区分“未提供”和零值。
type Action struct {
	Kind        ActionKind `json:"kind"`
	ProfileID   string     `json:"profileId,omitempty"`
	HasTour     *bool      `json:"hasTour,omitempty"`
	ArtifactIDs []string   `json:"artifactIds,omitempty"`
	OptionIndex *int       `json:"optionIndex,omitempty"`
	Text        string     `json:"text,omitempty"`
}

// TourCheck builds a tour_check action.
func TourCheck(hasTour bool) Action {
	return Action{Kind: ActionTourCheck, HasTour: &hasTour}
}

// SubmitAnswer builds a submit_answer action for a 0-based option index.
func SubmitAnswer(index int) Action {
	return Action{Kind: ActionSubmitAnswer, OptionIndex: &index}
}

// Validate 检查 Kind 所需的字段是否齐全，不检查阶段与取值范围。
func (a Action) Validate() error {
	switch {
	case a.Kind == "":
		return fmt.Errorf("%w: kind is required", ErrMalformedAction)
	case a.Kind == ActionTourCheck && a.HasTour == nil:
		return fmt.Errorf("%w: hasTour is required for %s", ErrMalformedAction, a.Kind)
	case a.Kind == ActionSubmitAnswer && a.OptionIndex == nil:
		return fmt.Errorf("%w: optionIndex is required for %s", ErrMalformedAction, a.Kind)
	}
	return nil
}

// Result 是每次调用后需要渲染的新消息与当前可用操作。
type Result struct {
	Turns   []chat.Turn  `json:"turns"`
	Allowed []ActionKind `json:"allowed"`
}

var stageActions = map[chat.Stage][]ActionKind{
	chat.StageGreeting:       {ActionStart},
	chat.StageAgeGroupSelect: {ActionSelectAgeGroup, ActionEnd},
	chat.StageTourCheck:      {ActionTourCheck, ActionEnd},
	chat.StageArtifactSelect: {ActionConfirmArtifacts, ActionEnd},
	chat.StageQuizReady:      {ActionBeginQuiz, ActionEnd},
	chat.StageQuizQuestion:   {ActionSubmitAnswer, ActionEnd},
	chat.StageQuizFeedback:   {ActionAdvance, ActionEnd},
	chat.StageQuizResult:     {ActionReviewWrong, ActionRestart, ActionEnd},
	chat.StageEnded:          {ActionRestart},
}

// Allowed 返回阶段内合法的操作。自由输入与帮助在任何阶段都可用。
func Allowed(stage chat.Stage) []ActionKind {
	actions := append([]ActionKind(nil), stageActions[stage]...)
	return append(actions, ActionText, ActionHelp)
}

func isAllowed(stage chat.Stage, kind ActionKind) bool {
	for _, allowed := range Allowed(stage) {
		if allowed == kind {
			return true
		}
	}
	return false
}

package chat

import (
	"fmt"
	"time"

	"github.com/zhouzirui/museum-guide/backend/internal/model/quiz"
)

// Stage is one discrete state of the conversation.
type Stage string

const (
	StageGreeting       Stage = "greeting"
	StageAgeGroupSelect Stage = "age_group_select"
	StageTourCheck      Stage = "tour_check"
	StageArtifactSelect Stage = "artifact_select"
	StageQuizReady      Stage = "quiz_ready"
	StageQuizQuestion   Stage = "quiz_question"
	StageQuizFeedback   Stage = "quiz_feedback"
	StageQuizResult     Stage = "quiz_result"
	StageEnded          Stage = "ended"
)

// Session is the complete, serializable state of one visitor's run.
type Session struct {
	ID                string              `json:"id"`
	Language          string              `json:"language"`
	Stage             Stage               `json:"stage"`
	ProfileID         string              `json:"profileId,omitempty"`
	OfferedArtifacts  []string            `json:"offeredArtifacts,omitempty"`
	SelectedArtifacts []string            `json:"selectedArtifacts,omitempty"`
	Quizzes           []quiz.Item         `json:"quizzes,omitempty"`
	CurrentIndex      int                 `json:"currentIndex"`
	CorrectCount      int                 `json:"correctCount"`
	Answers           []quiz.AnswerRecord `json:"answers,omitempty"`
	Turns             []Turn              `json:"turns"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// NewSession returns a session positioned at the greeting stage.
func NewSession(id, language string, now time.Time) Session {
	return Session{
		ID:        id,
		Language:  language,
		Stage:     StageGreeting,
		Turns:     make([]Turn, 0, 16),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds turns to the log.
func (s *Session) Append(turns ...Turn) {
	s.Turns = append(s.Turns, turns...)
}

// CurrentQuiz returns the quiz item at the current index.
func (s *Session) CurrentQuiz() (quiz.Item, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Quizzes) {
		return quiz.Item{}, false
	}
	return s.Quizzes[s.CurrentIndex], true
}

// TotalQuestions is the number of generated quiz items.
func (s *Session) TotalQuestions() int {
	return len(s.Quizzes)
}

// WrongAnswers returns the answers that were scored incorrect.
func (s *Session) WrongAnswers() []quiz.AnswerRecord {
	wrong := make([]quiz.AnswerRecord, 0, len(s.Answers))
	for _, a := range s.Answers {
		if !a.Correct {
			wrong = append(wrong, a)
		}
	}
	return wrong
}

// ResetQuiz clears selection and quiz progress.
func (s *Session) ResetQuiz() {
	s.OfferedArtifacts = nil
	s.SelectedArtifacts = nil
	s.Quizzes = nil
	s.CurrentIndex = 0
	s.CorrectCount = 0
	s.Answers = nil
}

// ResetAll clears everything except identity and language.
func (s *Session) ResetAll() {
	s.ResetQuiz()
	s.ProfileID = ""
	s.Turns = make([]Turn, 0, 16)
	s.Stage = StageGreeting
}

// CheckInvariants validates the counters against each other.
func (s *Session) CheckInvariants() error {
	if len(s.Answers) > len(s.SelectedArtifacts) {
		return fmt.Errorf("answers %d exceed selected artifacts %d", len(s.Answers), len(s.SelectedArtifacts))
	}
	if s.CorrectCount > len(s.Answers) {
		return fmt.Errorf("correct count %d exceeds answers %d", s.CorrectCount, len(s.Answers))
	}
	if s.CurrentIndex < 0 || s.CurrentIndex > len(s.Quizzes) {
		return fmt.Errorf("current index %d outside [0, %d]", s.CurrentIndex, len(s.Quizzes))
	}
	return nil
}

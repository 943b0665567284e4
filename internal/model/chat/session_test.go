package chat

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/museum-guide/backend/internal/model/quiz"
)

func TestSessionJSONRoundTripKeepsPayloads(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewSession("s1", "ko", now)
	correct := true
	s.Append(Turn{
		ID:        "t1",
		Role:      RoleSystem,
		Text:      "정답!",
		Timestamp: now,
		Payload:   &Payload{Kind: PayloadFeedback, Correct: &correct},
	})
	s.Quizzes = []quiz.Item{{ID: "q1", Question: "q", Options: []string{"a", "b"}, Answer: 1}}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var got Session
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got.Turns, 1)
	require.NotNil(t, got.Turns[0].Payload)
	require.NotNil(t, got.Turns[0].Payload.Correct)
	assert.True(t, *got.Turns[0].Payload.Correct)
	assert.Equal(t, StageGreeting, got.Stage)
	assert.Equal(t, "b", got.Quizzes[0].Correct())
}

func TestCurrentQuizAndWrongAnswers(t *testing.T) {
	s := NewSession("s1", "ko", time.Now())
	_, ok := s.CurrentQuiz()
	assert.False(t, ok)

	s.Quizzes = []quiz.Item{{ID: "a"}, {ID: "b"}}
	s.CurrentIndex = 1
	item, ok := s.CurrentQuiz()
	require.True(t, ok)
	assert.Equal(t, "b", item.ID)

	s.Answers = []quiz.AnswerRecord{{ItemID: "a", Correct: true}, {ItemID: "b"}}
	wrong := s.WrongAnswers()
	require.Len(t, wrong, 1)
	assert.Equal(t, "b", wrong[0].ItemID)
}

func TestResets(t *testing.T) {
	s := NewSession("s1", "ko", time.Now())
	s.ProfileID = "kid"
	s.SelectedArtifacts = []string{"a"}
	s.CurrentIndex = 1
	s.CorrectCount = 1
	s.Append(Turn{ID: "t"})

	s.ResetQuiz()
	assert.Equal(t, "kid", s.ProfileID)
	assert.Empty(t, s.SelectedArtifacts)
	assert.Zero(t, s.CurrentIndex)
	assert.Len(t, s.Turns, 1)

	s.ResetAll()
	assert.Empty(t, s.ProfileID)
	assert.Empty(t, s.Turns)
	assert.Equal(t, StageGreeting, s.Stage)
}

func TestCheckInvariants(t *testing.T) {
	s := NewSession("s1", "ko", time.Now())
	require.NoError(t, s.CheckInvariants())

	s.Answers = []quiz.AnswerRecord{{}}
	assert.Error(t, s.CheckInvariants())

	s.SelectedArtifacts = []string{"a"}
	s.CorrectCount = 2
	assert.Error(t, s.CheckInvariants())

	s.CorrectCount = 1
	s.CurrentIndex = 2
	assert.Error(t, s.CheckInvariants())
}

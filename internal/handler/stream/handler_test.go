package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chathandler "github.com/zhouzirui/museum-guide/backend/internal/handler/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	"github.com/zhouzirui/museum-guide/backend/internal/model/quiz"
	chatService "github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
	"github.com/zhouzirui/museum-guide/backend/internal/store"
)

type sseEvent struct {
	name string
	data string
}

func parseEvents(t *testing.T, body string) []sseEvent {
	t.Helper()
	var events []sseEvent
	var current sseEvent
	scanner := bufio.NewScanner(strings.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current.data = strings.TrimPrefix(line, "data: ")
		case line == "":
			if current.name != "" {
				events = append(events, current)
			}
			current = sseEvent{}
		}
	}
	require.NoError(t, scanner.Err())
	return events
}

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, a artifact.Artifact, _ quiz.Difficulty) quiz.Item {
	return quiz.Item{ID: "q-" + a.ID, ArtifactID: a.ID, Question: a.Name, Options: []string{"A", "B", "C", "D"}, Strategy: quiz.StrategyName}
}

func setup(t *testing.T) (*chatService.Service, http.Handler, string) {
	t.Helper()
	controller := dialogue.NewController(
		artifact.NewMemoryStore(artifact.Seed()),
		profile.NewMemoryStore(profile.Seed()),
		stubGenerator{},
		dialogue.WithLogger(logger.Nop()),
	)
	svc := chatService.NewService(store.NewMemoryStore(), controller)
	out, err := svc.CreateSession(context.Background(), "ko")
	require.NoError(t, err)

	r := chi.NewRouter()
	New(svc).RegisterRoutes(r)
	return svc, r, out.Session.ID
}

func postStream(h http.Handler, sessionID, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+sessionID+"/actions/stream", strings.NewReader(body))
	h.ServeHTTP(rec, req)
	return rec
}

func TestStreamConfirmPushesLoadingTurn(t *testing.T) {
	svc, h, id := setup(t)
	ctx := context.Background()
	_, err := svc.Apply(ctx, id, dialogue.Action{Kind: dialogue.ActionSelectAgeGroup, ProfileID: "middle"})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, id, dialogue.TourCheck(true))
	require.NoError(t, err)

	rec := postStream(h, id, `{"kind":"confirm_artifacts","artifactIds":["NMK-001","NMK-002","NMK-003"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	events := parseEvents(t, rec.Body.String())
	require.Len(t, events, 3)
	assert.Equal(t, EventStart, events[0].name)
	assert.Equal(t, EventProgress, events[1].name)
	assert.Equal(t, EventResult, events[2].name)

	var loading chat.Turn
	require.NoError(t, json.Unmarshal([]byte(events[1].data), &loading))
	require.NotNil(t, loading.Payload)
	assert.Equal(t, chat.PayloadLoading, loading.Payload.Kind)

	var result chathandler.SessionResponse
	require.NoError(t, json.Unmarshal([]byte(events[2].data), &result))
	assert.Equal(t, chat.StageQuizReady, result.Session.Stage)
	assert.Len(t, result.Session.Quizzes, 3)
	assert.Empty(t, result.Error)
}

func TestStreamRejectedActionReportsCode(t *testing.T) {
	_, h, id := setup(t)

	rec := postStream(h, id, `{"kind":"begin_quiz"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	events := parseEvents(t, rec.Body.String())
	require.Len(t, events, 2)

	var result chathandler.SessionResponse
	require.NoError(t, json.Unmarshal([]byte(events[1].data), &result))
	assert.Equal(t, "illegal_transition", result.Code)
	assert.Equal(t, chat.StageAgeGroupSelect, result.Session.Stage)
}

func TestStreamUnknownSession(t *testing.T) {
	_, h, _ := setup(t)

	rec := postStream(h, "missing", `{"kind":"help"}`)
	events := parseEvents(t, rec.Body.String())
	require.Len(t, events, 2)
	assert.Equal(t, EventError, events[1].name)
	assert.Contains(t, events[1].data, "session_not_found")
}

func TestStreamRejectsBadBody(t *testing.T) {
	_, h, id := setup(t)
	rec := postStream(h, id, `{"kind":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postStream(h, id, `{"kind":"tour_check"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed_action")
}

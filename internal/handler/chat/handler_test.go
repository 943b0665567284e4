package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/museum-guide/backend/internal/handler/apierr"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	"github.com/zhouzirui/museum-guide/backend/internal/model/quiz"
	chatService "github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
	"github.com/zhouzirui/museum-guide/backend/internal/store"
)

type firstOptionGenerator struct{}

func (firstOptionGenerator) Generate(_ context.Context, a artifact.Artifact, _ quiz.Difficulty) quiz.Item {
	return quiz.Item{
		ID:         "q-" + a.ID,
		ArtifactID: a.ID,
		Question:   a.Name,
		Options:    []string{"A", "B", "C", "D"},
		Answer:     0,
		Strategy:   quiz.StrategyName,
	}
}

func newTestRouter() http.Handler {
	controller := dialogue.NewController(
		artifact.NewMemoryStore(artifact.Seed()),
		profile.NewMemoryStore(profile.Seed()),
		firstOptionGenerator{},
		dialogue.WithLogger(logger.Nop()),
	)
	svc := chatService.NewService(store.NewMemoryStore(), controller)
	r := chi.NewRouter()
	New(svc).RegisterRoutes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, SessionResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp SessionResponse
	if rec.Code != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	}
	return rec, resp
}

func TestCreateSession(t *testing.T) {
	h := newTestRouter()

	rec, resp := do(t, h, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, resp.Session.ID)
	assert.Equal(t, "ko", resp.Session.Language)
	assert.Equal(t, chat.StageAgeGroupSelect, resp.Session.Stage)
	require.Len(t, resp.Turns, 1)
	assert.Contains(t, resp.Allowed, dialogue.ActionSelectAgeGroup)

	rec, resp = do(t, h, http.MethodPost, "/sessions", `{"language":"en"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "en", resp.Session.Language)

	rec, resp = do(t, h, http.MethodPost, "/sessions", `{"language":"jp"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidLanguage, resp.Code)
}

func TestSessionFlowOverHTTP(t *testing.T) {
	h := newTestRouter()
	_, created := do(t, h, http.MethodPost, "/sessions", "")
	base := "/sessions/" + created.Session.ID

	steps := []string{
		`{"kind":"select_age_group","profileId":"high"}`,
		`{"kind":"tour_check","hasTour":true}`,
		`{"kind":"confirm_artifacts","artifactIds":["NMK-001","NMK-002","NMK-003"]}`,
		`{"kind":"begin_quiz"}`,
	}
	for _, body := range steps {
		rec, _ := do(t, h, http.MethodPost, base+"/actions", body)
		require.Equal(t, http.StatusOK, rec.Code, body)
	}

	rec, resp := do(t, h, http.MethodPost, base+"/actions", `{"kind":"submit_answer","optionIndex":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, chat.StageQuizFeedback, resp.Session.Stage)
	assert.Equal(t, 1, resp.Session.CorrectCount)
	assert.NotEmpty(t, resp.Turns)

	rec, resp = do(t, h, http.MethodPost, base+"/actions", `{"kind":"submit_answer","optionIndex":0}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apierr.CodeIllegalTransition, resp.Code)
	assert.Equal(t, chat.StageQuizFeedback, resp.Session.Stage)
	assert.Equal(t, 1, resp.Session.CorrectCount)

	rec, resp = do(t, h, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, chat.StageQuizFeedback, resp.Session.Stage)
	assert.Contains(t, resp.Allowed, dialogue.ActionAdvance)
}

func TestApplyActionValidation(t *testing.T) {
	h := newTestRouter()
	_, created := do(t, h, http.MethodPost, "/sessions", "")
	base := "/sessions/" + created.Session.ID

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, base+"/actions", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodPost, base+"/actions", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp := do(t, h, http.MethodPost, base+"/actions", `{"kind":"dance"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeUnknownAction, resp.Code)

	rec, resp = do(t, h, http.MethodPost, base+"/actions", `{"kind":"submit_answer"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeMalformedAction, resp.Code)

	rec, resp = do(t, h, http.MethodPost, base+"/actions", `{"kind":"tour_check"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeMalformedAction, resp.Code)

	rec, resp = do(t, h, http.MethodPost, base+"/actions", `{"kind":"select_age_group","profileId":"alien"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apierr.CodeUnknownProfile, resp.Code)
	assert.NotEmpty(t, resp.Turns)

	rec, resp = do(t, h, http.MethodPost, "/sessions/missing/actions", `{"kind":"help"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierr.CodeNotFound, resp.Code)
}

func TestDeleteSession(t *testing.T) {
	h := newTestRouter()
	_, created := do(t, h, http.MethodPost, "/sessions", "")
	path := "/sessions/" + created.Session.ID

	rec, _ := do(t, h, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, h, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

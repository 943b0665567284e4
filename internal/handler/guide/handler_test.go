package guide

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
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	guideservice "github.com/zhouzirui/museum-guide/backend/internal/service/guide"
	"github.com/zhouzirui/museum-guide/backend/internal/service/llm"
)

type echoProvider struct {
	last llm.Request
}

func (p *echoProvider) Complete(_ context.Context, req llm.Request) (string, error) {
	p.last = req
	return "answer: " + req.Prompt, nil
}

func newRouter(provider llm.Provider) http.Handler {
	r := chi.NewRouter()
	svc := guideservice.NewService(provider, guideservice.Config{})
	New(svc, artifact.NewMemoryStore(artifact.Seed()), profile.NewMemoryStore(profile.Seed())).RegisterRoutes(r)
	return r
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)
	return rec
}

func TestAskWithArtifactAndProfile(t *testing.T) {
	provider := &echoProvider{}
	rec := post(newRouter(provider), "/guide/ask", `{"artifactId":"NMK-007","profileId":"adult","question":"언제 만들어졌나요?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got askResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, guideservice.SourceLLM, got.Source)
	assert.Equal(t, "answer: 언제 만들어졌나요?", got.Text)
	assert.Equal(t, "NMK-007", got.ArtifactID)
	assert.Contains(t, provider.last.System, "존댓말")
}

func TestAskWithoutProviderFallsBack(t *testing.T) {
	rec := post(newRouter(nil), "/guide/ask", `{"question":"국보가 뭐예요?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got askResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, guideservice.SourceFallback, got.Source)
	assert.NotEmpty(t, got.Text)
}

func TestAskRejectsBadRequests(t *testing.T) {
	h := newRouter(&echoProvider{})

	assert.Equal(t, http.StatusBadRequest, post(h, "/guide/ask", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, "/guide/ask", `{"question":"  "}`).Code)
	assert.Equal(t, http.StatusNotFound, post(h, "/guide/ask", `{"artifactId":"nope","question":"q"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, "/guide/ask", `{"profileId":"alien","question":"q"}`).Code)
}

func TestDescribeArtifact(t *testing.T) {
	provider := &echoProvider{}
	h := newRouter(provider)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artifacts/NMK-001/guide?profileId=kid", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "이 유물을 소개해 주세요.", provider.last.Prompt)
	assert.Contains(t, provider.last.System, "반말")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artifacts/NMK-404/guide", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestLanguageSelectsGuideLanguage(t *testing.T) {
	provider := &echoProvider{}
	h := newRouter(provider)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artifacts/NMK-001/guide?lang=en", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Please introduce this artifact.", provider.last.Prompt)
	assert.Contains(t, provider.last.System, "English")

	rec = post(h, "/guide/ask", `{"question":"hi","language":"en"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, provider.last.System, "English")

	rec = post(h, "/guide/ask", `{"question":"hi","language":"fr"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apierr.CodeInvalidLanguage, body.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artifacts/NMK-001/guide?lang=jp", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

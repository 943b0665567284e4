package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
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

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, a artifact.Artifact, _ quiz.Difficulty) quiz.Item {
	return quiz.Item{ID: "q-" + a.ID, ArtifactID: a.ID, Question: a.Name, Options: []string{"A", "B", "C", "D"}, Strategy: quiz.StrategyName}
}

type received struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

func startServer(t *testing.T) (*httptest.Server, string) {
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
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, out.Session.ID
}

func dial(t *testing.T, srv *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/sessions/" + sessionID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) received {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg received
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

// readUntilState collects messages up to and including the next state message.
func readUntilState(t *testing.T, conn *websocket.Conn) ([]received, StateData) {
	t.Helper()
	var before []received
	for i := 0; i < 20; i++ {
		msg := read(t, conn)
		if msg.Type == TypeState {
			var state StateData
			require.NoError(t, json.Unmarshal(msg.Data, &state))
			return before, state
		}
		before = append(before, msg)
	}
	t.Fatal("no state message received")
	return nil, StateData{}
}

func sendAction(t *testing.T, conn *websocket.Conn, action dialogue.Action) {
	t.Helper()
	data, err := json.Marshal(action)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(inboundMessage{Type: TypeAction, Data: data}))
}

func TestWebSocketInitialStateAndPing(t *testing.T) {
	srv, id := startServer(t)
	conn := dial(t, srv, id)

	_, state := readUntilState(t, conn)
	assert.Equal(t, chat.StageAgeGroupSelect, state.Stage)
	assert.Equal(t, id, state.Session.ID)
	assert.Contains(t, state.Allowed, dialogue.ActionSelectAgeGroup)

	require.NoError(t, conn.WriteJSON(inboundMessage{Type: TypePing}))
	assert.Equal(t, TypePong, read(t, conn).Type)
}

func TestWebSocketActionFlow(t *testing.T) {
	srv, id := startServer(t)
	conn := dial(t, srv, id)
	readUntilState(t, conn)

	sendAction(t, conn, dialogue.Action{Kind: dialogue.ActionSelectAgeGroup, ProfileID: "kid"})
	turns, state := readUntilState(t, conn)
	assert.Equal(t, chat.StageTourCheck, state.Stage)
	require.NotEmpty(t, turns)
	for _, m := range turns {
		assert.Equal(t, TypeTurn, m.Type)
	}

	sendAction(t, conn, dialogue.TourCheck(true))
	_, state = readUntilState(t, conn)
	assert.Equal(t, chat.StageArtifactSelect, state.Stage)

	sendAction(t, conn, dialogue.Action{Kind: dialogue.ActionConfirmArtifacts, ArtifactIDs: []string{"NMK-001", "NMK-002", "NMK-003"}})
	turns, state = readUntilState(t, conn)
	assert.Equal(t, chat.StageQuizReady, state.Stage)

	var first chat.Turn
	require.NoError(t, json.Unmarshal(turns[0].Data, &first))
	require.NotNil(t, first.Payload)
	assert.Equal(t, chat.PayloadLoading, first.Payload.Kind)
}

func TestWebSocketRejectedAction(t *testing.T) {
	srv, id := startServer(t)
	conn := dial(t, srv, id)
	readUntilState(t, conn)

	sendAction(t, conn, dialogue.Action{Kind: dialogue.ActionAdvance})
	msgs, state := readUntilState(t, conn)
	assert.Equal(t, chat.StageAgeGroupSelect, state.Stage)

	var errMsg *ErrorData
	for _, m := range msgs {
		if m.Type == TypeError {
			errMsg = &ErrorData{}
			require.NoError(t, json.Unmarshal(m.Data, errMsg))
		}
	}
	require.NotNil(t, errMsg)
	assert.Equal(t, "illegal_transition", errMsg.Code)
}

func TestWebSocketInvalidMessages(t *testing.T) {
	srv, id := startServer(t)
	conn := dial(t, srv, id)
	readUntilState(t, conn)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "audio"}))
	assert.Equal(t, TypeError, read(t, conn).Type)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "action", "data": map[string]any{}}))
	assert.Equal(t, TypeError, read(t, conn).Type)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "action", "data": map[string]any{"kind": "submit_answer"}}))
	msg := read(t, conn)
	require.Equal(t, TypeError, msg.Type)
	var data ErrorData
	require.NoError(t, json.Unmarshal(msg.Data, &data))
	assert.Equal(t, apierr.CodeMalformedAction, data.Code)
}

func TestWebSocketUnknownSession(t *testing.T) {
	srv, _ := startServer(t)

	resp, err := http.Get(srv.URL + "/sessions/missing/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

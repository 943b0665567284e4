// Package apierr maps service errors onto HTTP status codes and stable codes
// shared by the REST, SSE and WebSocket adapters.
package apierr

import (
	"errors"
	"net/http"

	chatservice "github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
)

const (
	CodeNotFound          = "session_not_found"
	CodeIllegalTransition = "illegal_transition"
	CodeSelectionSize     = "invalid_selection_size"
	CodeIndexOutOfRange   = "index_out_of_range"
	CodeUnknownArtifact   = "unknown_artifact"
	CodeUnknownProfile    = "unknown_profile"
	CodeUnknownAction     = "unknown_action"
	CodeMalformedAction   = "malformed_action"
	CodeInvalidLanguage   = "invalid_language"
	CodeInternal          = "internal"
)

var table = []struct {
	err    error
	status int
	code   string
}{
	{chatservice.ErrSessionNotFound, http.StatusNotFound, CodeNotFound},
	{dialogue.ErrIllegalTransition, http.StatusConflict, CodeIllegalTransition},
	{dialogue.ErrInvalidSelectionSize, http.StatusUnprocessableEntity, CodeSelectionSize},
	{dialogue.ErrIndexOutOfRange, http.StatusUnprocessableEntity, CodeIndexOutOfRange},
	{dialogue.ErrUnknownArtifact, http.StatusUnprocessableEntity, CodeUnknownArtifact},
	{dialogue.ErrUnknownProfile, http.StatusUnprocessableEntity, CodeUnknownProfile},
	{dialogue.ErrUnknownAction, http.StatusBadRequest, CodeUnknownAction},
	{dialogue.ErrMalformedAction, http.StatusBadRequest, CodeMalformedAction},
	{chatservice.ErrInvalidLanguage, http.StatusBadRequest, CodeInvalidLanguage},
}

// Classify 返回错误对应的状态码与错误码，未知错误视为 500。
func Classify(err error) (int, string) {
	for _, e := range table {
		if errors.Is(err, e.err) {
			return e.status, e.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// Message 返回可以暴露给客户端的错误信息。
func Message(err error) string {
	if status, _ := Classify(err); status == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}

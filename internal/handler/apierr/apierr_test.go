package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	chatservice "github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{chatservice.ErrSessionNotFound, http.StatusNotFound, CodeNotFound},
		{fmt.Errorf("wrap: %w", dialogue.ErrIllegalTransition), http.StatusConflict, CodeIllegalTransition},
		{fmt.Errorf("%w: got 2", dialogue.ErrInvalidSelectionSize), http.StatusUnprocessableEntity, CodeSelectionSize},
		{dialogue.ErrIndexOutOfRange, http.StatusUnprocessableEntity, CodeIndexOutOfRange},
		{dialogue.ErrUnknownAction, http.StatusBadRequest, CodeUnknownAction},
		{dialogue.ErrMalformedAction, http.StatusBadRequest, CodeMalformedAction},
		{errors.New("disk full"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range cases {
		status, code := Classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestMessageHidesInternalErrors(t *testing.T) {
	assert.Equal(t, "internal error", Message(errors.New("sqlite: database is locked")))
	assert.Equal(t, chatservice.ErrSessionNotFound.Error(), Message(chatservice.ErrSessionNotFound))
}

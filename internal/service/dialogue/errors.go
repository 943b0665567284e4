package dialogue

import "errors"

// 控制器返回的可恢复错误。返回这些错误时会话只追加一条引导消息，阶段与测验进度不变。
var (
	ErrIllegalTransition    = errors.New("dialogue: action not allowed in current stage")
	ErrInvalidSelectionSize = errors.New("dialogue: artifact selection size out of range")
	ErrIndexOutOfRange      = errors.New("dialogue: option index out of range")
	ErrUnknownArtifact      = errors.New("dialogue: unknown artifact")
	ErrUnknownProfile       = errors.New("dialogue: unknown profile")
	ErrUnknownAction        = errors.New("dialogue: unknown action")
	ErrMalformedAction      = errors.New("dialogue: malformed action")
)

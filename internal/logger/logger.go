// Package logger 提供全局 zap 日志实例。
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 日志级别常量。
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "lvl",
	NameKey:        "name",
	CallerKey:      "caller",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
	EncodeName:     zapcore.FullNameEncoder,
}

// Default 是服务共用的日志实例，组件通过 Named 派生带标签的子日志。
var Default = zap.New(
	zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	),
	zap.AddCaller(),
).Sugar()

// SetLevel 设置全局日志级别，无法识别的值回退到 info。
func SetLevel(raw string) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case LevelDebug:
		level.SetLevel(zapcore.DebugLevel)
	case LevelWarn:
		level.SetLevel(zapcore.WarnLevel)
	case LevelError:
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Level 返回当前日志级别。
func Level() zapcore.Level {
	return level.Level()
}

// Named 返回带组件名的子日志。
func Named(name string) *zap.SugaredLogger {
	return Default.Named(name)
}

// Nop 返回丢弃全部输出的日志，主要用于测试。
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// Package llm 封装测验出题与导览问答所用的文本生成后端。
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/zhouzirui/museum-guide/backend/internal/config"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
)

// ErrUnavailable 表示没有可用的文本生成后端。
var ErrUnavailable = errors.New("llm: no provider configured")

// Request 描述一次补全调用。
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Provider 是文本生成后端的统一抽象，调用方负责设置超时。
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// New 按配置选择后端：优先 Ark，其次 OpenAI 兼容接口。
func New(ctx context.Context, cfg *config.Config) (Provider, error) {
	log := logger.Named("llm")

	if cfg.AI.Enabled() {
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create ark chat model: %w", err)
		}
		provider, err := NewArkProvider(ctx, chatModel)
		if err != nil {
			return nil, err
		}
		log.Infow("using ark provider", "model", cfg.AI.Model)
		return provider, nil
	}

	if cfg.OpenAI.Enabled() {
		log.Infow("using openai provider", "model", cfg.OpenAI.Model, "baseURL", cfg.OpenAI.BaseURL)
		return NewOpenAIProvider(cfg.OpenAI), nil
	}

	return nil, ErrUnavailable
}

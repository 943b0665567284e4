package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/zhouzirui/museum-guide/backend/internal/config"
)

// OpenAIProvider 调用 OpenAI 兼容的 chat completions 接口。
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider 根据配置创建客户端，额外的 option 用于测试注入。
func NewOpenAIProvider(cfg config.OpenAIConfig, opts ...option.RequestOption) *OpenAIProvider {
	// SDK 默认重试 2 次，这里只做一次调用，超时由调用方控制。
	clientOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &OpenAIProvider{
		client: openai.NewClient(clientOpts...),
		model:  cfg.Model,
	}
}

// Complete 执行一次补全，只取第一个候选。
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(p.model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(float64(req.Temperature))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

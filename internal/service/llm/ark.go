package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// ArkProvider 通过 eino chain 调用聊天模型。
type ArkProvider struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewArkProvider 编译 prompt + ChatModel 的调用链。chatModel 可以是任意 eino 模型实现。
func NewArkProvider(ctx context.Context, chatModel model.ChatModel) (*ArkProvider, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is nil")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile llm chain: %w", err)
	}

	return &ArkProvider{chain: runnable}, nil
}

// Complete 执行一次补全。
func (p *ArkProvider) Complete(ctx context.Context, req Request) (string, error) {
	input := map[string]any{
		"system": req.System,
		"query":  req.Prompt,
	}

	var opts []model.Option
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		opts = append(opts, model.WithTemperature(req.Temperature))
	}

	msg, err := p.chain.Invoke(ctx, input, compose.WithChatModelOption(opts...))
	if err != nil {
		return "", fmt.Errorf("failed to run llm chain: %w", err)
	}
	if msg == nil {
		return "", errors.New("llm chain returned no message")
	}
	return msg.Content, nil
}

// Package guide 提供文物导览问答，大模型不可用时返回本地整理的介绍。
package guide

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	"github.com/zhouzirui/museum-guide/backend/internal/service/llm"
)

// Source 标记回答来自模型还是本地兜底。
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Answer 是一次问答的结果。
type Answer struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

// Config 控制导览问答。
type Config struct {
	Language  string
	MaxTokens int
	Timeout   time.Duration
}

// Service 封装导览问答。
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.SugaredLogger
}

// CallOption 调整单次问答。
type CallOption func(*callOptions)

type callOptions struct {
	language string
}

// WithLanguage 指定本次回答的语言，空字符串沿用服务默认语言。
func WithLanguage(language string) CallOption {
	return func(o *callOptions) {
		o.language = language
	}
}

// NewService 创建导览服务，provider 可以为 nil。
func NewService(provider llm.Provider, cfg Config) *Service {
	if cfg.Language == "" {
		cfg.Language = "ko"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Service{provider: provider, cfg: cfg, log: logger.Named("guide")}
}

// Describe 生成文物介绍。
func (s *Service) Describe(ctx context.Context, a artifact.Artifact, p *profile.Profile, opts ...CallOption) Answer {
	question := "이 유물을 소개해 주세요."
	if s.language(opts) == "en" {
		question = "Please introduce this artifact."
	}
	return s.Ask(ctx, question, &a, p, opts...)
}

// Ask 回答访客的自由提问。a 为 nil 时不附带文物上下文。
func (s *Service) Ask(ctx context.Context, question string, a *artifact.Artifact, p *profile.Profile, opts ...CallOption) Answer {
	language := s.language(opts)
	question = strings.TrimSpace(question)
	if s.provider == nil || question == "" {
		return Answer{Text: fallback(language, a), Source: SourceFallback}
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	text, err := s.provider.Complete(ctx, llm.Request{
		System:    BuildSystemPrompt(language, a, p),
		Prompt:    question,
		MaxTokens: s.cfg.MaxTokens,
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty completion")
	}
	if err != nil {
		s.log.Warnw("guide completion failed, use fallback", "error", err)
		return Answer{Text: fallback(language, a), Source: SourceFallback}
	}
	return Answer{Text: strings.TrimSpace(text), Source: SourceLLM}
}

func (s *Service) language(opts []CallOption) string {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.language == "" {
		return s.cfg.Language
	}
	return o.language
}

func fallback(language string, a *artifact.Artifact) string {
	if language == "en" {
		return fallbackEnglish(a)
	}
	return fallbackKorean(a)
}

func fallbackKorean(a *artifact.Artifact) string {
	if a == nil {
		return "죄송해요, 해당 유물 정보를 찾을 수 없어요. 다른 유물을 선택해 주세요."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", a.DisplayName())
	fmt.Fprintf(&b, "**시대**: %s\n", a.Period)
	fmt.Fprintf(&b, "**재료**: %s\n", a.Material)
	fmt.Fprintf(&b, "**위치**: %s\n\n", strings.TrimSpace(a.Location+" "+a.Gallery))
	b.WriteString(a.Description)
	if len(a.FunFacts) > 0 {
		b.WriteString("\n\n💡 **알고 계셨나요?**\n")
		for _, fact := range a.FunFacts {
			b.WriteString("• ")
			b.WriteString(fact)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n더 궁금한 점이 있으면 질문해 주세요!")
	return b.String()
}

func fallbackEnglish(a *artifact.Artifact) string {
	if a == nil {
		return "Sorry, I could not find that artifact. Please pick another one."
	}

	name := a.NameEn
	if name == "" {
		name = a.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", name)
	fmt.Fprintf(&b, "**Period**: %s\n", a.Period)
	fmt.Fprintf(&b, "**Material**: %s\n", a.Material)
	fmt.Fprintf(&b, "**Location**: %s\n\n", strings.TrimSpace(a.Location+" "+a.Gallery))
	b.WriteString(a.Description)
	b.WriteString("\n\nFeel free to ask me anything else about it!")
	return b.String()
}

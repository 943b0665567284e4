// Package quiz 根据文物信息生成选择题：优先调用大模型，失败时回退到本地模板。
package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	quizmodel "github.com/zhouzirui/museum-guide/backend/internal/model/quiz"
	"github.com/zhouzirui/museum-guide/backend/internal/service/llm"
	"github.com/zhouzirui/museum-guide/backend/internal/telemetry"
)

// Config 控制出题服务的行为。
type Config struct {
	UseLLM      bool
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
}

// Generator 负责为单个文物生成一道题，Generate 不会返回错误。
type Generator struct {
	catalog  artifact.Store
	provider llm.Provider
	cfg      Config
	log      *zap.SugaredLogger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option customises a Generator.
type Option func(*Generator)

// WithRand 替换模板出题使用的随机源，测试中用于固定结果。
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithLogger 替换默认日志。
func WithLogger(log *zap.SugaredLogger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// NewGenerator 创建出题服务。provider 为 nil 时只使用模板。
func NewGenerator(catalog artifact.Store, provider llm.Provider, cfg Config, opts ...Option) *Generator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 500
	}

	g := &Generator{
		catalog:  catalog,
		provider: provider,
		cfg:      cfg,
		log:      logger.Named("quiz"),
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x2545f4914f6cdd1d)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LLMEnabled 返回是否会尝试调用大模型。
func (g *Generator) LLMEnabled() bool {
	return g != nil && g.cfg.UseLLM && g.provider != nil
}

// Generate 为文物生成一道题。大模型调用只尝试一次，超时或输出不合法时直接使用 Fallback。
func (g *Generator) Generate(ctx context.Context, a artifact.Artifact, difficulty quizmodel.Difficulty) quizmodel.Item {
	ctx, span := telemetry.Tracer.Start(ctx, "quiz.generate")
	defer span.End()
	span.SetAttributes(attribute.String("artifact.id", a.ID))

	var item quizmodel.Item
	if g.LLMEnabled() {
		generated, err := g.generateWithLLM(ctx, a, difficulty)
		if err != nil {
			g.log.Warnw("llm quiz generation failed, use fallback", "artifact", a.ID, "error", err)
			span.RecordError(err)
			item = Fallback(a)
		} else {
			item = generated
		}
	} else {
		item = g.fromTemplate(a, difficulty)
	}
	if !item.Valid() {
		g.log.Warnw("generated quiz is not playable, use fallback", "artifact", a.ID, "strategy", item.Strategy)
		item = Fallback(a)
	}
	span.SetAttributes(attribute.String("quiz.strategy", string(item.Strategy)))

	item.ID = uuid.NewString()
	item.ArtifactID = a.ID
	return item
}

func (g *Generator) generateWithLLM(ctx context.Context, a artifact.Artifact, difficulty quizmodel.Difficulty) (quizmodel.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	raw, err := g.provider.Complete(ctx, llm.Request{
		System:      quizSystemPrompt,
		Prompt:      buildPrompt(a, difficulty),
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return quizmodel.Item{}, err
	}
	if err := ctx.Err(); err != nil {
		return quizmodel.Item{}, err
	}

	item, err := parseItem(raw)
	if err != nil {
		return quizmodel.Item{}, err
	}
	if strings.TrimSpace(item.Explanation) == "" {
		item.Explanation = defaultExplanation(a)
	}
	return item, nil
}

// Template 使用指定模板为文物出题，无法凑出至少两个选项时回退到 Fallback。
func (g *Generator) Template(a artifact.Artifact, strategy quizmodel.Strategy) quizmodel.Item {
	g.mu.Lock()
	defer g.mu.Unlock()

	if strategy == quizmodel.StrategyCurated {
		return g.curated(a)
	}

	var (
		question string
		correct  string
		pool     []string
	)

	switch strategy {
	case quizmodel.StrategyName:
		question = fmt.Sprintf("이 유물의 특징이에요.\n%s\n\n이 유물의 이름은 무엇일까요?", truncateRunes(a.Description, 100))
		correct = a.Name
		for _, other := range g.catalog.List() {
			if other.ID != a.ID {
				pool = append(pool, other.Name)
			}
		}
	case quizmodel.StrategyPeriod:
		question = fmt.Sprintf("'%s'은(는) 어느 시대에 만들어졌을까요?", a.Name)
		correct = a.Period
		era := eraOf(a.Period)
		for _, candidate := range periodDistractors {
			if era != "" && eraOf(candidate) == era {
				continue
			}
			pool = append(pool, candidate)
		}
	case quizmodel.StrategyMaterial:
		question = fmt.Sprintf("'%s'은(는) 무엇으로 만들어졌을까요?", a.Name)
		correct = a.Material
		pool = append(pool, materialDistractors...)
	case quizmodel.StrategyFact:
		if len(a.FunFacts) > 0 {
			question = fmt.Sprintf("'%s'에 대한 설명으로 맞는 것은 무엇일까요?", a.Name)
			correct = a.FunFacts[g.rng.IntN(len(a.FunFacts))]
			for _, other := range g.catalog.List() {
				if other.ID != a.ID {
					pool = append(pool, other.FunFacts...)
				}
			}
		}
	}

	correct = strings.TrimSpace(correct)
	if correct == "" {
		return Fallback(a)
	}

	options := append([]string{correct}, g.pickDistractors(correct, pool, 3)...)
	if len(options) < 2 {
		return Fallback(a)
	}
	g.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	answer := -1
	for i, option := range options {
		if option == correct {
			answer = i
			break
		}
	}

	return quizmodel.Item{
		ArtifactID:  a.ID,
		Question:    question,
		Options:     options,
		Answer:      answer,
		Explanation: defaultExplanation(a),
		Strategy:    strategy,
	}
}

// curated 打乱馆藏自带题目的选项并按内容重新定位答案。调用方需持有 g.mu。
func (g *Generator) curated(a artifact.Artifact) quizmodel.Item {
	q := a.Quiz
	if q == nil || strings.TrimSpace(q.Question) == "" || q.Answer < 0 || q.Answer >= len(q.Options) {
		return Fallback(a)
	}
	correct := strings.TrimSpace(q.Options[q.Answer])
	if correct == "" {
		return Fallback(a)
	}

	options := make([]string, 0, len(q.Options))
	seen := make(map[string]struct{}, len(q.Options))
	for _, raw := range q.Options {
		option := strings.TrimSpace(raw)
		if option == "" {
			continue
		}
		if _, dup := seen[option]; dup {
			continue
		}
		seen[option] = struct{}{}
		options = append(options, option)
	}
	if len(options) < 2 {
		return Fallback(a)
	}
	g.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	answer := slices.Index(options, correct)
	explanation := strings.TrimSpace(q.Explanation)
	if explanation == "" {
		explanation = defaultExplanation(a)
	}
	return quizmodel.Item{
		ArtifactID:  a.ID,
		Question:    strings.TrimSpace(q.Question),
		Options:     options,
		Answer:      answer,
		Explanation: explanation,
		Strategy:    quizmodel.StrategyCurated,
	}
}

func (g *Generator) fromTemplate(a artifact.Artifact, difficulty quizmodel.Difficulty) quizmodel.Item {
	strategies := strategiesFor(a, difficulty)
	g.mu.Lock()
	strategy := strategies[g.rng.IntN(len(strategies))]
	g.mu.Unlock()
	return g.Template(a, strategy)
}

// pickDistractors 去重并排除与正确答案相同或互相包含的候选。调用方需持有 g.mu。
func (g *Generator) pickDistractors(correct string, pool []string, n int) []string {
	seen := map[string]struct{}{correct: {}}
	candidates := make([]string, 0, len(pool))
	for _, raw := range pool {
		candidate := strings.TrimSpace(raw)
		if candidate == "" {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		if strings.Contains(correct, candidate) || strings.Contains(candidate, correct) {
			continue
		}
		seen[candidate] = struct{}{}
		candidates = append(candidates, candidate)
	}

	g.rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// strategiesFor 按难度挑选模板；馆藏自带题目只出现在默认难度池中。
func strategiesFor(a artifact.Artifact, difficulty quizmodel.Difficulty) []quizmodel.Strategy {
	switch difficulty {
	case quizmodel.DifficultyEasy:
		return []quizmodel.Strategy{quizmodel.StrategyName, quizmodel.StrategyPeriod}
	case quizmodel.DifficultyHard:
		return []quizmodel.Strategy{quizmodel.StrategyMaterial, quizmodel.StrategyFact}
	default:
		strategies := []quizmodel.Strategy{
			quizmodel.StrategyName,
			quizmodel.StrategyPeriod,
			quizmodel.StrategyMaterial,
			quizmodel.StrategyFact,
		}
		if a.Quiz != nil {
			strategies = append(strategies, quizmodel.StrategyCurated)
		}
		return strategies
	}
}

var periodDistractors = []string{"청동기시대", "고조선", "삼국시대", "통일신라", "고려", "조선"}

var materialDistractors = []string{"금", "청동", "옥", "종이", "청자", "백자", "대리석", "화강암", "토기", "비단"}

// FallbackEras 是兜底题目的固定选项。
var FallbackEras = []string{"청동기시대", "삼국시대", "고려시대", "조선시대"}

// Fallback 生成确定性的“哪个时代”题目，结果只取决于文物的名称与时代。
func Fallback(a artifact.Artifact) quizmodel.Item {
	period := strings.TrimSpace(a.Period)
	if period == "" {
		period = "시대 미상"
	}

	options := append([]string(nil), FallbackEras...)
	answer := -1
	bucket := eraBucket(period)
	for i, era := range options {
		if era == bucket {
			answer = i
			break
		}
	}
	if answer == -1 {
		answer = len(options) - 1
		options[answer] = period
	}

	return quizmodel.Item{
		ArtifactID:  a.ID,
		Question:    fmt.Sprintf("'%s'은(는) 어느 시대에 만들어졌을까요?", a.Name),
		Options:     options,
		Answer:      answer,
		Explanation: fmt.Sprintf("%s은(는) %s에 만들어졌어요.", a.Name, period),
		Strategy:    quizmodel.StrategyFallback,
	}
}

// eraBucket 把时代描述映射到 FallbackEras 之一，统一新罗等无法归类时返回空串。
func eraBucket(period string) string {
	switch eraOf(period) {
	case "청동기":
		return "청동기시대"
	case "삼국":
		return "삼국시대"
	case "고려":
		return "고려시대"
	case "조선":
		return "조선시대"
	default:
		return ""
	}
}

func eraOf(period string) string {
	switch {
	case strings.Contains(period, "통일신라"):
		return "통일신라"
	case strings.Contains(period, "청동기"), strings.Contains(period, "고조선"), strings.Contains(period, "선사"):
		return "청동기"
	case strings.Contains(period, "삼국"), strings.Contains(period, "신라"), strings.Contains(period, "백제"),
		strings.Contains(period, "고구려"), strings.Contains(period, "가야"):
		return "삼국"
	case strings.Contains(period, "고려"):
		return "고려"
	case strings.Contains(period, "조선"):
		return "조선"
	default:
		return ""
	}
}

func defaultExplanation(a artifact.Artifact) string {
	return fmt.Sprintf("%s: %s", a.Name, truncateRunes(a.Description, 150))
}

func truncateRunes(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "..."
}

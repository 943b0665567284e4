package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/museum-guide/backend/internal/config"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	chatservice "github.com/zhouzirui/museum-guide/backend/internal/service/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/service/dialogue"
	"github.com/zhouzirui/museum-guide/backend/internal/service/llm"
	"github.com/zhouzirui/museum-guide/backend/internal/service/quiz"
	"github.com/zhouzirui/museum-guide/backend/internal/store"
)

func main() {
	language := flag.String("lang", "ko", "会话语言: ko 或 en")
	offline := flag.Bool("offline", false, "不调用大模型，只使用模板出题")
	engine := flag.String("store", "memory", "会话存储: memory, bolt, sqlite")
	path := flag.String("path", "", "bolt/sqlite 文件路径")
	logLevel := flag.String("log", "warn", "日志级别")
	flag.Parse()

	logger.SetLevel(*logLevel)
	log := logger.Named("quizcli")

	if err := godotenv.Load(); err != nil {
		log.Debugw("no .env file loaded", "error", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("配置加载失败", "error", err)
	}

	ctx := context.Background()
	var provider llm.Provider
	if !*offline {
		provider, err = llm.New(ctx, cfg)
		if err != nil && !errors.Is(err, llm.ErrUnavailable) {
			log.Warnw("llm provider unavailable, using templates", "error", err)
		}
		if err != nil {
			provider = nil
		}
	}

	storeCfg := config.StoreConfig{Engine: *engine, Path: *path}
	if storeCfg.Path == "" && *engine != store.EngineMemory {
		storeCfg.Path = "data/quizcli." + *engine
	}
	st, err := store.NewByEngine(storeCfg)
	if err != nil {
		log.Fatalw("failed to open session store", "error", err)
	}
	defer st.Close()

	catalog := artifact.NewMemoryStore(artifact.Seed())
	generator := quiz.NewGenerator(catalog, provider, quiz.Config{
		UseLLM:      cfg.Quiz.LLMEnabled,
		Timeout:     cfg.Quiz.Timeout,
		MaxTokens:   cfg.Quiz.MaxTokens,
		Temperature: cfg.Quiz.Temperature,
	})
	controller := dialogue.NewController(catalog, profile.NewMemoryStore(profile.Seed()), generator,
		dialogue.WithOfferSize(cfg.Guide.OfferSize))
	sessions := chatservice.NewService(st, controller)

	if err := run(ctx, sessions, *language, os.Stdin, os.Stdout); err != nil {
		log.Fatalw("quiz session failed", "error", err)
	}
}

func run(ctx context.Context, sessions *chatservice.Service, language string, in io.Reader, out io.Writer) error {
	created, err := sessions.CreateSession(ctx, language)
	if err != nil {
		return err
	}
	last := printTurns(out, created.Turns, nil)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		action := toAction(line, last)
		progress := dialogue.WithProgress(func(turn chat.Turn) {
			fmt.Fprint(out, render(turn))
		})
		res, err := sessions.Apply(ctx, created.Session.ID, action, progress)
		if err != nil && res.Session.ID == "" {
			return err
		}
		last = printTurns(out, res.Turns, last)
		if res.Session.Stage == chat.StageEnded {
			return nil
		}
	}
}

// printTurns 输出新消息并返回最后一个带交互内容的 payload。
func printTurns(out io.Writer, turns []chat.Turn, last *chat.Payload) *chat.Payload {
	for _, turn := range turns {
		if turn.Role == chat.RoleUser {
			continue
		}
		fmt.Fprint(out, render(turn))
		if turn.Payload != nil && turn.Payload.Kind != chat.PayloadLoading {
			last = turn.Payload
		}
	}
	return last
}

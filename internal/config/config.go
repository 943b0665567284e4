package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	OpenAI    OpenAIConfig
	Quiz      QuizConfig
	Guide     GuideConfig
	Store     StoreConfig
	Log       LogConfig
	Catalog   CatalogConfig
	Telemetry TelemetryConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	quiz, err := loadQuizConfig()
	if err != nil {
		return nil, err
	}

	guide, err := loadGuideConfig()
	if err != nil {
		return nil, err
	}

	store, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}

	telemetry, err := loadTelemetryConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		AI:        ai,
		OpenAI:    loadOpenAIConfig(),
		Quiz:      quiz,
		Guide:     guide,
		Store:     store,
		Log:       LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "info")},
		Catalog:   CatalogConfig{File: strings.TrimSpace(os.Getenv("CATALOG_FILE"))},
		Telemetry: telemetry,
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
	// AllowedOrigins 为空时允许任意来源。
	AllowedOrigins []string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	origins := splitList(os.Getenv("CORS_ORIGINS"))

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AIConfig 描述 Ark 大模型相关配置。
type AIConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// Enabled 表示是否提供了必需的密钥。
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel 使用配置创建一个模型实例。
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("Ark 凭证或模型配置缺失，至少提供 ARK_API_KEY + Model 或 AK/SK 组合")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	var maxTokens *int
	if c.MaxTokens != nil {
		val := *c.MaxTokens
		maxTokens = &val
	}

	// 出题与导览都只允许一次有界调用，关闭 SDK 内置重试。
	retryTimes := 0
	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
		RetryTimes:  &retryTimes,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:   strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:   strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:       strings.TrimSpace(os.Getenv("Model")),
		BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}, nil
}

// OpenAIConfig 描述 OpenAI 兼容接口，Ark 未配置时使用。
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Enabled 表示是否提供了 API Key。
func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		APIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		BaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Model:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

// QuizConfig 控制出题行为。
type QuizConfig struct {
	LLMEnabled  bool
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
	Concurrency int
}

func loadQuizConfig() (QuizConfig, error) {
	enabled, err := parseBoolEnv("QUIZ_LLM_ENABLED", true)
	if err != nil {
		return QuizConfig{}, err
	}

	timeout, err := parseDurationEnv("QUIZ_TIMEOUT", 8*time.Second)
	if err != nil {
		return QuizConfig{}, err
	}

	maxTokens, err := parseIntEnvOrDefault("QUIZ_MAX_TOKENS", 500)
	if err != nil {
		return QuizConfig{}, err
	}

	temperature := float32(0.7)
	if override, err := parseOptionalFloatEnv("QUIZ_TEMPERATURE"); err != nil {
		return QuizConfig{}, err
	} else if override != nil {
		temperature = float32(*override)
	}

	concurrency, err := parseIntEnvOrDefault("QUIZ_CONCURRENCY", 4)
	if err != nil {
		return QuizConfig{}, err
	}
	if concurrency < 1 {
		concurrency = 1
	}

	return QuizConfig{
		LLMEnabled:  enabled,
		Timeout:     timeout,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Concurrency: concurrency,
	}, nil
}

// GuideConfig 控制对话语言与导览问答。
type GuideConfig struct {
	Language  string
	OfferSize int
	MaxTokens int
	Timeout   time.Duration
}

func loadGuideConfig() (GuideConfig, error) {
	language := strings.ToLower(getEnvOrDefault("GUIDE_LANGUAGE", "ko"))
	if language != "ko" && language != "en" {
		return GuideConfig{}, fmt.Errorf("invalid GUIDE_LANGUAGE value %q: want ko or en", language)
	}

	offer, err := parseIntEnvOrDefault("GUIDE_OFFER_SIZE", 10)
	if err != nil {
		return GuideConfig{}, err
	}

	maxTokens, err := parseIntEnvOrDefault("GUIDE_MAX_TOKENS", 1024)
	if err != nil {
		return GuideConfig{}, err
	}

	timeout, err := parseDurationEnv("GUIDE_TIMEOUT", 20*time.Second)
	if err != nil {
		return GuideConfig{}, err
	}

	return GuideConfig{
		Language:  language,
		OfferSize: offer,
		MaxTokens: maxTokens,
		Timeout:   timeout,
	}, nil
}

// StoreConfig 选择会话存储引擎。TTL 对 redis 是键过期时间，对 sqlite 是定期清理的阈值。
type StoreConfig struct {
	Engine        string
	Path          string
	RedisURL      string
	TTL           time.Duration
	PurgeInterval time.Duration
}

func loadStoreConfig() (StoreConfig, error) {
	engine := strings.ToLower(getEnvOrDefault("SESSION_STORE", "memory"))
	switch engine {
	case "memory", "bolt", "sqlite", "redis":
	default:
		return StoreConfig{}, fmt.Errorf("invalid SESSION_STORE value %q", engine)
	}

	ttl, err := parseDurationEnv("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return StoreConfig{}, err
	}

	purge, err := parseDurationEnv("SESSION_PURGE_INTERVAL", 10*time.Minute)
	if err != nil {
		return StoreConfig{}, err
	}

	path := strings.TrimSpace(os.Getenv("SESSION_STORE_PATH"))
	if path == "" {
		switch engine {
		case "bolt":
			path = "data/sessions.bolt"
		case "sqlite":
			path = "data/sessions.db"
		}
	}

	return StoreConfig{
		Engine:        engine,
		Path:          path,
		RedisURL:      getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		TTL:           ttl,
		PurgeInterval: purge,
	}, nil
}

// LogConfig 描述日志级别。
type LogConfig struct {
	Level string
}

// CatalogConfig 指向可选的文物 JSON 文件，留空使用内置数据。
type CatalogConfig struct {
	File string
}

// TelemetryConfig 描述 OTLP 链路追踪导出，Endpoint 为空时关闭。
type TelemetryConfig struct {
	Endpoint    string
	Insecure    bool
	ServiceName string
}

func loadTelemetryConfig() (TelemetryConfig, error) {
	insecure, err := parseBoolEnv("OTEL_EXPORTER_OTLP_INSECURE", true)
	if err != nil {
		return TelemetryConfig{}, err
	}

	return TelemetryConfig{
		Endpoint:    strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		Insecure:    insecure,
		ServiceName: getEnvOrDefault("OTEL_SERVICE_NAME", "museum-guide"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
	}
	return val, nil
}

func parseIntEnvOrDefault(key string, defaultValue int) (int, error) {
	val, err := parseOptionalIntEnv(key)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return defaultValue, nil
	}
	return *val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

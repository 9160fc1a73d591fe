package ai

import (
	"time"

	openai "github.com/sashabaranov/go-openai"

	"pagespec_server/internal/logger"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = openai.GPT4o

// Config holds the OpenAI connection settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Generator asks a chat model for page specifications.
type Generator struct {
	client     *openai.Client
	model      string
	log        *logger.Logger
	retryDelay time.Duration
}

// NewGenerator returns nil when no API key is configured, leaving the
// deterministic mapper as the only engine.
func NewGenerator(cfg Config, log *logger.Logger) *Generator {
	if cfg.APIKey == "" {
		return nil
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Generator{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      model,
		log:        log,
		retryDelay: 2 * time.Second,
	}
}

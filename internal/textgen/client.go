package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
)

var ErrEmptyCompletion = errors.New("empty completion")

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type CompletionOptions struct {
	Temperature float64
	MaxTokens   int64
}

// Client talks to any OpenAI compatible chat completion endpoint. Every
// call is a single attempt bounded by the configured timeout.
type Client struct {
	api     openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:     openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (c *Client) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(opts.MaxTokens)
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to complete prompt: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

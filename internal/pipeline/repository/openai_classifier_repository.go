package repository

import (
	"context"
	"fmt"
	"time"

	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/ratelimit"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

type openaiClassifierRepository struct {
	client         *openai.Client
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewOpenAIClassifierRepository creates an OpenAI-backed classifier.
func NewOpenAIClassifierRepository(cfg *config.Config, log *logger.Logger) IndustryClassifier {
	rpm := cfg.AI.RequestsPerMinute
	if rpm <= 0 {
		rpm = 20
	}
	secondsPerRequest := time.Minute / time.Duration(rpm)

	return &openaiClassifierRepository{
		client:         openai.NewClient(cfg.AI.OpenAIAPIKey),
		cfg:            cfg,
		logger:         log,
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.AI.MaxTokensPerMinute),
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// ClassifyIndustry asks the model for the industry category.
func (r *openaiClassifierRepository) ClassifyIndustry(ctx context.Context, name, description string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	model := r.cfg.AI.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildClassifyIndustryPrompt(name, description),
			},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenAI API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content found in OpenAI response")
	}

	if err := r.tokenLimiter.Wait(ctx, resp.Usage.TotalTokens); err != nil {
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}
	if resp.Usage.TotalTokens > r.cfg.AI.MaxTokensPerMinute/2 {
		r.logger.Warn("Token has exceeded 50% of the limit", logger.IntField("remaining", r.tokenLimiter.GetRemaining()))
	}

	return parseClassifierAnswer(resp.Choices[0].Message.Content), nil
}

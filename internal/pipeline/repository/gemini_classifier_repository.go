package repository

import (
	"context"
	"fmt"
	"time"

	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/ratelimit"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

type geminiClassifierRepository struct {
	genAiClient    *genai.Client
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewGeminiClassifierRepository creates a Gemini-backed classifier.
func NewGeminiClassifierRepository(cfg *config.Config, log *logger.Logger) (IndustryClassifier, error) {
	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.AI.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	rpm := cfg.AI.RequestsPerMinute
	if rpm <= 0 {
		rpm = 20
	}
	secondsPerRequest := time.Minute / time.Duration(rpm)

	return &geminiClassifierRepository{
		genAiClient:    genAiClient,
		cfg:            cfg,
		logger:         log,
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.AI.MaxTokensPerMinute),
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}, nil
}

// ClassifyIndustry asks the model for the industry category. Tokens are
// counted up front so the budget is spent before the request is sent.
func (r *geminiClassifierRepository) ClassifyIndustry(ctx context.Context, name, description string) (string, error) {
	prompt := BuildClassifyIndustryPrompt(name, description)
	model := r.cfg.AI.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	tokenResp, err := r.genAiClient.Models.CountTokens(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to count tokens: %w", err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(tokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)

	if err := r.tokenLimiter.Wait(ctx, int(tokenResp.TotalTokens)); err != nil {
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Gemini API: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no content found in Gemini response")
	}
	return parseClassifierAnswer(text), nil
}

package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// TokenLimiter enforces a per-minute token budget for LLM API calls.
// Unlike a request limiter it is fed the actual token usage of each
// response, so heavy prompts consume proportionally more of the budget.
type TokenLimiter struct {
	limiter      *rate.Limiter
	maxPerMinute int
}

// NewTokenLimiter creates a limiter allowing maxPerMinute tokens per minute.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	return &TokenLimiter{
		limiter:      rate.NewLimiter(rate.Limit(float64(maxPerMinute)/60.0), maxPerMinute),
		maxPerMinute: maxPerMinute,
	}
}

// Wait blocks until the given number of tokens is available. Requests
// larger than the whole budget are clamped so they can still proceed.
func (t *TokenLimiter) Wait(ctx context.Context, tokens int) error {
	if tokens <= 0 {
		return nil
	}
	if tokens > t.maxPerMinute {
		tokens = t.maxPerMinute
	}
	return t.limiter.WaitN(ctx, tokens)
}

// GetRemaining reports the tokens currently available in the bucket.
func (t *TokenLimiter) GetRemaining() int {
	return int(t.limiter.Tokens())
}

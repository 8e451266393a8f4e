package repository

import (
	"context"
	"fmt"
	"strings"

	"pe-portfolio-aggregator/internal/classify"
	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/pkg/logger"
)

// IndustryClassifier assigns one of the standard industry categories to
// a company. Implementations call a language model; the keyword
// classifier in classify is the fallback when no provider is configured.
type IndustryClassifier interface {
	ClassifyIndustry(ctx context.Context, name, description string) (string, error)
}

// NewIndustryClassifier selects the classifier backend from config.
// Returns nil when no provider is configured.
func NewIndustryClassifier(cfg *config.Config, log *logger.Logger) (IndustryClassifier, error) {
	switch cfg.AI.Provider {
	case "openai":
		return NewOpenAIClassifierRepository(cfg, log), nil
	case "gemini":
		return NewGeminiClassifierRepository(cfg, log)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.AI.Provider)
	}
}

// BuildClassifyIndustryPrompt asks the model to pick exactly one
// category from the standard list.
func BuildClassifyIndustryPrompt(name, description string) string {
	categories := strings.Join(classify.IndustryCategoryNames(), "\n- ")
	return fmt.Sprintf(`You are classifying portfolio companies into industry categories.

Company: %s
Description: %s

Pick the single best category from this list and respond with the category name only, nothing else:
- %s`, name, description, categories)
}

// parseClassifierAnswer trims model decoration and validates the answer
// against the standard category list. Unknown answers map to Other.
func parseClassifierAnswer(raw string) string {
	answer := strings.TrimSpace(raw)
	answer = strings.Trim(answer, "\"'`.")
	answer = strings.TrimSpace(answer)
	if classify.IsStandardIndustryCategory(answer) {
		return answer
	}
	return classify.IndustryCategoryOther
}

// File: services/article/validate.go
package article

import (
	"fmt"
	"strings"

	"pressroom/config"
	"pressroom/models"
	"pressroom/utils"
)

func (s *DefaultArticleService) minContentLen() int {
	if s.MinContentLen > 0 {
		return s.MinContentLen
	}
	if config.AppConfig.ArticleMinContentLen > 0 {
		return config.AppConfig.ArticleMinContentLen
	}
	return 200
}

func (s *DefaultArticleService) flagThreshold() int64 {
	if s.FlagThreshold > 0 {
		return s.FlagThreshold
	}
	if config.AppConfig.ArticleFlagThreshold > 0 {
		return int64(config.AppConfig.ArticleFlagThreshold)
	}
	return 5
}

// validateForSubmission collects every unmet submission guard so the
// client can show the author the full list at once.
func (s *DefaultArticleService) validateForSubmission(a *models.Article) error {
	var reasons []string

	if strings.TrimSpace(a.Title) == "" {
		reasons = append(reasons, "title is required")
	}
	if strings.TrimSpace(a.Category) == "" {
		reasons = append(reasons, "category is required")
	} else if !models.ValidCategory(a.Category) {
		reasons = append(reasons, fmt.Sprintf("unknown category %q", a.Category))
	}
	if minLen := s.minContentLen(); len(a.Content) < minLen {
		reasons = append(reasons, fmt.Sprintf("content must be at least %d characters (currently %d)", minLen, len(a.Content)))
	}
	if len(a.Sources) == 0 {
		reasons = append(reasons, "at least one source is required")
	}

	if len(reasons) > 0 {
		return &utils.ValidationError{Reasons: reasons}
	}
	return nil
}

// validateInput checks the author-editable fields on create and save.
func validateInput(input ArticleInput) error {
	var reasons []string

	if strings.TrimSpace(input.Title) == "" {
		reasons = append(reasons, "title is required")
	}
	if input.Category != "" && !models.ValidCategory(strings.ToLower(input.Category)) {
		reasons = append(reasons, fmt.Sprintf("unknown category %q", input.Category))
	}
	for i, src := range input.Sources {
		if strings.TrimSpace(src.URL) == "" {
			reasons = append(reasons, fmt.Sprintf("source %d is missing its url", i+1))
		}
	}

	if len(reasons) > 0 {
		return &utils.ValidationError{Reasons: reasons}
	}
	return nil
}

package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/contract"
	"go.uber.org/zap"
)

const (
	motivationPrompt = "Öğrenciler için Türkçe, kısa ve ilham verici bir motivasyon sözü üret. Sadece sözü döndür."
	rewritePrompt    = "Aşağıdaki okul duyurusunu daha profesyonel ve kurumsal bir dille yeniden yaz (Türkçe). Sadece yeni metni döndür: %q"

	// EmptyMotivation is shown when the model answers with nothing
	EmptyMotivation = "Başarı, hazırlık ve fırsatın buluştuğu noktadır."
)

var (
	motivationOptions = CompletionOptions{Temperature: 0.8, MaxTokens: 100}
	rewriteOptions    = CompletionOptions{Temperature: 0.7}
)

var _ contract.TextGenerator = (*Client)(nil)

func (c *Client) GenerateMotivation(ctx context.Context) string {
	text, err := c.Complete(ctx, motivationPrompt, motivationOptions)
	if errors.Is(err, ErrEmptyCompletion) {
		return EmptyMotivation
	}
	if err != nil {
		c.logger.Warn("Failed to generate motivation", zap.Error(err))
		return domain.FallbackMotivation
	}
	return cleanQuotes(text)
}

// RewriteAnnouncement returns text unchanged when the model fails
func (c *Client) RewriteAnnouncement(ctx context.Context, text string) string {
	out, err := c.Complete(ctx, fmt.Sprintf(rewritePrompt, text), rewriteOptions)
	if err != nil {
		if !errors.Is(err, ErrEmptyCompletion) {
			c.logger.Warn("Failed to rewrite announcement", zap.Error(err))
		}
		return text
	}
	return cleanQuotes(out)
}

// cleanQuotes strips the quotes models like to wrap short answers in
func cleanQuotes(s string) string {
	s = strings.TrimSpace(s)
	if cleaned := strings.Trim(s, "\"“”'"); cleaned != "" {
		return strings.TrimSpace(cleaned)
	}
	return s
}

// Static is used when no AI backend is configured
type Static struct{}

var _ contract.TextGenerator = Static{}

func (Static) GenerateMotivation(context.Context) string {
	return domain.FallbackMotivation
}

func (Static) RewriteAnnouncement(_ context.Context, text string) string {
	return text
}

// Package gemini is the fallback translation provider, used when the
// primary provider errors out or its request budget is exhausted.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/deusflow/malariawatch/internal/ratelimit"
)

const (
	model          = "gemini-1.5-flash"
	requestTimeout = 20 * time.Second
	maxInputRunes  = 6000
)

type Client struct {
	client *genai.Client
	budget *ratelimit.AIBudget
}

func NewClient(ctx context.Context, apiKey string, budget *ratelimit.AIBudget) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client, budget: budget}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Translate renders text into the target language. Gemini likes to wrap
// answers in preamble, so the prompt demands the bare translation and the
// response is stripped of fences and label prefixes.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if c.budget != nil {
		if err := c.budget.UseGemini(); err != nil {
			return "", err
		}
	}

	text = sanitize(text)
	if text == "" {
		return "", errors.New("gemini translate: empty input")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	m := c.client.GenerativeModel(model)
	prompt := fmt.Sprintf(
		"Translate the following text to %s. Do not translate proper names of organizations or brands. Respond with only the translation, no preamble or labels.\n\n%s",
		languageName(targetLang), text)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini translate: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini translate: no response")
	}

	out := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	out = stripDecoration(out)
	if out == "" {
		return "", errors.New("gemini translate: blank translation")
	}
	return out, nil
}

func sanitize(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) > maxInputRunes {
		runes := []rune(text)
		trimmed := string(runes[:maxInputRunes])
		if idx := strings.LastIndex(trimmed, ". "); idx > 1200 {
			trimmed = trimmed[:idx+1]
		}
		text = trimmed
	}
	return strings.TrimSpace(text)
}

func stripDecoration(s string) string {
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	for _, label := range []string{"Translation:", "TRANSLATION:"} {
		s = strings.TrimSpace(strings.TrimPrefix(s, label))
	}
	return s
}

func languageName(code string) string {
	switch strings.ToLower(code) {
	case "en":
		return "English"
	case "fr":
		return "French"
	case "pt":
		return "Portuguese"
	case "es":
		return "Spanish"
	default:
		return code
	}
}

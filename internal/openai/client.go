// Package openai wraps the OpenAI API for the three AI jobs in the
// pipeline: translation, embeddings and duplicate adjudication.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/dedup"
	"github.com/deusflow/malariawatch/internal/logger"
	"github.com/deusflow/malariawatch/internal/ratelimit"
)

const (
	chatModel       = gopenai.GPT4oMini
	adjudicateModel = gopenai.GPT3Dot5Turbo
	embeddingModel  = gopenai.AdaEmbeddingV2

	requestTimeout = 20 * time.Second
	maxEmbedChars  = 8000
	maxSnippetLen  = 500
)

type Client struct {
	api    *gopenai.Client
	budget *ratelimit.AIBudget
}

// New builds a client. budget may be nil for unmetered use (tests).
func New(apiKey string, budget *ratelimit.AIBudget) *Client {
	return &Client{api: gopenai.NewClient(apiKey), budget: budget}
}

// Translate renders text into the target language. It returns an error on
// any failure so the translation pipeline can apply its fallback-to-original
// policy; it never silently returns an empty string.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if c.budget != nil {
		if err := c.budget.UseOpenAI(); err != nil {
			return "", err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: fmt.Sprintf("Translate the following text to %s.", targetLang)},
			{Role: gopenai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("openai translate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai translate: empty response")
	}
	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", errors.New("openai translate: blank translation")
	}
	return translated, nil
}

// Embed produces a vector embedding for similarity comparison. A nil vector
// with nil error means the provider declined; callers treat that comparison
// as "not a duplicate".
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if text = strings.TrimSpace(text); text == "" {
		return nil, nil
	}
	text = truncate(text, maxEmbedChars)
	if c.budget != nil {
		if err := c.budget.UseOpenAI(); err != nil {
			logger.Warn("embedding skipped", "error", err)
			return nil, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(ctx, gopenai.EmbeddingRequest{
		Input: []string{text},
		Model: embeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return resp.Data[0].Embedding, nil
}

// CompareArticles asks the model whether two articles cover the same story.
// A response that cannot be parsed as the expected JSON comes back as a
// zero-confidence non-duplicate verdict rather than an error.
func (c *Client) CompareArticles(ctx context.Context, a, b article.Article) (dedup.Verdict, error) {
	if c.budget != nil {
		if err := c.budget.UseOpenAI(); err != nil {
			return dedup.Verdict{}, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: adjudicateModel,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleUser, Content: comparePrompt(a, b)},
		},
		Temperature: 0.1,
		MaxTokens:   200,
	})
	if err != nil {
		return dedup.Verdict{}, fmt.Errorf("openai adjudicate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return dedup.Verdict{}, errors.New("openai adjudicate: empty response")
	}

	var verdict dedup.Verdict
	raw := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(extractJSON(raw)), &verdict); err != nil {
		logger.Warn("adjudicator returned unparseable verdict, treating as non-duplicate", "response", raw)
		return dedup.Verdict{Reason: "analysis failed"}, nil
	}
	return verdict, nil
}

func comparePrompt(a, b article.Article) string {
	return fmt.Sprintf(`Compare these two news articles and determine if they are duplicates or substantially similar:

Article 1:
Title: %s
Source: %s
Date: %s
Content: %s

Article 2:
Title: %s
Source: %s
Date: %s
Content: %s

Analyze if these articles:
1. Report the same news event
2. Have substantially similar content
3. Are from different sources but cover identical information
4. Are updates of the same story

Respond with JSON only:
{
  "isDuplicate": true/false,
  "confidence": 0.0-1.0,
  "reason": "brief explanation",
  "relationship": "identical/similar_event/update/different"
}`,
		displayTitle(a), a.Source, displayDate(a), snippet(a),
		displayTitle(b), b.Source, displayDate(b), snippet(b))
}

func displayTitle(a article.Article) string {
	if tr, ok := a.Translations["en"]; ok && tr.Title != "" {
		return tr.Title
	}
	return a.Title
}

func displayDate(a article.Article) string {
	if a.PublishedAt == nil {
		return "unknown"
	}
	return a.PublishedAt.Format(time.RFC3339)
}

func snippet(a article.Article) string {
	text := a.Description
	if tr, ok := a.Translations["en"]; ok && tr.Description != "" {
		text = tr.Description
	}
	if text == "" {
		text = a.FullContent
	}
	return truncate(text, maxSnippetLen)
}

// truncate caps s at max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// extractJSON pulls the first {...} block out of a response, tolerating
// models that wrap JSON in prose or code fences.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// Package ratelimit budgets AI provider calls per aggregation run. When the
// budget runs out the callers degrade the same way they do on a provider
// error (untranslated text, non-duplicate), so exhaustion is never fatal.
package ratelimit

import (
	"fmt"
	"sync"

	"github.com/deusflow/malariawatch/internal/logger"
)

// AIBudget tracks per-provider call counts for one run. A limit of 0 means
// unlimited.
type AIBudget struct {
	mu sync.Mutex

	openaiCount int
	geminiCount int
	totalCount  int

	maxOpenAI int
	maxGemini int
	maxTotal  int

	cacheHits   int
	cacheMisses int
	tokensSaved int
}

func NewAIBudget(maxOpenAI, maxGemini, maxTotal int) *AIBudget {
	return &AIBudget{
		maxOpenAI: maxOpenAI,
		maxGemini: maxGemini,
		maxTotal:  maxTotal,
	}
}

// UseOpenAI reserves one OpenAI request, failing when the budget is spent.
func (b *AIBudget) UseOpenAI() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.maxOpenAI > 0 && b.openaiCount >= b.maxOpenAI {
		return fmt.Errorf("openai request budget exhausted (%d/%d)", b.openaiCount, b.maxOpenAI)
	}
	if b.maxTotal > 0 && b.totalCount >= b.maxTotal {
		return fmt.Errorf("total AI request budget exhausted (%d/%d)", b.totalCount, b.maxTotal)
	}
	b.openaiCount++
	b.totalCount++
	b.cacheMisses++
	return nil
}

// UseGemini reserves one Gemini request, failing when the budget is spent.
func (b *AIBudget) UseGemini() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.maxGemini > 0 && b.geminiCount >= b.maxGemini {
		return fmt.Errorf("gemini request budget exhausted (%d/%d)", b.geminiCount, b.maxGemini)
	}
	if b.maxTotal > 0 && b.totalCount >= b.maxTotal {
		return fmt.Errorf("total AI request budget exhausted (%d/%d)", b.totalCount, b.maxTotal)
	}
	b.geminiCount++
	b.totalCount++
	b.cacheMisses++
	return nil
}

// RecordCacheHit notes a translation served from cache instead of a
// provider call.
func (b *AIBudget) RecordCacheHit(estimatedTokens int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cacheHits++
	b.tokensSaved += estimatedTokens
}

func (b *AIBudget) hitRate() float64 {
	total := b.cacheHits + b.cacheMisses
	if total == 0 {
		return 0
	}
	return float64(b.cacheHits) / float64(total) * 100
}

// Stats returns the current usage snapshot.
func (b *AIBudget) Stats() map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	return map[string]interface{}{
		"openai_used":    b.openaiCount,
		"openai_limit":   b.maxOpenAI,
		"gemini_used":    b.geminiCount,
		"gemini_limit":   b.maxGemini,
		"total_used":     b.totalCount,
		"total_limit":    b.maxTotal,
		"cache_hits":     b.cacheHits,
		"cache_misses":   b.cacheMisses,
		"cache_hit_rate": b.hitRate(),
		"tokens_saved":   b.tokensSaved,
	}
}

// LogStats writes the usage summary to the diagnostics sink at run end.
func (b *AIBudget) LogStats() {
	b.mu.Lock()
	defer b.mu.Unlock()

	logger.Info("AI budget usage",
		"openai", fmt.Sprintf("%d/%d", b.openaiCount, b.maxOpenAI),
		"gemini", fmt.Sprintf("%d/%d", b.geminiCount, b.maxGemini),
		"total", fmt.Sprintf("%d/%d", b.totalCount, b.maxTotal),
		"cache_hits", b.cacheHits,
		"cache_misses", b.cacheMisses,
		"tokens_saved", b.tokensSaved,
	)
}

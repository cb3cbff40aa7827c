// Package translate fills the Translations map on each article, running a
// provider chain (OpenAI first, Gemini as fallback) behind a persistent
// text-level cache.
package translate

import (
	"context"
	"fmt"
	"sync"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/logger"
	"github.com/deusflow/malariawatch/internal/metrics"
	"github.com/deusflow/malariawatch/internal/ratelimit"
	"github.com/deusflow/malariawatch/internal/storage"
)

// Provider translates one text into one target language.
type Provider interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// DefaultLanguages are the corpus display languages. Each article is
// translated into all of them except its own source language.
var DefaultLanguages = []string{"en", "fr", "pt", "es"}

const defaultBatchSize = 10

type Pipeline struct {
	providers []Provider
	cache     *storage.TranslationCache
	budget    *ratelimit.AIBudget
	languages []string
	batchSize int
}

// NewPipeline builds a translation pipeline. Providers are tried in order;
// the first success wins. A nil cache disables caching.
func NewPipeline(providers []Provider, cache *storage.TranslationCache, budget *ratelimit.AIBudget) *Pipeline {
	return &Pipeline{
		providers: providers,
		cache:     cache,
		budget:    budget,
		languages: DefaultLanguages,
		batchSize: defaultBatchSize,
	}
}

// Run translates articles in place. Research items keep their original
// scientific wording and are skipped entirely. Provider failures fall back
// to the original text, so the output always has a full set of languages;
// only a cache persist failure is returned, since losing the cache means
// paying for every translation again next run.
func (p *Pipeline) Run(ctx context.Context, articles []article.Article) error {
	if len(p.providers) == 0 || len(articles) == 0 {
		return nil
	}

	for start := 0; start < len(articles); start += p.batchSize {
		end := start + p.batchSize
		if end > len(articles) {
			end = len(articles)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			if articles[i].Type == "research" {
				continue
			}
			wg.Add(1)
			go func(a *article.Article) {
				defer wg.Done()
				p.translateArticle(ctx, a)
			}(&articles[i])
		}
		wg.Wait()

		logger.Debug("translation batch done", "from", start, "to", end)
	}

	if p.cache != nil {
		if err := p.cache.Save(); err != nil {
			return fmt.Errorf("persist translation cache: %w", err)
		}
	}
	return nil
}

func (p *Pipeline) translateArticle(ctx context.Context, a *article.Article) {
	if a.Translations == nil {
		a.Translations = make(map[string]article.Translation)
	}
	for _, lang := range p.languages {
		if lang == a.Language {
			continue
		}
		if existing, ok := a.Translations[lang]; ok && existing.Title != "" {
			continue
		}
		a.Translations[lang] = article.Translation{
			Title:       p.translateText(ctx, a.Title, lang),
			Description: p.translateText(ctx, a.Description, lang),
		}
	}
}

// translateText returns the translation or, on total provider failure, the
// original text. An untranslated article is still worth showing.
func (p *Pipeline) translateText(ctx context.Context, text, lang string) string {
	if text == "" {
		return ""
	}

	if p.cache != nil {
		if cached, ok := p.cache.Get(text, lang); ok {
			if p.budget != nil {
				p.budget.RecordCacheHit(len(text) / 4)
			}
			return cached
		}
	}

	for _, provider := range p.providers {
		translated, err := provider.Translate(ctx, text, lang)
		if err != nil {
			logger.Debug("translation provider failed", "lang", lang, "error", err)
			continue
		}
		if p.cache != nil {
			p.cache.Put(text, lang, translated)
		}
		metrics.Global.IncrementSuccessfulTranslations()
		return translated
	}

	logger.Warn("all translation providers failed, keeping original", "lang", lang)
	metrics.Global.IncrementFailedTranslations()
	return text
}

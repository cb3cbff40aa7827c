// Package aggregate runs the full collection pipeline: fetch, normalize,
// deduplicate, score, translate and merge into the existing corpus.
package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/dates"
	"github.com/deusflow/malariawatch/internal/dedup"
	"github.com/deusflow/malariawatch/internal/logger"
	"github.com/deusflow/malariawatch/internal/metrics"
	"github.com/deusflow/malariawatch/internal/score"
	"github.com/deusflow/malariawatch/internal/sources"
	"github.com/deusflow/malariawatch/internal/translate"
)

type Pipeline struct {
	collectors []sources.Collector
	translator *translate.Pipeline
	deduper    *dedup.Deduper
	fastOpts   dedup.FastOptions
	maxAge     time.Duration
	enrich     bool
	now        func() time.Time
}

type Options struct {
	Collectors []sources.Collector
	Translator *translate.Pipeline
	Deduper    *dedup.Deduper
	FastOpts   dedup.FastOptions
	MaxAge     time.Duration
	Enrich     bool
}

func New(opts Options) *Pipeline {
	if opts.FastOpts.Threshold == 0 {
		opts.FastOpts = dedup.DefaultFastOptions()
	}
	return &Pipeline{
		collectors: opts.Collectors,
		translator: opts.Translator,
		deduper:    opts.Deduper,
		fastOpts:   opts.FastOpts,
		maxAge:     opts.MaxAge,
		enrich:     opts.Enrich,
		now:        time.Now,
	}
}

// Run executes one aggregation pass against the existing corpus and returns
// the merged, sorted corpus. The input slice is never mutated.
func (p *Pipeline) Run(ctx context.Context, existing []article.Article) ([]article.Article, error) {
	start := p.now()

	raws := sources.FetchAll(ctx, p.collectors)
	if p.enrich {
		sources.EnrichContent(ctx, raws)
	}

	incoming := p.normalize(raws)

	unique := dedup.Fast(incoming, existing, p.fastOpts)
	metrics.Global.AddDuplicates(len(incoming) - len(unique))
	logger.Info("fast dedup complete", "in", len(incoming), "out", len(unique))

	scored := p.scoreFilter(unique)
	fresh := p.recencyFilter(scored)

	if p.translator != nil {
		if err := p.translator.Run(ctx, fresh); err != nil {
			return nil, fmt.Errorf("translation stage: %w", err)
		}
	}

	final := fresh
	if p.deduper != nil {
		var decisions []dedup.Decision
		var stats dedup.Stats
		final, decisions, stats = p.deduper.Deduplicate(ctx, fresh, existing)
		metrics.Global.AddDuplicates(len(decisions))
		logger.Info("semantic dedup complete",
			"in", len(fresh), "out", len(final),
			"byTitle", stats.ByTitle, "byEmbedding", stats.ByEmbedding,
			"byAdjudicator", stats.ByAdjudicator, "errors", stats.Errors)
	}

	merged := make([]article.Article, 0, len(existing)+len(final))
	merged = append(merged, existing...)
	merged = append(merged, final...)
	article.SortByDate(merged)

	metrics.Global.AddAppended(len(final))
	metrics.Global.RecordRun(p.now().Sub(start))
	p.logRunSummary(final)
	return merged, nil
}

func (p *Pipeline) normalize(raws []article.Raw) []article.Article {
	articles := make([]article.Article, 0, len(raws))
	for _, raw := range raws {
		a := article.FromRaw(raw)
		a.PublishedAt = dates.Normalize(raw.PublishedRaw, raw.URL)
		articles = append(articles, a)
	}
	return articles
}

func (p *Pipeline) scoreFilter(articles []article.Article) []article.Article {
	kept := articles[:0:0]
	for _, a := range articles {
		result := score.Evaluate(a)
		if !result.Keep {
			logger.Debug("dropped low score article", "score", result.Score, "title", a.Title)
			continue
		}
		a.RelevanceScore = result.Score
		a.Country = result.Country
		a.Continent = result.Continent
		kept = append(kept, a)
	}
	metrics.Global.AddLowScore(len(articles) - len(kept))
	logger.Info("relevance filter complete", "in", len(articles), "out", len(kept))
	return kept
}

// recencyFilter drops articles older than the age window. Articles without
// a parseable date are kept, undated research abstracts are common.
func (p *Pipeline) recencyFilter(articles []article.Article) []article.Article {
	now := p.now()
	kept := articles[:0:0]
	for _, a := range articles {
		if !dates.Recent(a.PublishedAt, now, p.maxAge) {
			logger.Debug("dropped stale article", "published", a.PublishedAt, "title", a.Title)
			continue
		}
		kept = append(kept, a)
	}
	metrics.Global.AddStale(len(articles) - len(kept))
	logger.Info("recency filter complete", "in", len(articles), "out", len(kept))
	return kept
}

func (p *Pipeline) logRunSummary(appended []article.Article) {
	undatedBySource := make(map[string]int)
	for _, a := range appended {
		if a.PublishedAt == nil {
			undatedBySource[a.Source]++
		}
	}
	logger.Info("aggregation complete", "appended", len(appended), "undatedBySource", undatedBySource)
}

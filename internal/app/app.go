// Package app wires the pipeline together and runs one aggregation pass.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/deusflow/malariawatch/internal/aggregate"
	"github.com/deusflow/malariawatch/internal/config"
	"github.com/deusflow/malariawatch/internal/dedup"
	"github.com/deusflow/malariawatch/internal/gemini"
	"github.com/deusflow/malariawatch/internal/logger"
	"github.com/deusflow/malariawatch/internal/metrics"
	"github.com/deusflow/malariawatch/internal/openai"
	"github.com/deusflow/malariawatch/internal/ratelimit"
	"github.com/deusflow/malariawatch/internal/sources"
	"github.com/deusflow/malariawatch/internal/storage"
	"github.com/deusflow/malariawatch/internal/translate"
)

const runTimeout = 30 * time.Minute

// Run executes one full aggregation pass: load corpus, collect, process,
// persist. Returns an error when the run cannot produce a valid corpus;
// individual source or translation failures are absorbed upstream.
func Run() error {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	corpusStore := storage.NewCorpusStore(cfg.CorpusPath)
	existing, err := corpusStore.Load()
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	logger.Info("corpus loaded", "articles", len(existing), "path", cfg.CorpusPath)

	translationCache := storage.NewTranslationCache(cfg.TranslationCachePath)
	if err := translationCache.Load(); err != nil {
		logger.Warn("translation cache unreadable, starting empty", "error", err)
	}

	budget := ratelimit.NewAIBudget(cfg.MaxOpenAIRequests, cfg.MaxGeminiRequests, cfg.MaxAIRequests)
	openaiClient := openai.New(cfg.OpenAIAPIKey, budget)

	providers := []translate.Provider{openaiClient}
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, budget)
		if err != nil {
			logger.Warn("gemini unavailable, continuing without fallback", "error", err)
		} else {
			defer geminiClient.Close()
			providers = append(providers, geminiClient)
		}
	}

	collectors, err := buildCollectors(cfg)
	if err != nil {
		return err
	}

	pipeline := aggregate.New(aggregate.Options{
		Collectors: collectors,
		Translator: translate.NewPipeline(providers, translationCache, budget),
		Deduper:    dedup.NewDeduper(openaiClient, openaiClient, dedup.DefaultSemanticOptions()),
		FastOpts:   dedup.DefaultFastOptions(),
		MaxAge:     cfg.ArticleMaxAge,
		Enrich:     true,
	})

	merged, err := pipeline.Run(ctx, existing)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return fmt.Errorf("aggregation: %w", err)
	}

	if err := corpusStore.Save(merged); err != nil {
		metrics.Global.SetError(err.Error())
		return fmt.Errorf("save corpus: %w", err)
	}
	logger.Info("corpus saved", "articles", len(merged), "path", cfg.CorpusPath)

	budget.LogStats()
	return nil
}

// buildCollectors assembles every source the configuration has credentials
// for. Keyless sources (research databases, scraped pages, direct feeds)
// are always on.
func buildCollectors(cfg *config.Config) ([]sources.Collector, error) {
	feeds, err := sources.LoadFeeds(cfg.FeedsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load feeds config: %w", err)
	}

	var collectors []sources.Collector
	for _, feed := range feeds {
		collectors = append(collectors, sources.NewFeedCollector(feed, cfg.RSS2JSONAPIKey))
	}

	collectors = append(collectors,
		sources.PubMedCollector{},
		sources.PMCCollector{},
		sources.EuropePMCCollector{},
		sources.NewDOAJCollector(),
		sources.MalariaConsortiumCollector{},
		sources.GaviCollector{},
		sources.AllAfricaCollector{},
	)

	if cfg.NewsAPIKey != "" {
		collectors = append(collectors, sources.NewNewsAPICollector(cfg.NewsAPIKey))
	}
	if cfg.GNewsAPIKey != "" {
		collectors = append(collectors, sources.NewGNewsCollector(cfg.GNewsAPIKey))
	}
	if cfg.NewsDataAPIKey != "" {
		collectors = append(collectors, sources.NewNewsDataCollector(cfg.NewsDataAPIKey))
	}
	if cfg.GuardianAPIKey != "" {
		collectors = append(collectors, sources.NewGuardianCollector(cfg.GuardianAPIKey))
	}

	logger.Info("collectors ready", "count", len(collectors))
	return collectors, nil
}

// Package sources holds the collectors that pull raw articles from news
// APIs, RSS feeds, research databases and scraped pages. Collectors run
// concurrently and are isolated: one failing source never aborts the run.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/logger"
	"github.com/deusflow/malariawatch/internal/metrics"
	"github.com/deusflow/malariawatch/internal/retry"
)

const userAgent = "Mozilla/5.0 (compatible; MalariaWatchBot/1.0)"

// Collector is one upstream source of raw articles.
type Collector interface {
	Name() string
	Fetch(ctx context.Context) ([]article.Raw, error)
}

var fetchRetry = retry.Config{MaxAttempts: 3, Delay: 2 * time.Second, Backoff: true}

// FetchAll runs every collector concurrently and returns the flattened
// results. Each collector gets retries; a collector that still fails is
// logged and counted, its articles are simply absent from the result.
func FetchAll(ctx context.Context, collectors []Collector) []article.Raw {
	type result struct {
		name     string
		articles []article.Raw
	}

	results := make(chan result, len(collectors))
	var wg sync.WaitGroup

	for _, c := range collectors {
		wg.Add(1)
		go func(c Collector) {
			defer wg.Done()

			start := time.Now()
			var articles []article.Raw
			err := retry.Do(ctx, fetchRetry, func() error {
				var ferr error
				articles, ferr = c.Fetch(ctx)
				return ferr
			})
			if err != nil {
				logger.Error("source failed", "source", c.Name(), "error", err)
				metrics.Global.IncrementSourceFailures()
				return
			}
			logger.Info("source fetched", "source", c.Name(), "articles", len(articles), "took", time.Since(start).Round(time.Millisecond))
			results <- result{name: c.Name(), articles: articles}
		}(c)
	}

	wg.Wait()
	close(results)

	var all []article.Raw
	for r := range results {
		all = append(all, r.articles...)
	}
	metrics.Global.AddFetched(len(all))
	logger.Info("fetch complete", "sources", len(collectors), "articles", len(all))
	return all
}

// httpClient is shared by all collectors. Per-request deadlines come from
// the context; this timeout is the hard ceiling.
var httpClient = &http.Client{Timeout: 30 * time.Second}

func httpGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 10<<20))
}

func getJSON(ctx context.Context, url string, out interface{}) error {
	body, err := httpGet(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

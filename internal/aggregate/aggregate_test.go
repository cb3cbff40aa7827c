package aggregate

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/sources"
)

type stubCollector struct {
	articles []article.Raw
}

func (s *stubCollector) Name() string { return "stub" }

func (s *stubCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	return s.articles, nil
}

func newPipeline(raws ...article.Raw) *Pipeline {
	return New(Options{
		Collectors: []sources.Collector{&stubCollector{articles: raws}},
		MaxAge:     183 * 24 * time.Hour,
	})
}

func TestRun_AppendsScoredAndAttributedArticles(t *testing.T) {
	published := time.Now().UTC().AddDate(0, 0, -10).Truncate(24 * time.Hour)
	p := newPipeline(article.Raw{
		Title:        "Malaria outbreak declared in Nigeria",
		Description:  "Officials report rising cases.",
		URL:          "https://example.com/outbreak",
		PublishedRaw: published.Format("2006-01-02"),
		Source:       "NewsAPI",
		Language:     "en",
	})

	merged, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("expected 1 article, got %d", len(merged))
	}

	got := merged[0]
	if got.RelevanceScore < 50 {
		t.Errorf("expected high relevance, got %d", got.RelevanceScore)
	}
	if got.Country != "Nigeria" || got.Continent != "Africa" {
		t.Errorf("wrong geography: %q/%q", got.Country, got.Continent)
	}
	if got.PublishedAt == nil || !got.PublishedAt.Equal(published) {
		t.Errorf("publication date not normalized: %v, want %v", got.PublishedAt, published)
	}
}

func TestRun_DropsIrrelevantAndDuplicates(t *testing.T) {
	existing := []article.Article{{
		Title: "Existing story",
		URL:   "https://example.com/existing",
	}}
	p := newPipeline(
		article.Raw{
			Title: "Existing story rerun",
			URL:   "https://example.com/existing?utm_source=rss",
		},
		article.Raw{
			Title: "Celebrity gossip roundup",
			URL:   "https://example.com/gossip",
		},
		article.Raw{
			Title: "Malaria vaccine campaign starts in Ghana",
			URL:   "https://example.com/ghana",
		},
	)

	merged, err := p.Run(context.Background(), existing)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("expected existing plus one survivor, got %d", len(merged))
	}
	var found bool
	for _, a := range merged {
		if a.URL == "https://example.com/ghana" {
			found = true
		}
	}
	if !found {
		t.Error("relevant article missing from merged corpus")
	}
}

func TestRun_SecondPassWithSameSourcesAddsNothing(t *testing.T) {
	published := time.Now().UTC().AddDate(0, 0, -5).Truncate(24 * time.Hour)
	p := newPipeline(
		article.Raw{
			Title:        "Malaria outbreak declared in Nigeria",
			Description:  "Officials report rising cases.",
			URL:          "https://example.com/outbreak",
			PublishedRaw: published.Format("2006-01-02"),
		},
		article.Raw{
			Title: "Malaria vaccine campaign starts in Ghana",
			URL:   "https://example.com/ghana",
		},
	)

	first, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("first run should have produced articles")
	}

	second, err := p.Run(context.Background(), first)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second) != len(first) {
		t.Errorf("rerun with unchanged sources must not grow the corpus: %d -> %d", len(first), len(second))
	}
}

func TestRun_DropsStaleKeepsUndated(t *testing.T) {
	stale := time.Now().UTC().AddDate(0, -8, 0)
	p := newPipeline(
		article.Raw{
			Title:        "Malaria elimination milestone in Zambia",
			URL:          "https://example.com/stale",
			PublishedRaw: stale.Format("2006-01-02"),
		},
		article.Raw{
			Title: "Undated malaria surveillance note from Uganda",
			URL:   "https://example.com/undated",
		},
	)

	merged, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(merged) != 1 || merged[0].URL != "https://example.com/undated" {
		t.Errorf("stale article should be dropped and the undated one kept, got %+v", merged)
	}
}

func TestRun_SortsNewestFirstWithUndatedLast(t *testing.T) {
	older := time.Now().UTC().AddDate(0, -2, 0)
	newer := time.Now().UTC().AddDate(0, 0, -3)
	existing := []article.Article{{
		Title:       "Old malaria report",
		URL:         "https://example.com/old",
		PublishedAt: &older,
	}}
	p := newPipeline(
		article.Raw{
			Title:        "Malaria vaccine campaign starts in Ghana",
			URL:          "https://example.com/new",
			PublishedRaw: newer.Format("2006-01-02"),
		},
		article.Raw{
			Title: "Undated malaria surveillance note from Uganda",
			URL:   "https://example.com/undated",
		},
	)

	merged, err := p.Run(context.Background(), existing)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(merged) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(merged))
	}
	if merged[0].URL != "https://example.com/new" {
		t.Errorf("newest should sort first, got %q", merged[0].URL)
	}
	if merged[2].URL != "https://example.com/undated" {
		t.Errorf("undated should sort last, got %q", merged[2].URL)
	}
}

func TestRun_DoesNotMutateExisting(t *testing.T) {
	existing := []article.Article{{
		Title: "Existing malaria story",
		URL:   "https://example.com/existing",
	}}
	snapshot := existing[0]

	p := newPipeline(article.Raw{
		Title: "Fresh malaria vaccine news from Kenya",
		URL:   "https://example.com/fresh",
	})
	if _, err := p.Run(context.Background(), existing); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !reflect.DeepEqual(existing[0], snapshot) {
		t.Errorf("existing corpus slice was mutated: %+v", existing[0])
	}
}

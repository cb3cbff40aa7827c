package sources

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/retry"
)

type stubCollector struct {
	name     string
	articles []article.Raw
	err      error
	calls    int
}

func (s *stubCollector) Name() string { return s.name }

func (s *stubCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	s.calls++
	return s.articles, s.err
}

func TestFetchAll_CollectsFromAllSources(t *testing.T) {
	collectors := []Collector{
		&stubCollector{name: "a", articles: []article.Raw{{Title: "one"}, {Title: "two"}}},
		&stubCollector{name: "b", articles: []article.Raw{{Title: "three"}}},
	}
	got := FetchAll(context.Background(), collectors)
	if len(got) != 3 {
		t.Errorf("expected 3 articles, got %d", len(got))
	}
}

func TestFetchAll_FailingSourceIsIsolated(t *testing.T) {
	saved := fetchRetry
	fetchRetry = retry.Config{MaxAttempts: 2, Delay: time.Millisecond}
	defer func() { fetchRetry = saved }()

	broken := &stubCollector{name: "broken", err: errors.New("upstream 500")}
	healthy := &stubCollector{name: "healthy", articles: []article.Raw{{Title: "survives"}}}

	got := FetchAll(context.Background(), []Collector{broken, healthy})
	if len(got) != 1 || got[0].Title != "survives" {
		t.Errorf("healthy source results must survive a sibling failure, got %d", len(got))
	}
	if broken.calls < 2 {
		t.Errorf("failing source should be retried, got %d attempts", broken.calls)
	}
}

func TestLoadFeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	content := `feeds:
  - name: WHO News (EN)
    url: https://www.who.int/rss-feeds/news-english.xml
    source: WHO RSS
    type: official
    language: en
    bridge: true
  - name: PAHO News (ES)
    url: https://www.paho.org/es/rss/paho-noticias.xml
    source: Latin American Media
    language: es
    filter: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	feeds, err := LoadFeeds(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(feeds) != 2 {
		t.Fatalf("expected 2 feeds, got %d", len(feeds))
	}
	if feeds[0].Type != "official" || !feeds[0].Bridge {
		t.Errorf("first feed parsed wrong: %+v", feeds[0])
	}
	if feeds[1].Language != "es" || !feeds[1].Filter {
		t.Errorf("second feed parsed wrong: %+v", feeds[1])
	}
}

func TestIsMalariaRelated(t *testing.T) {
	if !isMalariaRelated("Anopheles surveillance expands", "") {
		t.Error("vector keyword should match")
	}
	if !isMalariaRelated("New programme", "seasonal malaria chemoprevention scales up") {
		t.Error("description keywords should match")
	}
	if isMalariaRelated("Football results", "league standings after round 12") {
		t.Error("unrelated text should not match")
	}
}

func TestExtractImageFromDescription(t *testing.T) {
	desc := `<p>Story text</p><img src="https://example.com/photo.jpg" alt=""/>`
	if got := extractImageFromDescription(desc); got != "https://example.com/photo.jpg" {
		t.Errorf("got %q", got)
	}
	if got := extractImageFromDescription("no markup here"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestAssembleDate(t *testing.T) {
	cases := []struct {
		year, month, day string
		want             string
	}{
		{"2024", "3", "7", "2024-03-07"},
		{"2024", "Mar", "7", "2024-03-07"},
		{"2024", "March", "", "2024-03-01"},
		{"2024", "", "7", ""},
		{"", "3", "7", ""},
		{"2024", "13", "7", ""},
	}
	for _, c := range cases {
		if got := assembleDate(c.year, c.month, c.day); got != c.want {
			t.Errorf("assembleDate(%q,%q,%q) = %q, want %q", c.year, c.month, c.day, got, c.want)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "", "third"); got != "third" {
		t.Errorf("got %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Errorf("got %q", got)
	}
}

package translate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/storage"
)

type stubProvider struct {
	prefix string
	err    error
	calls  int
}

func (s *stubProvider) Translate(ctx context.Context, text, targetLang string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.prefix + targetLang + ":" + text, nil
}

func newCache(t *testing.T) *storage.TranslationCache {
	t.Helper()
	return storage.NewTranslationCache(filepath.Join(t.TempDir(), "cache.json"))
}

func TestRun_FillsAllTargetLanguages(t *testing.T) {
	provider := &stubProvider{}
	p := NewPipeline([]Provider{provider}, newCache(t), nil)

	articles := []article.Article{{
		Title:       "Malaria cases rise",
		Description: "Numbers up in the region.",
		Language:    "en",
	}}
	if err := p.Run(context.Background(), articles); err != nil {
		t.Fatalf("run: %v", err)
	}

	tr := articles[0].Translations
	for _, lang := range []string{"fr", "pt", "es"} {
		got, ok := tr[lang]
		if !ok {
			t.Fatalf("missing %s translation", lang)
		}
		if got.Title != lang+":Malaria cases rise" {
			t.Errorf("wrong %s title: %q", lang, got.Title)
		}
	}
	if _, ok := tr["en"]; ok {
		t.Error("article must not be translated into its own language")
	}
}

func TestRun_SkipsResearchArticles(t *testing.T) {
	provider := &stubProvider{}
	p := NewPipeline([]Provider{provider}, newCache(t), nil)

	articles := []article.Article{{
		Title:    "Plasmodium falciparum genomics study",
		Language: "en",
		Type:     "research",
	}}
	if err := p.Run(context.Background(), articles); err != nil {
		t.Fatalf("run: %v", err)
	}

	if provider.calls != 0 {
		t.Errorf("research articles must not hit providers, got %d calls", provider.calls)
	}
	if len(articles[0].Translations) != 0 {
		t.Errorf("research articles keep their original text only")
	}
}

func TestRun_CacheHitSkipsProvider(t *testing.T) {
	cache := newCache(t)
	provider := &stubProvider{}
	p := NewPipeline([]Provider{provider}, cache, nil)

	articles := []article.Article{{Title: "Bednet distribution expands", Language: "en"}}
	if err := p.Run(context.Background(), articles); err != nil {
		t.Fatalf("run: %v", err)
	}
	firstCalls := provider.calls
	if firstCalls == 0 {
		t.Fatal("first run should call the provider")
	}

	again := []article.Article{{Title: "Bednet distribution expands", Language: "en"}}
	if err := p.Run(context.Background(), again); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if provider.calls != firstCalls {
		t.Errorf("identical text must be served from cache, calls went %d -> %d", firstCalls, provider.calls)
	}
	if again[0].Translations["fr"].Title != articles[0].Translations["fr"].Title {
		t.Error("cached translation differs from original")
	}
}

func TestRun_FallsThroughProviderChain(t *testing.T) {
	broken := &stubProvider{err: errors.New("quota exhausted")}
	fallback := &stubProvider{prefix: "fb-"}
	p := NewPipeline([]Provider{broken, fallback}, newCache(t), nil)

	articles := []article.Article{{Title: "Vaccine rollout", Language: "en"}}
	if err := p.Run(context.Background(), articles); err != nil {
		t.Fatalf("run: %v", err)
	}

	if fallback.calls == 0 {
		t.Fatal("fallback provider should have been used")
	}
	if articles[0].Translations["fr"].Title != "fb-fr:Vaccine rollout" {
		t.Errorf("expected fallback translation, got %q", articles[0].Translations["fr"].Title)
	}
}

func TestRun_TotalFailureKeepsOriginalText(t *testing.T) {
	broken := &stubProvider{err: errors.New("down")}
	p := NewPipeline([]Provider{broken}, newCache(t), nil)

	articles := []article.Article{{Title: "Spraying campaign starts", Language: "en"}}
	if err := p.Run(context.Background(), articles); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := articles[0].Translations["es"]
	if got.Title != "Spraying campaign starts" {
		t.Errorf("failed translation must fall back to the original text, got %q", got.Title)
	}
}

func TestRun_CachePersistFailureIsFatal(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache := storage.NewTranslationCache(filepath.Join(blocker, "cache.json"))
	p := NewPipeline([]Provider{&stubProvider{}}, cache, nil)

	articles := []article.Article{{Title: "Net distribution expands", Language: "en"}}
	if err := p.Run(context.Background(), articles); err == nil {
		t.Fatal("unwritable cache path must fail the run")
	}
}

package dedup

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/deusflow/malariawatch/internal/article"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[text], nil
}

type stubAdjudicator struct {
	verdict Verdict
	err     error
	calls   int
}

func (s *stubAdjudicator) CompareArticles(ctx context.Context, a, b article.Article) (Verdict, error) {
	s.calls++
	return s.verdict, s.err
}

func fastOpts() SemanticOptions {
	opts := DefaultSemanticOptions()
	opts.InterItemDelay = 0
	return opts
}

func TestDeduplicate_ExactTitle(t *testing.T) {
	d := NewDeduper(nil, nil, fastOpts())
	existing := []article.Article{{Title: "Malaria cases rise in Kenya", URL: "https://a.example.com/1"}}
	incoming := []article.Article{{Title: "Malaria Cases Rise in Kenya", URL: "https://b.example.com/2"}}

	unique, duplicates, stats := d.Deduplicate(context.Background(), incoming, existing)
	if len(unique) != 0 || len(duplicates) != 1 {
		t.Fatalf("expected title duplicate, got unique=%d duplicates=%d", len(unique), len(duplicates))
	}
	if duplicates[0].Method != "exact_title" {
		t.Errorf("wrong method: %s", duplicates[0].Method)
	}
	if stats.Duplicates != 1 {
		t.Errorf("stats mismatch: %+v", stats)
	}
}

func TestDeduplicate_EmbeddingSimilarity(t *testing.T) {
	a := article.Article{Title: "Kenya reports malaria surge", URL: "https://a.example.com/1"}
	b := article.Article{Title: "Surge of malaria reported by Kenya", URL: "https://b.example.com/2"}

	// Vectors with cosine similarity well above 0.90.
	embedder := &stubEmbedder{vectors: map[string][]float32{
		comparisonText(a): {1, 0.1, 0},
		comparisonText(b): {1, 0.12, 0.01},
	}}
	d := NewDeduper(embedder, nil, fastOpts())

	unique, duplicates, _ := d.Deduplicate(context.Background(), []article.Article{b}, []article.Article{a})
	if len(unique) != 0 || len(duplicates) != 1 {
		t.Fatalf("expected embedding duplicate, got unique=%d duplicates=%d", len(unique), len(duplicates))
	}
	if duplicates[0].Method != "embedding_similarity" {
		t.Errorf("wrong method: %s", duplicates[0].Method)
	}
}

func TestDeduplicate_BorderlineEscalatesToAdjudicator(t *testing.T) {
	a := article.Article{Title: "Kenya reports malaria surge", URL: "https://a.example.com/1"}
	b := article.Article{Title: "WHO comments on east african outbreaks", URL: "https://b.example.com/2"}

	// Cosine similarity ~0.83: above the escalation floor, below the
	// embedding threshold.
	embedder := &stubEmbedder{vectors: map[string][]float32{
		comparisonText(a): {1, 0, 0},
		comparisonText(b): {1, 0.66, 0},
	}}
	adjudicator := &stubAdjudicator{verdict: Verdict{IsDuplicate: true, Confidence: 0.9, Reason: "same event"}}
	d := NewDeduper(embedder, adjudicator, fastOpts())

	unique, duplicates, _ := d.Deduplicate(context.Background(), []article.Article{b}, []article.Article{a})
	if adjudicator.calls != 1 {
		t.Fatalf("adjudicator should be consulted once, got %d", adjudicator.calls)
	}
	if len(unique) != 0 || len(duplicates) != 1 {
		t.Fatalf("expected adjudicated duplicate, got unique=%d duplicates=%d", len(unique), len(duplicates))
	}
	if duplicates[0].Method != "gpt_analysis" {
		t.Errorf("wrong method: %s", duplicates[0].Method)
	}
}

func TestDeduplicate_LowConfidenceVerdictKeepsArticle(t *testing.T) {
	a := article.Article{Title: "Kenya reports malaria surge", URL: "https://a.example.com/1"}
	b := article.Article{Title: "WHO comments on east african outbreaks", URL: "https://b.example.com/2"}

	embedder := &stubEmbedder{vectors: map[string][]float32{
		comparisonText(a): {1, 0, 0},
		comparisonText(b): {1, 0.66, 0},
	}}
	adjudicator := &stubAdjudicator{verdict: Verdict{IsDuplicate: true, Confidence: 0.5}}
	d := NewDeduper(embedder, adjudicator, fastOpts())

	unique, _, _ := d.Deduplicate(context.Background(), []article.Article{b}, []article.Article{a})
	if len(unique) != 1 {
		t.Errorf("verdict below the confidence threshold must keep the article, got %d unique", len(unique))
	}
}

func TestDeduplicate_ProviderErrorKeepsArticle(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("provider down")}
	d := NewDeduper(embedder, nil, fastOpts())

	existing := []article.Article{{Title: "Old story", URL: "https://a.example.com/1"}}
	incoming := []article.Article{{Title: "New malaria funding announced", URL: "https://b.example.com/2"}}

	unique, _, stats := d.Deduplicate(context.Background(), incoming, existing)
	if len(unique) != 1 {
		t.Fatalf("errors must keep the article, got %d unique", len(unique))
	}
	if stats.Errors != 1 {
		t.Errorf("error should be counted, stats: %+v", stats)
	}
}

func TestDeduplicate_NilEmbedderIsUnique(t *testing.T) {
	d := NewDeduper(nil, nil, fastOpts())
	incoming := []article.Article{{Title: "Fresh story about bednets", URL: "https://b.example.com/2"}}

	unique, _, _ := d.Deduplicate(context.Background(), incoming, []article.Article{{Title: "Unrelated", URL: "https://a.example.com/1"}})
	if len(unique) != 1 {
		t.Errorf("without providers only quick checks run, article should survive")
	}
}

func TestComparisonText_PrefersEnglishTranslation(t *testing.T) {
	a := article.Article{
		Title:        "Le paludisme recule au Sénégal",
		Description:  "Les cas diminuent.",
		Translations: map[string]article.Translation{"en": {Title: "Malaria declines in Senegal", Description: "Cases are falling."}},
	}
	got := comparisonText(a)
	if got != "Malaria declines in Senegal Cases are falling." {
		t.Errorf("unexpected comparison text: %q", got)
	}
}

func TestComparisonText_ContentCapKeepsValidUTF8(t *testing.T) {
	a := article.Article{
		Title:       "Résistance à l'artémisinine",
		FullContent: strings.Repeat("Paludisme à São Tomé é grave. ", 60),
	}
	got := comparisonText(a)
	if !utf8.ValidString(got) {
		t.Errorf("comparison text contains invalid UTF-8: %q", got)
	}
}

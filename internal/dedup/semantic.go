package dedup

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/logger"
)

// Embedder produces a vector embedding for a text, or nil when the provider
// is unavailable (treated as "cannot compare", never as an error).
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Verdict is the adjudicator's structured answer for a borderline pair.
type Verdict struct {
	IsDuplicate  bool    `json:"isDuplicate"`
	Confidence   float64 `json:"confidence"`
	Reason       string  `json:"reason"`
	Relationship string  `json:"relationship"`
}

// Adjudicator asks a language model whether two articles report the same
// story. Malformed responses must come back as a zero-confidence Verdict.
type Adjudicator interface {
	CompareArticles(ctx context.Context, a, b article.Article) (Verdict, error)
}

// Decision records why one pairwise comparison classified an article as a
// duplicate. Methods in escalation order: same_url, exact_title, near_title,
// embedding_similarity, gpt_analysis.
type Decision struct {
	IsDuplicate bool
	Method      string
	Similarity  float64
	Reason      string
	DuplicateOf *article.Article
}

// Stats summarizes one semantic dedup run.
type Stats struct {
	Total         int
	Unique        int
	Duplicates    int
	Errors        int
	ByTitle       int
	ByEmbedding   int
	ByAdjudicator int
}

// SemanticOptions carries the canonical semantic-pass thresholds.
type SemanticOptions struct {
	TitleThreshold      float64       // edit-distance ratio above which titles are the same story
	EmbeddingThreshold  float64       // cosine similarity at or above which texts are duplicates
	EscalationFloor     float64       // max cosine similarity above which the adjudicator is consulted
	ConfidenceThreshold float64       // adjudicator confidence needed to accept its duplicate verdict
	InterItemDelay      time.Duration // pause between adjudicator calls, for provider rate limits
}

// DefaultSemanticOptions is the canonical threshold set.
func DefaultSemanticOptions() SemanticOptions {
	return SemanticOptions{
		TitleThreshold:      0.95,
		EmbeddingThreshold:  0.90,
		EscalationFloor:     0.75,
		ConfidenceThreshold: 0.8,
		InterItemDelay:      100 * time.Millisecond,
	}
}

// Deduper is the embedding + adjudicator dedup engine.
type Deduper struct {
	embedder    Embedder
	adjudicator Adjudicator
	opts        SemanticOptions

	lev *metrics.Levenshtein

	// embeddings are cached per run keyed by comparison text, so each
	// existing article is embedded at most once per run.
	embedCache map[string][]float32
}

// NewDeduper builds the engine. Either provider may be nil, in which case
// the corresponding escalation stage is skipped.
func NewDeduper(embedder Embedder, adjudicator Adjudicator, opts SemanticOptions) *Deduper {
	return &Deduper{
		embedder:    embedder,
		adjudicator: adjudicator,
		opts:        opts,
		lev:         metrics.NewLevenshtein(),
		embedCache:  make(map[string][]float32),
	}
}

// Deduplicate evaluates each new article against existing plus the new
// articles already accepted this run. Any provider error counts the article
// as unique: discarding legitimate content over a transient failure is the
// worse outcome.
func (d *Deduper) Deduplicate(ctx context.Context, newArticles, existing []article.Article) (unique []article.Article, duplicates []Decision, stats Stats) {
	stats.Total = len(newArticles)
	logger.Info("semantic dedup starting", "new", len(newArticles), "existing", len(existing))

	for i := range newArticles {
		a := newArticles[i]
		compareAgainst := make([]article.Article, 0, len(existing)+len(unique))
		compareAgainst = append(compareAgainst, existing...)
		compareAgainst = append(compareAgainst, unique...)

		decision, err := d.check(ctx, a, compareAgainst)
		if err != nil {
			logger.Warn("semantic dedup error, keeping article", "title", a.Title, "error", err)
			stats.Errors++
			unique = append(unique, a)
			continue
		}

		if decision.IsDuplicate {
			logger.Info("semantic duplicate", "title", a.Title, "method", decision.Method, "reason", decision.Reason)
			duplicates = append(duplicates, decision)
			stats.Duplicates++
			switch decision.Method {
			case "exact_title", "near_title":
				stats.ByTitle++
			case "embedding_similarity":
				stats.ByEmbedding++
			case "gpt_analysis":
				stats.ByAdjudicator++
			}
		} else {
			unique = append(unique, a)
			stats.Unique++
		}
	}

	logger.Info("semantic dedup done", "unique", stats.Unique, "duplicates", stats.Duplicates, "errors", stats.Errors)
	return unique, duplicates, stats
}

func (d *Deduper) check(ctx context.Context, a article.Article, against []article.Article) (Decision, error) {
	if dec := d.quickCheck(a, against); dec.IsDuplicate {
		return dec, nil
	}

	dec, maxSim, closest, err := d.embeddingCheck(ctx, a, against)
	if err != nil {
		return Decision{}, err
	}
	if dec.IsDuplicate {
		return dec, nil
	}

	if d.adjudicator != nil && closest != nil && maxSim > d.opts.EscalationFloor {
		if d.opts.InterItemDelay > 0 {
			select {
			case <-ctx.Done():
				return Decision{}, ctx.Err()
			case <-time.After(d.opts.InterItemDelay):
			}
		}
		verdict, err := d.adjudicator.CompareArticles(ctx, a, *closest)
		if err != nil {
			return Decision{}, err
		}
		if verdict.IsDuplicate && verdict.Confidence >= d.opts.ConfidenceThreshold {
			return Decision{
				IsDuplicate: true,
				Method:      "gpt_analysis",
				Similarity:  verdict.Confidence,
				Reason:      verdict.Reason,
				DuplicateOf: closest,
			}, nil
		}
	}

	return Decision{}, nil
}

// quickCheck catches the obvious duplicates before any provider call: same
// normalized URL, identical title, or a near-identical title by edit
// distance.
func (d *Deduper) quickCheck(a article.Article, against []article.Article) Decision {
	title := strings.ToLower(strings.TrimSpace(a.Title))
	u := NormalizeURL(a.URL)

	for i := range against {
		other := &against[i]
		if u != "" && u == NormalizeURL(other.URL) {
			return Decision{IsDuplicate: true, Method: "same_url", Reason: "identical URLs", DuplicateOf: other}
		}
		otherTitle := strings.ToLower(strings.TrimSpace(other.Title))
		if title != "" && title == otherTitle {
			return Decision{IsDuplicate: true, Method: "exact_title", Reason: "identical titles", DuplicateOf: other}
		}
		if title != "" && otherTitle != "" {
			if sim := strutil.Similarity(title, otherTitle, d.lev); sim > d.opts.TitleThreshold {
				return Decision{IsDuplicate: true, Method: "near_title", Similarity: sim, Reason: "near-identical titles", DuplicateOf: other}
			}
		}
	}
	return Decision{}
}

func (d *Deduper) embeddingCheck(ctx context.Context, a article.Article, against []article.Article) (Decision, float64, *article.Article, error) {
	if d.embedder == nil {
		return Decision{}, 0, nil, nil
	}

	vec, err := d.embed(ctx, comparisonText(a))
	if err != nil {
		return Decision{}, 0, nil, err
	}
	if vec == nil {
		return Decision{}, 0, nil, nil
	}

	var maxSim float64
	var closest *article.Article
	for i := range against {
		other := &against[i]
		otherVec, err := d.embed(ctx, comparisonText(*other))
		if err != nil {
			return Decision{}, 0, nil, err
		}
		if otherVec == nil {
			continue
		}
		sim := cosineSimilarity(vec, otherVec)
		if sim > maxSim {
			maxSim = sim
			closest = other
		}
		if sim >= d.opts.EmbeddingThreshold {
			return Decision{
				IsDuplicate: true,
				Method:      "embedding_similarity",
				Similarity:  sim,
				Reason:      "high content similarity",
				DuplicateOf: other,
			}, sim, other, nil
		}
	}
	return Decision{}, maxSim, closest, nil
}

func (d *Deduper) embed(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := d.embedCache[text]; ok {
		return vec, nil
	}
	vec, err := d.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	d.embedCache[text] = vec
	return vec, nil
}

// comparisonText prefers the English translation when present, so articles
// collected in different languages compare in one vector space.
func comparisonText(a article.Article) string {
	title, desc := a.Title, a.Description
	if tr, ok := a.Translations["en"]; ok {
		if tr.Title != "" {
			title = tr.Title
		}
		if tr.Description != "" {
			desc = tr.Description
		}
	}
	content := truncateContent(a.FullContent, 1000)
	parts := make([]string, 0, 3)
	for _, p := range []string{title, desc, content} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " ")
}

// truncateContent caps s at max bytes without splitting a UTF-8 sequence.
func truncateContent(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

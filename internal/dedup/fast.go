// Package dedup removes near-duplicate articles. The fast pass works on
// normalized URLs and fuzzy text similarity; the semantic pass (semantic.go)
// escalates through embeddings to an LLM adjudicator.
package dedup

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/logger"
)

// FastOptions controls the cheap dedup pass. The recent window keeps the
// pairwise text comparison near-linear on large corpora.
type FastOptions struct {
	Threshold   float64 // Dice coefficient at or above which texts are duplicates
	RecentLimit int     // how many of the newest existing articles to compare texts against
}

// DefaultFastOptions is the canonical threshold set.
func DefaultFastOptions() FastOptions {
	return FastOptions{Threshold: 0.85, RecentLimit: 2000}
}

var trackingParamRe = regexp.MustCompile(`(?i)^(utm_.*|fbclid|gclid|ref|mc_cid|mc_eid)$`)

// NormalizeURL canonicalizes a URL for identity comparison: lowercase, no
// fragment, no tracking query parameters, no trailing slash. Malformed URLs
// degrade to trimmed lowercase so they still compare byte-wise.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.ToLower(strings.TrimSuffix(raw, "/"))
	}
	u.Fragment = ""
	q := u.Query()
	for key := range q {
		if trackingParamRe.MatchString(key) {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()
	return strings.ToLower(strings.TrimSuffix(u.String(), "/"))
}

var foldTransform = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CleanText builds the normalized comparison blob: lowercase, diacritics
// folded, punctuation stripped, whitespace collapsed.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToLower(raw)
	if folded, _, err := transform.String(foldTransform, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Fast removes duplicates from newArticles, both against the existing corpus
// and within the batch itself. Articles are processed in arrival order and
// the first copy seen wins; there is no cross-source priority.
func Fast(newArticles, existing []article.Article, opts FastOptions) []article.Article {
	logger.Info("fast dedup starting", "new", len(newArticles), "existing", len(existing))

	dice := metrics.NewSorensenDice()
	dice.NgramSize = 2

	existingURLs := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		if u := NormalizeURL(a.URL); u != "" {
			existingURLs[u] = struct{}{}
		}
	}

	// The corpus is kept sorted date-descending, so the newest articles are
	// at the front.
	recent := existing
	if opts.RecentLimit > 0 && len(recent) > opts.RecentLimit {
		recent = recent[:opts.RecentLimit]
	}
	existingTexts := make([]string, 0, len(recent))
	for _, a := range recent {
		if t := CleanText(a.Text()); t != "" {
			existingTexts = append(existingTexts, t)
		}
	}

	unique := make([]article.Article, 0, len(newArticles))
	newURLs := make(map[string]struct{})
	var newTexts []string

	for _, a := range newArticles {
		u := NormalizeURL(a.URL)
		dup := false

		if u != "" {
			if _, ok := existingURLs[u]; ok {
				dup = true
			} else if _, ok := newURLs[u]; ok {
				dup = true
			}
		}

		text := ""
		if !dup {
			text = CleanText(a.Text())
			if text != "" {
				dup = similarToAny(dice, text, existingTexts, opts.Threshold) ||
					similarToAny(dice, text, newTexts, opts.Threshold)
			}
		}

		if dup {
			logger.Debug("fast dedup skipped duplicate", "title", a.Title)
			continue
		}
		unique = append(unique, a)
		if u != "" {
			newURLs[u] = struct{}{}
		}
		if text != "" {
			newTexts = append(newTexts, text)
		}
	}

	logger.Info("fast dedup done", "unique", len(unique), "removed", len(newArticles)-len(unique))
	return unique
}

func similarToAny(dice *metrics.SorensenDice, text string, against []string, threshold float64) bool {
	for _, other := range against {
		if strutil.Similarity(text, other, dice) >= threshold {
			return true
		}
	}
	return false
}

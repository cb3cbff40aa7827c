// Package dates turns the publication date junk upstream feeds send us into
// canonical UTC instants, or admits defeat and reports "unknown".
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	parenRe   = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	tzAbbrRe  = regexp.MustCompile(`\s*\b(GMT|UTC)\b`)
	urlDateRe = regexp.MustCompile(`(\d{4})[/-](\d{2})[/-](\d{2})|(\d{4})[/-](\d{2})`)
)

// Normalize parses an arbitrary publication-date string. When direct parsing
// fails it retries with parenthetical content and timezone abbreviations
// stripped, then falls back to extracting a date from the article URL.
// Returns nil when everything fails; callers must treat nil as "unknown",
// not "stale".
func Normalize(raw, fallbackURL string) *time.Time {
	if raw != "" {
		if t, err := dateparse.ParseAny(raw); err == nil {
			u := t.UTC()
			return &u
		}
		cleaned := strings.TrimSpace(tzAbbrRe.ReplaceAllString(parenRe.ReplaceAllString(raw, " "), ""))
		if cleaned != "" && cleaned != raw {
			if t, err := dateparse.ParseAny(cleaned); err == nil {
				u := t.UTC()
				return &u
			}
		}
	}
	return FromURL(fallbackURL)
}

// FromURL extracts a YYYY-MM-DD or YYYY-MM date pattern embedded in a URL
// path, defaulting a missing day to the 1st.
func FromURL(url string) *time.Time {
	if url == "" {
		return nil
	}
	m := urlDateRe.FindStringSubmatch(url)
	if m == nil {
		return nil
	}
	year, month, day := m[1], m[2], m[3]
	if year == "" {
		year, month = m[4], m[5]
	}
	if day == "" {
		day = "01"
	}
	t, err := time.Parse("2006-01-02", year+"-"+month+"-"+day)
	if err != nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// Recent reports whether a publication instant is inside the retention
// window ending at now. Unknown dates (nil) always pass: dropping a
// legitimate article because a feed mangled its date is worse than keeping
// a few undated ones.
func Recent(published *time.Time, now time.Time, maxAge time.Duration) bool {
	if published == nil {
		return true
	}
	return now.Sub(*published) <= maxAge
}

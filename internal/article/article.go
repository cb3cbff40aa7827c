package article

import (
	"sort"
	"time"
)

// Raw is what collectors produce. Fields come straight from heterogeneous
// upstream feeds and APIs, so nothing here is guaranteed to be set.
type Raw struct {
	Title        string
	Description  string
	URL          string
	PublishedRaw string // unparsed date text, may be empty
	Source       string // source family label, e.g. "African Media"
	SourceName   string // concrete feed name, e.g. "AllAfrica Health (EN)"
	Language     string // ISO code, "en" assumed when empty
	UniqueID     string // often equals URL
	ImageURL     string
	Type         string // "research", "official" or empty
	FullContent  string // full text when the collector scraped it
}

// Lang returns the article language, defaulting to English.
func (r Raw) Lang() string {
	if r.Language == "" {
		return "en"
	}
	return r.Language
}

// Translation holds one language variant of title and description.
type Translation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Article is the normalized, persisted unit of the corpus.
type Article struct {
	UniqueID       string                 `json:"uniqueId"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	URL            string                 `json:"url"`
	PublishedAt    *time.Time             `json:"publishedAt"` // nil = unknown, never stale
	Source         string                 `json:"source"`
	SourceName     string                 `json:"sourceName,omitempty"`
	Language       string                 `json:"language"`
	Type           string                 `json:"type,omitempty"`
	RelevanceScore int                    `json:"relevanceScore"`
	Country        string                 `json:"country"`
	Continent      string                 `json:"continent"`
	Translations   map[string]Translation `json:"translations,omitempty"`
	ImageURL       string                 `json:"imageUrl,omitempty"`
	FullContent    string                 `json:"-"`
	IsRead         bool                   `json:"isRead"` // owned by the display layer
}

// FromRaw builds a normalized article shell. Score, geography and the parsed
// date are filled in by later pipeline stages.
func FromRaw(r Raw) Article {
	id := r.UniqueID
	if id == "" {
		id = r.URL
	}
	return Article{
		UniqueID:    id,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Source:      r.Source,
		SourceName:  r.SourceName,
		Language:    r.Lang(),
		Type:        r.Type,
		ImageURL:    r.ImageURL,
		FullContent: r.FullContent,
	}
}

// Text returns title and description joined, the unit most pipeline stages
// (scoring, dedup, geography) operate on.
func (a Article) Text() string {
	if a.Description == "" {
		return a.Title
	}
	return a.Title + " " + a.Description
}

// SortByDate orders articles newest first. Articles without a parseable date
// sort last; ties keep arrival order (stable sort).
func SortByDate(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		a, b := articles[i].PublishedAt, articles[j].PublishedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}

package dedup

import (
	"testing"

	"github.com/deusflow/malariawatch/internal/article"
)

func TestNormalizeURL_StripsTrackingParams(t *testing.T) {
	a := NormalizeURL("https://Example.com/story?utm_source=feed&utm_medium=rss&id=7#section")
	b := NormalizeURL("https://example.com/story?id=7")
	if a != b {
		t.Errorf("tracking params and fragment should not distinguish URLs: %q vs %q", a, b)
	}
}

func TestNormalizeURL_TrailingSlashAndCase(t *testing.T) {
	a := NormalizeURL("https://example.com/News/Malaria/")
	b := NormalizeURL("https://example.com/news/malaria")
	if a != b {
		t.Errorf("case and trailing slash should not distinguish URLs: %q vs %q", a, b)
	}
}

func TestNormalizeURL_KeepsMeaningfulParams(t *testing.T) {
	a := NormalizeURL("https://example.com/story?id=7")
	b := NormalizeURL("https://example.com/story?id=8")
	if a == b {
		t.Error("distinct content parameters must keep URLs distinct")
	}
}

func TestNormalizeURL_MalformedDegradesGracefully(t *testing.T) {
	got := NormalizeURL("  Not A URL/  ")
	if got != "not a url" {
		t.Errorf("malformed URL should degrade to trimmed lowercase, got %q", got)
	}
}

func TestCleanText_FoldsDiacriticsAndPunctuation(t *testing.T) {
	got := CleanText("Malária:  outbreak in  São Tomé!")
	want := "malaria outbreak in sao tome"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFast_DropsURLDuplicateAgainstExisting(t *testing.T) {
	existing := []article.Article{{
		Title: "Vaccine rollout continues",
		URL:   "https://example.com/story?id=1",
	}}
	incoming := []article.Article{{
		Title: "Completely different headline",
		URL:   "https://example.com/story?id=1&utm_source=newsletter",
	}}

	got := Fast(incoming, existing, DefaultFastOptions())
	if len(got) != 0 {
		t.Errorf("expected URL duplicate to be dropped, kept %d", len(got))
	}
}

func TestFast_DropsFuzzyTextDuplicateWithinBatch(t *testing.T) {
	incoming := []article.Article{
		{
			Title: "Malaria vaccine rollout begins in Cameroon",
			URL:   "https://a.example.com/1",
		},
		{
			Title: "Malaria vaccine rollout begins in Cameroon.",
			URL:   "https://b.example.com/2",
		},
	}

	got := Fast(incoming, nil, DefaultFastOptions())
	if len(got) != 1 {
		t.Fatalf("expected one survivor, got %d", len(got))
	}
	if got[0].URL != "https://a.example.com/1" {
		t.Errorf("first seen article should win, got %q", got[0].URL)
	}
}

func TestFast_KeepsDistinctArticles(t *testing.T) {
	incoming := []article.Article{
		{Title: "Malaria cases surge in Nigeria after flooding", URL: "https://a.example.com/1"},
		{Title: "New artemisinin resistance markers found in Uganda", URL: "https://a.example.com/2"},
	}

	got := Fast(incoming, nil, DefaultFastOptions())
	if len(got) != 2 {
		t.Errorf("distinct articles must both survive, got %d", len(got))
	}
}

func TestFast_RecentWindowCoversNewestArticles(t *testing.T) {
	// The existing corpus arrives sorted date-descending: newest first.
	newest := article.Article{Title: "Funding gap threatens bednet distribution", URL: "https://recent.example.com/1"}
	oldest := article.Article{Title: "Malaria vaccine rollout begins in Cameroon", URL: "https://old.example.com/2"}
	existing := []article.Article{newest, oldest}
	opts := FastOptions{Threshold: 0.85, RecentLimit: 1}

	dupOfNewest := []article.Article{{
		Title: "Funding gap threatens bednet distribution",
		URL:   "https://new.example.com/3",
	}}
	if got := Fast(dupOfNewest, existing, opts); len(got) != 0 {
		t.Errorf("text duplicate of the newest article must be caught by the window, got %d", len(got))
	}

	dupOfOldest := []article.Article{{
		Title: "Malaria vaccine rollout begins in Cameroon",
		URL:   "https://new.example.com/4",
	}}
	if got := Fast(dupOfOldest, existing, opts); len(got) != 1 {
		t.Errorf("article matching only text outside the recent window should survive, got %d", len(got))
	}
}

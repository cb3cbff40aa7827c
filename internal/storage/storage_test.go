package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deusflow/malariawatch/internal/article"
)

func TestCorpusStore_MissingFileIsEmptyCorpus(t *testing.T) {
	store := NewCorpusStore(filepath.Join(t.TempDir(), "news.json"))
	articles, err := store.Load()
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("expected empty corpus, got %d articles", len(articles))
	}
}

func TestCorpusStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	store := NewCorpusStore(path)

	published := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	in := []article.Article{{
		UniqueID:       "https://example.com/1",
		Title:          "Malaria vaccine reaches new districts",
		URL:            "https://example.com/1",
		PublishedAt:    &published,
		Source:         "WHO RSS",
		Language:       "en",
		RelevanceScore: 55,
		Country:        "Ghana",
		Continent:      "Africa",
		Translations:   map[string]article.Translation{"fr": {Title: "t", Description: "d"}},
	}}
	if err := store.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 article, got %d", len(out))
	}
	got := out[0]
	if got.UniqueID != in[0].UniqueID || got.Country != "Ghana" || got.RelevanceScore != 55 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.PublishedAt == nil || !got.PublishedAt.Equal(published) {
		t.Errorf("published date mismatch: %v", got.PublishedAt)
	}
	if got.Translations["fr"].Title != "t" {
		t.Errorf("translations lost in round trip")
	}
}

func TestCorpusStore_NilPublishedAtSurvives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	store := NewCorpusStore(path)

	if err := store.Save([]article.Article{{UniqueID: "x", Title: "Undated"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out[0].PublishedAt != nil {
		t.Errorf("unknown date must stay nil, got %v", out[0].PublishedAt)
	}
}

func TestCorpusStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewCorpusStore(filepath.Join(dir, "news.json"))
	if err := store.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "news.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only news.json, found %v", names)
	}
}

func TestTranslationCache_MissingFileStartsEmpty(t *testing.T) {
	cache := NewTranslationCache(filepath.Join(t.TempDir(), "cache.json"))
	if err := cache.Load(); err != nil {
		t.Fatalf("missing cache must not error: %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", cache.Len())
	}
}

func TestTranslationCache_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	cache := NewTranslationCache(path)
	cache.Put("Malaria cases rise", "fr", "Les cas de paludisme augmentent")
	if err := cache.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := NewTranslationCache(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	got, ok := reloaded.Get("Malaria cases rise", "fr")
	if !ok || got != "Les cas de paludisme augmentent" {
		t.Errorf("round trip failed: %q ok=%v", got, ok)
	}
	if _, ok := reloaded.Get("Malaria cases rise", "pt"); ok {
		t.Error("unexpected hit for uncached language")
	}
}

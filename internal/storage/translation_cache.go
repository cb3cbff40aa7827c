package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/deusflow/malariawatch/internal/logger"
)

// TranslationCache maps original source text to its translations by language
// code. It is loaded at process start, mutated during the translation stage
// and persisted at process end. Entries are never pruned: disease-news
// phrasing repeats heavily run over run, which caps the working set.
type TranslationCache struct {
	path string

	mu      sync.RWMutex
	entries map[string]map[string]string
}

func NewTranslationCache(path string) *TranslationCache {
	return &TranslationCache{
		path:    path,
		entries: make(map[string]map[string]string),
	}
}

// Load reads the cache file. A missing file starts an empty cache.
func (c *TranslationCache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("translation cache not found, starting empty", "path", c.path)
			return nil
		}
		return fmt.Errorf("read translation cache: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		return fmt.Errorf("unmarshal translation cache: %w", err)
	}
	logger.Info("translation cache loaded", "entries", len(c.entries))
	return nil
}

// Save persists the cache atomically.
func (c *TranslationCache) Save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c.entries, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal translation cache: %w", err)
	}
	if err := writeAtomic(c.path, data); err != nil {
		return fmt.Errorf("write translation cache: %w", err)
	}
	logger.Info("translation cache saved", "entries", c.Len())
	return nil
}

// Get returns the cached translation of text into lang.
func (c *TranslationCache) Get(text, lang string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byLang, ok := c.entries[text]
	if !ok {
		return "", false
	}
	translated, ok := byLang[lang]
	return translated, ok
}

// Put writes a translation through to the cache.
func (c *TranslationCache) Put(text, lang, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	byLang, ok := c.entries[text]
	if !ok {
		byLang = make(map[string]string)
		c.entries[text] = byLang
	}
	byLang[lang] = translated
}

func (c *TranslationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

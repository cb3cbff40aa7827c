// Package storage persists the two artifacts shared across runs: the
// article corpus and the translation cache. Both are read once at the start
// of a run and written once at the end; a run owns them exclusively.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/logger"
)

// CorpusStore reads and writes the persisted article corpus as a JSON array.
type CorpusStore struct {
	path string
}

func NewCorpusStore(path string) *CorpusStore {
	return &CorpusStore{path: path}
}

// Load reads the existing corpus. A missing file is not an error — the run
// starts from an empty corpus.
func (s *CorpusStore) Load() ([]article.Article, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("corpus file not found, starting fresh", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var articles []article.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("unmarshal corpus: %w", err)
	}
	logger.Info("corpus loaded", "articles", len(articles), "path", s.path)
	return articles, nil
}

// Save writes the corpus atomically: the JSON is written to a temp file in
// the same directory and renamed over the target, so a crash mid-write
// leaves the previous corpus authoritative.
func (s *CorpusStore) Save(articles []article.Article) error {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal corpus: %w", err)
	}
	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	logger.Info("corpus saved", "articles", len(articles), "path", s.path)
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

package metrics

import (
	"sync"
	"time"
)

// Metrics accumulates counters for one aggregation process, exposed by the
// optional monitoring endpoints.
type Metrics struct {
	mu sync.RWMutex

	// Counters
	ArticlesFetched        int64
	DuplicatesFiltered     int64
	LowScoreFiltered       int64
	StaleFiltered          int64
	SuccessfulTranslations int64
	FailedTranslations     int64
	ArticlesAppended       int64
	SourceFailures         int64

	// Timings
	LastRunDuration    time.Duration
	TotalRunDuration   time.Duration
	AverageRunDuration time.Duration
	RunCount           int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesFetched += int64(n)
}

func (m *Metrics) AddDuplicates(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered += int64(n)
}

func (m *Metrics) AddLowScore(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LowScoreFiltered += int64(n)
}

func (m *Metrics) AddStale(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StaleFiltered += int64(n)
}

func (m *Metrics) IncrementSuccessfulTranslations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SuccessfulTranslations++
}

func (m *Metrics) IncrementFailedTranslations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailedTranslations++
}

func (m *Metrics) AddAppended(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesAppended += int64(n)
}

func (m *Metrics) IncrementSourceFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourceFailures++
}

func (m *Metrics) RecordRun(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastRunDuration = duration
	m.TotalRunDuration += duration
	m.RunCount++
	m.AverageRunDuration = m.TotalRunDuration / time.Duration(m.RunCount)
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"articles_fetched":        m.ArticlesFetched,
		"duplicates_filtered":     m.DuplicatesFiltered,
		"low_score_filtered":      m.LowScoreFiltered,
		"stale_filtered":          m.StaleFiltered,
		"successful_translations": m.SuccessfulTranslations,
		"failed_translations":     m.FailedTranslations,
		"articles_appended":       m.ArticlesAppended,
		"source_failures":         m.SourceFailures,
		"last_run_duration_ms":    m.LastRunDuration.Milliseconds(),
		"average_run_duration_ms": m.AverageRunDuration.Milliseconds(),
		"last_run_time":           m.LastRunTime.Format(time.RFC3339),
		"last_error_time":         m.LastErrorTime.Format(time.RFC3339),
		"last_error":              m.LastError,
		"is_healthy":              m.IsHealthy,
	}
}

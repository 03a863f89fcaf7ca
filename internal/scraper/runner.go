// Package scraper drives batch enrichment runs across (region, topic)
// search queries.
package scraper

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/satyaprakashdhfm/news-categorize/internal/dna"
	"github.com/satyaprakashdhfm/news-categorize/internal/enrich"
	"github.com/satyaprakashdhfm/news-categorize/internal/model"
	"github.com/satyaprakashdhfm/news-categorize/internal/thread"
	"github.com/satyaprakashdhfm/news-categorize/pkg/search"
)

// ErrAlreadyRunning is returned when a run is requested while one is active.
// Runs never queue.
var ErrAlreadyRunning = errors.New("scraping is already running")

// Store is everything the runner needs from persistence. One implementation
// is repository.ArticleRepository.
type Store interface {
	FindBySourceURL(url string) (*model.Article, error)
	FindRecentByRegion(region model.Region, limit int) ([]model.Article, error)
	MaxSequence(region model.Region, category model.Category, year int) (int, error)
	FindByID(id string) (*model.Article, error)
	Insert(a *model.Article) error
}

// Runner executes one sequential run at a time. Sequential processing is
// deliberate: it respects provider rate limits and keeps sequence assignment
// race-free without locking the partition.
type Runner struct {
	store    Store
	search   search.Client
	pipeline *enrich.Pipeline
	assigner *dna.Assigner

	maxResults   int
	recentLimit  int
	maxAttempts  int
	retryDelay   time.Duration
	requestDelay time.Duration
	articleDelay time.Duration
	now          func() time.Time

	mu      sync.Mutex
	running bool
	stop    bool
	stats   model.RunStats
}

func NewRunner(store Store, searchClient search.Client, pipeline *enrich.Pipeline) *Runner {
	return &Runner{
		store:        store,
		search:       searchClient,
		pipeline:     pipeline,
		assigner:     dna.NewAssigner(store),
		maxResults:   5,
		recentLimit:  5,
		maxAttempts:  3,
		retryDelay:   2 * time.Second,
		requestDelay: 3 * time.Second,
		articleDelay: 500 * time.Millisecond,
		now:          time.Now,
		stats:        model.RunStats{Status: model.RunIdle},
	}
}

// Start kicks off a run in the background; it fails fast if one is active.
func (r *Runner) Start(regions, topics []string, date string) error {
	if err := r.begin(); err != nil {
		return err
	}
	go func() {
		if _, err := r.run(regions, topics, date); err != nil {
			slog.Error("scraping run failed", "error", err)
		}
	}()
	return nil
}

// Run executes synchronously and returns the final stats.
func (r *Runner) Run(regions, topics []string, date string) (model.RunStats, error) {
	if err := r.begin(); err != nil {
		return r.Stats(), err
	}
	return r.run(regions, topics, date)
}

func (r *Runner) RequestStop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stop = true
}

func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Stats returns a snapshot safe for concurrent polling.
func (r *Runner) Stats() model.RunStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.stats
	snapshot.Regions = append([]string{}, r.stats.Regions...)
	snapshot.Categories = append([]string{}, r.stats.Categories...)
	return snapshot
}

func (r *Runner) begin() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return ErrAlreadyRunning
	}

	r.running = true
	r.stop = false
	r.stats = model.RunStats{Status: model.RunRunning}
	return nil
}

func (r *Runner) run(regions, topics []string, date string) (stats model.RunStats, err error) {
	defer r.finish()
	defer func() {
		// An escape from the per-candidate boundary is fatal to the run but
		// must not take the process down with it.
		if rec := recover(); rec != nil {
			r.setStatus(model.RunError)
			err = fmt.Errorf("fatal run error: %v", rec)
			stats = r.Stats()
		}
	}()

	slog.Info("scraping run started", "regions", len(regions), "topics", len(topics), "date", date)

	firstSearch := true
	for _, rawRegion := range regions {
		if r.stopRequested() {
			r.setStatus(model.RunStopped)
			slog.Info("scraping run stopped on request")
			return r.Stats(), nil
		}

		region, ok := model.ParseRegion(rawRegion)
		if !ok {
			slog.Warn("unknown region, skipping", "region", rawRegion)
			r.mutate(func(s *model.RunStats) { s.Errors++ })
			continue
		}
		r.mutate(func(s *model.RunStats) { s.AddRegion(region) })

		for _, topic := range topics {
			if r.stopRequested() {
				r.setStatus(model.RunStopped)
				slog.Info("scraping run stopped on request")
				return r.Stats(), nil
			}

			// Cooperative pacing against the search provider's terms.
			if !firstSearch {
				time.Sleep(r.requestDelay)
			}
			firstSearch = false

			query := fmt.Sprintf("%s %s news %s", region.DisplayName(), topic, date)
			results, searchErr := r.searchWithRetry(query)
			if searchErr != nil {
				slog.Error("search failed, moving to next query", "query", query, "error", searchErr)
				r.mutate(func(s *model.RunStats) { s.Errors++ })
				continue
			}

			r.mutate(func(s *model.RunStats) { s.TotalFound += len(results) })

			for i, res := range results {
				if i > 0 {
					time.Sleep(r.articleDelay)
				}
				r.processCandidate(region, res)
			}
		}
	}

	r.setStatus(model.RunCompleted)
	slog.Info("scraping run completed")
	return r.Stats(), nil
}

func (r *Runner) searchWithRetry(query string) ([]search.Result, error) {
	var lastErr error
	delay := r.retryDelay

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		results, err := r.search.Search(query, r.maxResults)
		if err == nil {
			return results, nil
		}

		lastErr = err
		slog.Warn("search attempt failed", "query", query, "attempt", attempt, "error", err)
		if attempt < r.maxAttempts {
			time.Sleep(delay)
			delay *= 2
		}
	}

	return nil, fmt.Errorf("search failed after %d attempts: %w", r.maxAttempts, lastErr)
}

// processCandidate handles one search hit end to end. Rejections and storage
// failures are counted and never abort the batch.
func (r *Runner) processCandidate(region model.Region, res search.Result) {
	if reason := rejectReason(res); reason != "" {
		slog.Info("candidate rejected", "url", res.URL, "reason", reason)
		r.mutate(func(s *model.RunStats) { s.Skipped++ })
		return
	}

	// Dedup check happens per candidate, right before enrichment: an earlier
	// candidate in this same run may have created the duplicate.
	existing, err := r.store.FindBySourceURL(res.URL)
	if err != nil {
		slog.Error("duplicate lookup failed", "url", res.URL, "error", err)
		r.mutate(func(s *model.RunStats) { s.Errors++ })
		return
	}
	if existing != nil {
		slog.Info("duplicate article skipped", "url", res.URL)
		r.mutate(func(s *model.RunStats) { s.Skipped++ })
		return
	}

	recent, err := r.store.FindRecentByRegion(region, r.recentLimit)
	if err != nil {
		slog.Error("recent articles lookup failed", "region", region, "error", err)
		r.mutate(func(s *model.RunStats) { s.Errors++ })
		return
	}

	candidates := make([]enrich.Candidate, 0, len(recent))
	for _, a := range recent {
		candidates = append(candidates, enrich.Candidate{ID: a.ID, Title: a.Title, SourceURL: a.SourceURL})
	}

	out := r.pipeline.Process(model.RawCandidate{
		Title:         res.Title,
		Content:       res.Content,
		URL:           res.URL,
		PublishedDate: res.PublishedDate,
		Region:        region,
	}, candidates)

	year := r.now().UTC().Year()
	seq, code, err := r.assigner.Next(region, out.Category, year)
	if err != nil {
		slog.Error("sequence assignment failed", "url", res.URL, "error", err)
		r.mutate(func(s *model.RunStats) { s.Errors++ })
		return
	}

	parentID, threadID, err := thread.Resolve(out.Decision, r.store)
	if err != nil {
		slog.Error("thread resolution failed", "url", res.URL, "error", err)
		r.mutate(func(s *model.RunStats) { s.Errors++ })
		return
	}

	article := &model.Article{
		ID:          uuid.NewString(),
		DNACode:     code,
		Title:       clamp(res.Title, maxTitleLen),
		Content:     clamp(res.Content, maxContentLen),
		Summary:     clamp(out.Summary, maxSummaryLen),
		SourceURL:   clamp(res.URL, maxURLLen),
		PublishedAt: parsePublishedDate(res.PublishedDate, r.now()),
		ScrapedAt:   r.now(),
		Region:      region,
		Category:    out.Category,
		Year:        year,
		SequenceNum: seq,
		ThreadID:    threadID,
		ParentID:    parentID,
	}

	if err := r.store.Insert(article); err != nil {
		slog.Error("article insert failed, rolled back", "dna_code", code, "error", err)
		r.mutate(func(s *model.RunStats) { s.Errors++ })
		return
	}

	r.mutate(func(s *model.RunStats) {
		s.Processed++
		s.AddCategory(out.Category)
	})
	slog.Info("article saved", "dna_code", code, "thread_id", threadID)
}

func parsePublishedDate(raw string, fallback time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return fallback
}

func (r *Runner) stopRequested() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stop
}

func (r *Runner) setStatus(status model.RunStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Status = status
}

func (r *Runner) mutate(fn func(*model.RunStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.stats)
}

func (r *Runner) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	if r.stats.Status == model.RunRunning {
		r.stats.Status = model.RunCompleted
	}
}

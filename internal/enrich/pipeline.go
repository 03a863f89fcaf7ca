package enrich

import (
	"log/slog"
	"strings"
	"time"

	"github.com/satyaprakashdhfm/news-categorize/internal/model"
	"github.com/satyaprakashdhfm/news-categorize/pkg/llm"
)

// DecisionNewThread is the sentinel a thread-match call returns when the
// article does not continue any known story.
const DecisionNewThread = "NEW_THREAD"

const (
	StageCategorize  = "categorize"
	StageSummarize   = "summarize"
	StageThreadMatch = "thread_match"
)

// Candidate is one recent same-region article offered as a potential
// continuation parent.
type Candidate struct {
	ID        string
	Title     string
	SourceURL string
}

// Result is the pipeline output. Category is always a member of the closed
// set; Decision is either DecisionNewThread or whatever id-like string the
// provider returned, to be validated by the threading resolver.
type Result struct {
	Category model.Category
	Summary  string
	Decision string
}

// Pipeline runs the fixed categorize -> summarize -> thread-match workflow.
// Every stage degrades to a safe default on provider failure; Process never
// returns an error.
type Pipeline struct {
	gen  llm.Generator
	sink MetricSink
}

func NewPipeline(gen llm.Generator, sink MetricSink) *Pipeline {
	return &Pipeline{gen: gen, sink: sink}
}

func (p *Pipeline) Process(candidate model.RawCandidate, recent []Candidate) Result {
	return Result{
		Category: p.classify(candidate.Title, candidate.Content),
		Summary:  p.summarize(candidate.Title, candidate.Content),
		Decision: p.threadMatch(candidate.Title, candidate.URL, recent),
	}
}

func (p *Pipeline) classify(title, content string) model.Category {
	out, err := p.generate(StageCategorize, categorizePrompt(title, content))
	if err != nil {
		slog.Warn("categorize call failed, using default category", "error", err, "title", title)
		return model.DefaultCategory
	}

	category, ok := model.ParseCategory(out)
	if !ok {
		slog.Warn("categorize returned out-of-set value, using default category", "raw", out, "title", title)
	}
	return category
}

func (p *Pipeline) summarize(title, content string) string {
	out, err := p.generate(StageSummarize, summarizePrompt(title, content))
	if err != nil || strings.TrimSpace(out) == "" {
		slog.Warn("summarize call failed, falling back to title", "error", err, "title", title)
		return title
	}
	return strings.TrimSpace(out)
}

func (p *Pipeline) threadMatch(title, url string, recent []Candidate) string {
	// No candidates means no story to continue; skip the provider call.
	if len(recent) == 0 {
		return DecisionNewThread
	}

	out, err := p.generate(StageThreadMatch, threadPrompt(title, url, recent))
	if err != nil {
		slog.Warn("thread match call failed, starting new thread", "error", err, "title", title)
		return DecisionNewThread
	}

	decision := strings.TrimSpace(out)
	if decision == "" {
		return DecisionNewThread
	}
	return decision
}

func (p *Pipeline) generate(stage, prompt string) (string, error) {
	start := time.Now()
	out, err := p.gen.Generate(prompt)

	if p.sink != nil {
		p.sink.Record(StageMetric{
			Stage:    stage,
			Model:    p.gen.ModelName(),
			Duration: time.Since(start),
			Failed:   err != nil,
			At:       start,
		})
	}

	return out, err
}

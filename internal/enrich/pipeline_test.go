package enrich

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/satyaprakashdhfm/news-categorize/internal/model"
)

// fakeGenerator answers prompts by stage keyword so a single fake can serve
// all three stages of one Process call.
type fakeGenerator struct {
	categoryOut string
	categoryErr error
	summaryOut  string
	summaryErr  error
	threadOut   string
	threadErr   error
	calls       int
}

func (f *fakeGenerator) Generate(prompt string) (string, error) {
	f.calls++
	switch {
	case strings.Contains(prompt, "categorization expert"):
		return f.categoryOut, f.categoryErr
	case strings.Contains(prompt, "summarization expert"):
		return f.summaryOut, f.summaryErr
	default:
		return f.threadOut, f.threadErr
	}
}

func (f *fakeGenerator) ModelName() string {
	return "fake-model"
}

type recordingSink struct {
	metrics []StageMetric
}

func (s *recordingSink) Record(m StageMetric) {
	s.metrics = append(s.metrics, m)
}

var testCandidate = model.RawCandidate{
	Title:   "Fed raises rates amid inflation concerns",
	Content: "The Federal Reserve raised interest rates by 25 basis points.",
	URL:     "https://example.com/a1",
	Region:  model.RegionUSA,
}

func TestProcessHappyPath(t *testing.T) {
	gen := &fakeGenerator{
		categoryOut: "ECO",
		summaryOut:  "The Fed raised rates. Markets reacted calmly.",
		threadOut:   "article-42",
	}
	p := NewPipeline(gen, nil)

	recent := []Candidate{{ID: "article-42", Title: "Fed signals rate hike", SourceURL: "https://example.com/a0"}}
	res := p.Process(testCandidate, recent)

	assert.Equal(t, model.CategoryEconomy, res.Category)
	assert.Equal(t, "The Fed raised rates. Markets reacted calmly.", res.Summary)
	assert.Equal(t, "article-42", res.Decision)
	assert.Equal(t, 3, gen.calls)
}

func TestClassifyLowercaseAccepted(t *testing.T) {
	gen := &fakeGenerator{categoryOut: " pol ", summaryOut: "s", threadOut: "NEW_THREAD"}
	p := NewPipeline(gen, nil)

	res := p.Process(testCandidate, []Candidate{{ID: "x"}})
	assert.Equal(t, model.CategoryPolitics, res.Category)
}

func TestClassifyOutOfSetFallsBack(t *testing.T) {
	gen := &fakeGenerator{categoryOut: "FINANCE", summaryOut: "s", threadOut: "NEW_THREAD"}
	p := NewPipeline(gen, nil)

	res := p.Process(testCandidate, []Candidate{{ID: "x"}})
	assert.Equal(t, model.DefaultCategory, res.Category)
}

func TestClassifyErrorFallsBack(t *testing.T) {
	gen := &fakeGenerator{categoryErr: errors.New("provider down"), summaryOut: "s", threadOut: "NEW_THREAD"}
	p := NewPipeline(gen, nil)

	res := p.Process(testCandidate, []Candidate{{ID: "x"}})
	assert.Equal(t, model.DefaultCategory, res.Category)
}

func TestSummarizeErrorFallsBackToTitle(t *testing.T) {
	gen := &fakeGenerator{categoryOut: "ECO", summaryErr: errors.New("provider down"), threadOut: "NEW_THREAD"}
	p := NewPipeline(gen, nil)

	res := p.Process(testCandidate, []Candidate{{ID: "x"}})
	assert.Equal(t, testCandidate.Title, res.Summary)
}

func TestSummarizeEmptyFallsBackToTitle(t *testing.T) {
	gen := &fakeGenerator{categoryOut: "ECO", summaryOut: "  ", threadOut: "NEW_THREAD"}
	p := NewPipeline(gen, nil)

	res := p.Process(testCandidate, []Candidate{{ID: "x"}})
	assert.Equal(t, testCandidate.Title, res.Summary)
}

func TestThreadMatchEmptyCandidatesSkipsProviderCall(t *testing.T) {
	gen := &fakeGenerator{categoryOut: "ECO", summaryOut: "s"}
	p := NewPipeline(gen, nil)

	res := p.Process(testCandidate, nil)

	assert.Equal(t, DecisionNewThread, res.Decision)
	// Only categorize and summarize should have hit the provider.
	assert.Equal(t, 2, gen.calls)
}

func TestThreadMatchErrorFallsBackToNewThread(t *testing.T) {
	gen := &fakeGenerator{categoryOut: "ECO", summaryOut: "s", threadErr: errors.New("provider down")}
	p := NewPipeline(gen, nil)

	res := p.Process(testCandidate, []Candidate{{ID: "x"}})
	assert.Equal(t, DecisionNewThread, res.Decision)
}

func TestThreadMatchPassesUnknownIDThrough(t *testing.T) {
	gen := &fakeGenerator{categoryOut: "ECO", summaryOut: "s", threadOut: "not-a-real-id"}
	p := NewPipeline(gen, nil)

	res := p.Process(testCandidate, []Candidate{{ID: "x"}})
	// Validation against stored articles is the resolver's job.
	assert.Equal(t, "not-a-real-id", res.Decision)
}

func TestSinkRecordsEveryStage(t *testing.T) {
	gen := &fakeGenerator{categoryOut: "TEC", summaryOut: "s", threadOut: "NEW_THREAD"}
	sink := &recordingSink{}
	p := NewPipeline(gen, sink)

	p.Process(testCandidate, []Candidate{{ID: "x"}})

	assert.Equal(t, 3, len(sink.metrics))
	assert.Equal(t, StageCategorize, sink.metrics[0].Stage)
	assert.Equal(t, StageSummarize, sink.metrics[1].Stage)
	assert.Equal(t, StageThreadMatch, sink.metrics[2].Stage)
	assert.Equal(t, "fake-model", sink.metrics[0].Model)
}

func TestSinkFailureFlagSet(t *testing.T) {
	gen := &fakeGenerator{categoryErr: errors.New("boom"), summaryOut: "s", threadOut: "NEW_THREAD"}
	sink := &recordingSink{}
	p := NewPipeline(gen, sink)

	res := p.Process(testCandidate, []Candidate{{ID: "x"}})

	assert.Equal(t, model.DefaultCategory, res.Category)
	assert.Equal(t, true, sink.metrics[0].Failed)
	assert.Equal(t, false, sink.metrics[1].Failed)
}

func TestSinkAbsenceDoesNotChangeOutcome(t *testing.T) {
	gen1 := &fakeGenerator{categoryOut: "HEA", summaryOut: "sum", threadOut: "id-1"}
	gen2 := &fakeGenerator{categoryOut: "HEA", summaryOut: "sum", threadOut: "id-1"}

	withSink := NewPipeline(gen1, &recordingSink{})
	withoutSink := NewPipeline(gen2, nil)

	recent := []Candidate{{ID: "id-1"}}
	a := withSink.Process(testCandidate, recent)
	b := withoutSink.Process(testCandidate, recent)

	assert.Equal(t, a, b)
}

func TestTruncateBoundsPromptInput(t *testing.T) {
	long := strings.Repeat("x", 5000)

	p1 := categorizePrompt("t", long)
	p2 := summarizePrompt("t", long)

	assert.Equal(t, true, len(p1) < 2500)
	assert.Equal(t, true, len(p2) < 3500)
}

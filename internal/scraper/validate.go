package scraper

import (
	"net/url"

	"github.com/satyaprakashdhfm/news-categorize/pkg/search"
)

// Storage-safe field bounds. Provider output is clamped to these regardless
// of size; anything shorter than minTitleLen is junk, not an article.
const (
	minTitleLen   = 10
	maxTitleLen   = 500
	maxContentLen = 10000
	maxSummaryLen = 2000
	maxURLLen     = 1000
)

// rejectReason is empty when the candidate is acceptable. Rejections happen
// before any provider spend.
func rejectReason(res search.Result) string {
	if res.Title == "" {
		return "empty title"
	}
	if res.URL == "" {
		return "empty url"
	}

	u, err := url.Parse(res.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "url is not http(s)"
	}

	if len(res.Title) < minTitleLen || len(res.Title) > maxTitleLen {
		return "title length out of bounds"
	}

	return ""
}

func clamp(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

package enrich

import (
	"fmt"
	"strings"

	"github.com/satyaprakashdhfm/news-categorize/internal/model"
)

// Content sent to the classifier is cheaper to bound than the summary input,
// which needs more context to stay factual.
const (
	maxClassifyChars  = 2000
	maxSummarizeChars = 3000
)

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func categorizePrompt(title, content string) string {
	codes := make([]string, 0, len(model.AllCategories()))
	for _, c := range model.AllCategories() {
		codes = append(codes, string(c))
	}

	return fmt.Sprintf(
		"You are a news categorization expert. Classify the article into exactly one of these categories: %s. "+
			"Return ONLY the 3-letter code.\n\nTitle: %s\n\nContent: %s",
		strings.Join(codes, ", "), title, truncate(content, maxClassifyChars),
	)
}

func summarizePrompt(title, content string) string {
	return fmt.Sprintf(
		"You are a news summarization expert. Create a concise 2-3 sentence summary of the article. "+
			"Be factual and objective.\n\nTitle: %s\n\nContent: %s",
		title, truncate(content, maxSummarizeChars),
	)
}

func threadPrompt(title, url string, recent []Candidate) string {
	var sb strings.Builder
	ids := make([]string, 0, len(recent))
	for _, c := range recent {
		sb.WriteString(fmt.Sprintf("%s | %s | %s\n", c.ID, c.Title, c.SourceURL))
		ids = append(ids, c.ID)
	}

	return fmt.Sprintf(
		"Decide if the NEW article should be threaded with one of the EXISTING articles. "+
			"Choose the SINGLE most relevant existing article if related. "+
			"Return EXACTLY the chosen article's ID string. "+
			"If none are related, return '%s'. "+
			"Return only a bare ID or %s with no extra text.\n\n"+
			"New Article:\nTitle: %s\nURL: %s\n\n"+
			"Existing Articles (ID | Title | URL):\n%s\n"+
			"Return ONLY one of: %s, or %s.",
		DecisionNewThread, DecisionNewThread, title, url, sb.String(),
		strings.Join(ids, ", "), DecisionNewThread,
	)
}

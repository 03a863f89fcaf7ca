package search

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

const googleNewsEndpoint = "https://news.google.com/rss/search"

// GoogleNewsClient is a keyless fallback provider backed by the Google News
// RSS search feed. Descriptions stand in for article content, so enrichment
// quality is lower than with a real search API.
type GoogleNewsClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewGoogleNewsClient() *GoogleNewsClient {
	return &GoogleNewsClient{
		endpoint:   googleNewsEndpoint,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *GoogleNewsClient) Name() string {
	return "GoogleNews"
}

func (c *GoogleNewsClient) Search(query string, maxResults int) ([]Result, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", c.endpoint, url.QueryEscape(query))

	parser := gofeed.NewParser()
	parser.Client = c.httpClient

	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}

	results := make([]Result, 0, maxResults)
	for _, item := range feed.Items {
		if len(results) >= maxResults {
			break
		}

		published := item.Published
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.Format(time.RFC3339)
		}

		results = append(results, Result{
			Title:         item.Title,
			Content:       item.Description,
			URL:           item.Link,
			PublishedDate: published,
		})
	}

	return results, nil
}

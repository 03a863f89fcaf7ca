package search

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>"United States economy" - Google News</title>
    <item>
      <title>Fed raises rates amid inflation concerns</title>
      <link>https://example.com/a1</link>
      <pubDate>Mon, 01 Jan 2024 00:00:00 GMT</pubDate>
      <description>The Federal Reserve raised interest rates.</description>
    </item>
    <item>
      <title>Markets rally after jobs report</title>
      <link>https://example.com/a2</link>
      <pubDate>Mon, 01 Jan 2024 06:00:00 GMT</pubDate>
      <description>Stocks rose broadly.</description>
    </item>
  </channel>
</rss>`

func TestGoogleNewsSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEqual(t, "", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := &GoogleNewsClient{
		endpoint:   srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	results, err := client.Search("United States economy news", 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(results))
	assert.Equal(t, "Fed raises rates amid inflation concerns", results[0].Title)
	assert.Equal(t, "https://example.com/a1", results[0].URL)
	assert.Equal(t, "2024-01-01T00:00:00Z", results[0].PublishedDate)
}

func TestGoogleNewsSearchLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := &GoogleNewsClient{
		endpoint:   srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	results, err := client.Search("anything", 1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(results))
}

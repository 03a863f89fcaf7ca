package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestTavilySearch(t *testing.T) {
	payload := map[string]interface{}{
		"results": []map[string]interface{}{
			{
				"title":          "Fed raises rates amid inflation concerns",
				"content":        "The Federal Reserve raised interest rates by 25 basis points.",
				"url":            "https://example.com/a1",
				"published_date": "2024-01-01T00:00:00Z",
			},
		},
	}

	var gotBody tavilyRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &TavilyClient{
		apiKey:      "test-key",
		searchDepth: "advanced",
		endpoint:    srv.URL,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}

	results, err := client.Search("United States economy news 2024-01-01", 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(results))
	assert.Equal(t, "Fed raises rates amid inflation concerns", results[0].Title)
	assert.Equal(t, "https://example.com/a1", results[0].URL)
	assert.Equal(t, "2024-01-01T00:00:00Z", results[0].PublishedDate)

	assert.Equal(t, "test-key", gotBody.APIKey)
	assert.Equal(t, "United States economy news 2024-01-01", gotBody.Query)
	assert.Equal(t, "advanced", gotBody.SearchDepth)
	assert.Equal(t, 5, gotBody.MaxResults)
}

func TestTavilySearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := &TavilyClient{
		apiKey:      "test-key",
		searchDepth: "advanced",
		endpoint:    srv.URL,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}

	_, err := client.Search("anything", 5)
	assert.NotEqual(t, nil, err)
}

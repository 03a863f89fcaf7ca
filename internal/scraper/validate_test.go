package scraper

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/satyaprakashdhfm/news-categorize/pkg/search"
)

func TestRejectReason(t *testing.T) {
	ok := search.Result{
		Title: "Fed raises rates amid inflation concerns",
		URL:   "https://example.com/a1",
	}

	tests := []struct {
		name   string
		mutate func(*search.Result)
		want   string
	}{
		{"acceptable", func(r *search.Result) {}, ""},
		{"empty title", func(r *search.Result) { r.Title = "" }, "empty title"},
		{"empty url", func(r *search.Result) { r.URL = "" }, "empty url"},
		{"ftp scheme", func(r *search.Result) { r.URL = "ftp://example.com/a" }, "url is not http(s)"},
		{"relative url", func(r *search.Result) { r.URL = "/articles/1" }, "url is not http(s)"},
		{"garbage url", func(r *search.Result) { r.URL = "not-a-url" }, "url is not http(s)"},
		{"missing host", func(r *search.Result) { r.URL = "https://" }, "url is not http(s)"},
		{"title too short", func(r *search.Result) { r.Title = "Short" }, "title length out of bounds"},
		{"title too long", func(r *search.Result) { r.Title = strings.Repeat("a", maxTitleLen+1) }, "title length out of bounds"},
		{"title at max", func(r *search.Result) { r.Title = strings.Repeat("a", maxTitleLen) }, ""},
		{"title at min", func(r *search.Result) { r.Title = strings.Repeat("a", minTitleLen) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ok
			tt.mutate(&res)
			assert.Equal(t, tt.want, rejectReason(res))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, "abc", clamp("abc", 5))
	assert.Equal(t, "abc", clamp("abc", 3))
	assert.Equal(t, "ab", clamp("abc", 2))
	assert.Equal(t, "", clamp("", 4))
}

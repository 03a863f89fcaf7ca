package search

// Result is a raw article hit returned by a search provider.
type Result struct {
	Title         string
	Content       string
	URL           string
	PublishedDate string
}

type Client interface {
	Search(query string, maxResults int) ([]Result, error)
	Name() string
}

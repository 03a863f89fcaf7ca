package handler

type ArticleResponse struct {
	ID          string `json:"id"`
	DNACode     string `json:"dna_code"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	SourceURL   string `json:"source_url"`
	PublishedAt string `json:"published_at"`
	ScrapedAt   string `json:"scraped_at"`
	Region      string `json:"region"`
	Category    string `json:"category"`
	ThreadID    string `json:"thread_id,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
}

type FeedResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type ThreadResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Region       string            `json:"region"`
	Category     string            `json:"category"`
	StartDate    string            `json:"start_date"`
	LastUpdate   string            `json:"last_update"`
	ArticleCount int               `json:"article_count"`
	Articles     []ArticleResponse `json:"articles"`
}

type ThreadListResponse struct {
	Threads []ThreadResponse `json:"threads"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type OverviewResponse struct {
	TotalArticles  int            `json:"total_articles"`
	RecentArticles int            `json:"recent_articles_24h"`
	ActiveThreads  int            `json:"active_threads"`
	ByRegion       map[string]int `json:"by_region"`
	ByCategory     map[string]int `json:"by_category"`
}

type ScrapeRequest struct {
	Regions []string `json:"regions"`
	Topics  []string `json:"topics"`
	Date    string   `json:"date"`
}

type ScrapeProgressResponse struct {
	Status     string   `json:"status"`
	TotalFound int      `json:"total_found"`
	Processed  int      `json:"processed"`
	Skipped    int      `json:"skipped"`
	Errors     int      `json:"errors"`
	Regions    []string `json:"regions"`
	Categories []string `json:"categories"`
}

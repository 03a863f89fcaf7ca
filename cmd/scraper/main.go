package main

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/satyaprakashdhfm/news-categorize/db"
	"github.com/satyaprakashdhfm/news-categorize/internal/enrich"
	"github.com/satyaprakashdhfm/news-categorize/internal/metrics"
	"github.com/satyaprakashdhfm/news-categorize/internal/repository"
	"github.com/satyaprakashdhfm/news-categorize/internal/scraper"
	"github.com/satyaprakashdhfm/news-categorize/pkg/llm"
	"github.com/satyaprakashdhfm/news-categorize/pkg/search"
)

// One synchronous scraping run, driven by environment variables. Meant for
// cron and one-off backfills; the API server exposes the same runner over
// HTTP.
func main() {

	godotenv.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var sink enrich.MetricSink
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			slog.Warn("redis unavailable, stage metrics disabled", "error", err)
		} else {
			defer db.CloseRedis()
			sink = metrics.NewRedisSink()
		}
	}

	regions := splitCSV(os.Getenv("SCRAPE_REGIONS"))
	if len(regions) == 0 {
		regions = []string{"USA", "CHINA", "GERMANY", "INDIA", "JAPAN", "UK", "FRANCE", "ITALY"}
	}

	topics := splitCSV(os.Getenv("SCRAPE_TOPICS"))
	if len(topics) == 0 {
		topics = []string{"politics", "economy", "technology"}
	}

	date := os.Getenv("SCRAPE_DATE")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	articleRepo := repository.NewArticleRepository(db.DB)
	pipeline := enrich.NewPipeline(newGenerator(), sink)
	runner := scraper.NewRunner(articleRepo, newSearchClient(), pipeline)

	stats, err := runner.Run(regions, topics, date)
	if err != nil {
		log.Fatalf("scraping run failed: %v", err)
	}

	slog.Info("run finished",
		"status", stats.Status,
		"found", stats.TotalFound,
		"processed", stats.Processed,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
	)
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func newGenerator() llm.Generator {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		slog.Info("using anthropic for enrichment")
		return llm.NewAnthropicClient(key)
	}

	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Fatal("neither ANTHROPIC_API_KEY nor OPENAI_API_KEY is set")
	}
	slog.Info("using openai for enrichment")
	return llm.NewOpenAIClient(key)
}

func newSearchClient() search.Client {
	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		slog.Info("using tavily for search")
		return search.NewTavilyClient(key)
	}
	slog.Info("TAVILY_API_KEY not set, using google news rss for search")
	return search.NewGoogleNewsClient()
}

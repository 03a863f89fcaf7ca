package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/satyaprakashdhfm/news-categorize/db"
	"github.com/satyaprakashdhfm/news-categorize/internal/enrich"
	"github.com/satyaprakashdhfm/news-categorize/internal/handler"
	"github.com/satyaprakashdhfm/news-categorize/internal/metrics"
	"github.com/satyaprakashdhfm/news-categorize/internal/repository"
	"github.com/satyaprakashdhfm/news-categorize/internal/scraper"
	"github.com/satyaprakashdhfm/news-categorize/pkg/llm"
	"github.com/satyaprakashdhfm/news-categorize/pkg/search"
)

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

	articleRepo := repository.NewArticleRepository(db.DB)
	threadRepo := repository.NewThreadRepository(db.DB)

	pipeline := enrich.NewPipeline(newGenerator(), sink)
	runner := scraper.NewRunner(articleRepo, newSearchClient(), pipeline)

	articleHandler := handler.NewArticleHandler(articleRepo, threadRepo)
	scrapeHandler := handler.NewScrapeHandler(runner)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/articles", articleHandler.GetFeed)
	r.GET("/api/articles/stats/overview", articleHandler.GetOverview)
	r.GET("/api/articles/:id", articleHandler.GetArticle)
	r.GET("/api/threads", articleHandler.GetThreads)
	r.GET("/api/threads/:id", articleHandler.GetThread)
	r.POST("/api/admin/scraping/start", scrapeHandler.StartScraping)
	r.POST("/api/admin/scraping/stop", scrapeHandler.StopScraping)
	r.GET("/api/admin/scraping/progress", scrapeHandler.GetProgress)
	r.GET("/api/admin/scraping/status", scrapeHandler.GetStatus)
	r.GET("/health", articleHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// newGenerator prefers Anthropic and falls back to OpenAI.
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

// newSearchClient prefers Tavily and falls back to the Google News RSS feed,
// which needs no key.
func newSearchClient() search.Client {
	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		slog.Info("using tavily for search")
		return search.NewTavilyClient(key)
	}
	slog.Info("TAVILY_API_KEY not set, using google news rss for search")
	return search.NewGoogleNewsClient()
}

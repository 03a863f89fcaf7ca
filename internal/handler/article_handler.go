package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/satyaprakashdhfm/news-categorize/internal/model"
)

type ArticleStore interface {
	GetFeed(limit, offset int, region string, categories []string) ([]model.Article, error)
	GetFeedTotal(region string, categories []string) (int, error)
	FindByID(id string) (*model.Article, error)
	GetByThreadID(threadID string) ([]model.Article, error)
	GetOverview() (*model.Overview, error)
}

type ThreadStore interface {
	GetThreadByID(id string) (*model.StoryThread, error)
	GetThreads(limit, offset int) ([]model.StoryThread, error)
	GetThreadTotal() (int, error)
}

type ArticleHandler struct {
	articles ArticleStore
	threads  ThreadStore
}

func NewArticleHandler(articles ArticleStore, threads ThreadStore) *ArticleHandler {
	return &ArticleHandler{articles: articles, threads: threads}
}

func (h *ArticleHandler) GetFeed(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	region := strings.ToUpper(strings.TrimSpace(c.Query("region")))
	if region != "" {
		if _, ok := model.ParseRegion(region); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown region"})
			return
		}
	}

	var categories []string
	if raw := c.Query("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			category, ok := model.ParseCategory(part)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + part})
				return
			}
			categories = append(categories, string(category))
		}
	}

	articles, err := h.articles.GetFeed(limit, offset, region, categories)
	if err != nil {
		slog.Error("error fetching feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.articles.GetFeedTotal(region, categories)
	if err != nil {
		slog.Error("error fetching feed total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := FeedResponse{
		Articles: toArticleResponses(articles),
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")

	article, err := h.articles.FindByID(id)
	if err != nil {
		slog.Error("error fetching article", "error", err, "article_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(*article))
}

func (h *ArticleHandler) GetThread(c *gin.Context) {
	id := c.Param("id")

	thread, err := h.threads.GetThreadByID(id)
	if err != nil {
		slog.Error("error fetching thread", "error", err, "thread_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if thread == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thread not found"})
		return
	}

	articles, err := h.articles.GetByThreadID(id)
	if err != nil {
		slog.Error("error fetching thread articles", "error", err, "thread_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toThreadResponse(*thread, articles))
}

func (h *ArticleHandler) GetThreads(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	threads, err := h.threads.GetThreads(limit, offset)
	if err != nil {
		slog.Error("error fetching threads", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.threads.GetThreadTotal()
	if err != nil {
		slog.Error("error fetching thread total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ThreadListResponse{Threads: []ThreadResponse{}, Total: total, Limit: limit, Offset: offset}
	for _, t := range threads {
		res.Threads = append(res.Threads, toThreadResponse(t, nil))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetOverview(c *gin.Context) {
	overview, err := h.articles.GetOverview()
	if err != nil {
		slog.Error("error fetching overview", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, OverviewResponse{
		TotalArticles:  overview.TotalArticles,
		RecentArticles: overview.RecentArticles,
		ActiveThreads:  overview.ActiveThreads,
		ByRegion:       overview.RegionCounts,
		ByCategory:     overview.CategoryCounts,
	})
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	_, err := h.articles.GetFeedTotal("", nil)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toArticleResponse(a model.Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		DNACode:     a.DNACode,
		Title:       a.Title,
		Content:     a.Content,
		Summary:     a.Summary,
		SourceURL:   a.SourceURL,
		PublishedAt: a.PublishedAt.Format(time.RFC3339),
		ScrapedAt:   a.ScrapedAt.Format(time.RFC3339),
		Region:      string(a.Region),
		Category:    string(a.Category),
		ThreadID:    a.ThreadID,
		ParentID:    a.ParentID,
	}
}

func toArticleResponses(articles []model.Article) []ArticleResponse {
	res := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, toArticleResponse(a))
	}
	return res
}

func toThreadResponse(t model.StoryThread, articles []model.Article) ThreadResponse {
	return ThreadResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Region:       string(t.Region),
		Category:     string(t.Category),
		StartDate:    t.StartDate.Format(time.RFC3339),
		LastUpdate:   t.LastUpdate.Format(time.RFC3339),
		ArticleCount: t.ArticleCount,
		Articles:     toArticleResponses(articles),
	}
}

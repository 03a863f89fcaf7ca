package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/satyaprakashdhfm/news-categorize/internal/model"
	"github.com/satyaprakashdhfm/news-categorize/internal/scraper"
)

// ScrapeController is what the admin endpoints need from the runner.
type ScrapeController interface {
	Start(regions, topics []string, date string) error
	RequestStop()
	IsRunning() bool
	Stats() model.RunStats
}

type ScrapeHandler struct {
	runner ScrapeController
}

func NewScrapeHandler(runner ScrapeController) *ScrapeHandler {
	return &ScrapeHandler{runner: runner}
}

var defaultTopics = []string{"politics", "economy", "technology"}

func defaultRegions() []string {
	return []string{"USA", "CHINA", "GERMANY", "INDIA", "JAPAN", "UK", "FRANCE", "ITALY"}
}

func (h *ScrapeHandler) StartScraping(c *gin.Context) {
	// An empty body means "run with defaults".
	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(req.Regions) == 0 {
		req.Regions = defaultRegions()
	}
	if len(req.Topics) == 0 {
		req.Topics = defaultTopics
	}
	if req.Date == "" {
		req.Date = time.Now().UTC().Format("2006-01-02")
	}

	for _, raw := range req.Regions {
		if _, ok := model.ParseRegion(raw); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown region: " + raw})
			return
		}
	}

	if err := h.runner.Start(req.Regions, req.Topics, req.Date); err != nil {
		if errors.Is(err, scraper.ErrAlreadyRunning) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Scraping is already running"})
			return
		}
		slog.Error("error starting scraping run", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start scraping"})
		return
	}

	slog.Info("scraping run accepted", "regions", req.Regions, "topics", req.Topics, "date", req.Date)
	c.JSON(http.StatusOK, gin.H{
		"status":  string(model.RunRunning),
		"regions": req.Regions,
		"topics":  req.Topics,
		"date":    req.Date,
	})
}

func (h *ScrapeHandler) StopScraping(c *gin.Context) {
	if !h.runner.IsRunning() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No scraping run in progress"})
		return
	}

	h.runner.RequestStop()
	c.JSON(http.StatusOK, gin.H{"status": "stop requested"})
}

func (h *ScrapeHandler) GetProgress(c *gin.Context) {
	stats := h.runner.Stats()
	c.JSON(http.StatusOK, ScrapeProgressResponse{
		Status:     string(stats.Status),
		TotalFound: stats.TotalFound,
		Processed:  stats.Processed,
		Skipped:    stats.Skipped,
		Errors:     stats.Errors,
		Regions:    stats.Regions,
		Categories: stats.Categories,
	})
}

func (h *ScrapeHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"is_running": h.runner.IsRunning(),
		"status":     string(h.runner.Stats().Status),
	})
}

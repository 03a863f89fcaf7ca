package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/satyaprakashdhfm/news-categorize/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const articleColumns = `id, dna_code, title, content, summary, source_url, published_at, scraped_at,
		region, category, year, sequence_num, COALESCE(thread_id, ''), COALESCE(parent_id, '')`

func scanArticle(row interface{ Scan(...any) error }) (*model.Article, error) {
	var a model.Article
	err := row.Scan(&a.ID, &a.DNACode, &a.Title, &a.Content, &a.Summary, &a.SourceURL,
		&a.PublishedAt, &a.ScrapedAt, &a.Region, &a.Category, &a.Year, &a.SequenceNum,
		&a.ThreadID, &a.ParentID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindBySourceURL is the deduplication lookup; (nil, nil) when the URL is new.
func (r *ArticleRepository) FindBySourceURL(url string) (*model.Article, error) {
	a, err := scanArticle(r.db.QueryRow(`
		SELECT `+articleColumns+`
		FROM article
		WHERE source_url = $1
	`, url))

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *ArticleRepository) FindByID(id string) (*model.Article, error) {
	a, err := scanArticle(r.db.QueryRow(`
		SELECT `+articleColumns+`
		FROM article
		WHERE id = $1
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *ArticleRepository) FindRecentByRegion(region model.Region, limit int) ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT `+articleColumns+`
		FROM article
		WHERE region = $1
		ORDER BY published_at DESC
		LIMIT $2
	`, region, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *ArticleRepository) MaxSequence(region model.Region, category model.Category, year int) (int, error) {
	var max int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(sequence_num), 0)
		FROM article
		WHERE region = $1 AND category = $2 AND year = $3
	`, region, category, year).Scan(&max)
	return max, err
}

// Insert persists one article and, when it attaches to a thread, upserts the
// denormalized story_thread row in the same transaction. A failure anywhere
// rolls back the whole per-article write.
func (r *ArticleRepository) Insert(a *model.Article) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO article(id, dna_code, title, content, summary, source_url, published_at, scraped_at,
			region, category, year, sequence_num, thread_id, parent_id)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, a.ID, a.DNACode, a.Title, a.Content, a.Summary, a.SourceURL, a.PublishedAt, a.ScrapedAt,
		a.Region, a.Category, a.Year, a.SequenceNum, nullable(a.ThreadID), nullable(a.ParentID))
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	if a.ThreadID != "" {
		if err := upsertThread(tx, a); err != nil {
			return fmt.Errorf("upsert thread %s: %w", a.ThreadID, err)
		}
	}

	return tx.Commit()
}

// upsertThread seeds the thread row from the root article on first attach
// and bumps the running count on every later one.
func upsertThread(tx *sql.Tx, a *model.Article) error {
	var rootTitle string
	var rootPublished sql.NullTime
	err := tx.QueryRow(`
		SELECT title, published_at FROM article WHERE id = $1
	`, a.ThreadID).Scan(&rootTitle, &rootPublished)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO story_thread(id, title, description, region, category, start_date, last_update, article_count)
		VALUES($1, $2, '', $3, $4, $5, NOW(), 2)
		ON CONFLICT (id) DO UPDATE
		SET article_count = story_thread.article_count + 1,
		    last_update = NOW()
	`, a.ThreadID, rootTitle, a.Region, a.Category, rootPublished.Time)
	return err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *ArticleRepository) GetFeed(limit, offset int, region string, categories []string) ([]model.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM article
		WHERE ($1 = '' OR region = $1)
		  AND (cardinality($2::text[]) = 0 OR category = ANY($2))
		ORDER BY published_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(query, region, pq.Array(categories), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *ArticleRepository) GetFeedTotal(region string, categories []string) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*)
		FROM article
		WHERE ($1 = '' OR region = $1)
		  AND (cardinality($2::text[]) = 0 OR category = ANY($2))
	`, region, pq.Array(categories)).Scan(&total)
	return total, err
}

func (r *ArticleRepository) GetByThreadID(threadID string) ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT `+articleColumns+`
		FROM article
		WHERE thread_id = $1 OR id = $1
		ORDER BY published_at ASC
	`, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *ArticleRepository) GetOverview() (*model.Overview, error) {
	o := &model.Overview{
		RegionCounts:   map[string]int{},
		CategoryCounts: map[string]int{},
	}

	err := r.db.QueryRow(`
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE scraped_at >= NOW() - INTERVAL '24 hours'),
		       COUNT(DISTINCT thread_id) FILTER (WHERE thread_id IS NOT NULL)
		FROM article
	`).Scan(&o.TotalArticles, &o.RecentArticles, &o.ActiveThreads)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`SELECT region, COUNT(*) FROM article GROUP BY region`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var region string
		var count int
		if err := rows.Scan(&region, &count); err != nil {
			return nil, err
		}
		o.RegionCounts[region] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	catRows, err := r.db.Query(`SELECT category, COUNT(*) FROM article GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer catRows.Close()
	for catRows.Next() {
		var category string
		var count int
		if err := catRows.Scan(&category, &count); err != nil {
			return nil, err
		}
		o.CategoryCounts[category] = count
	}
	if err := catRows.Err(); err != nil {
		return nil, err
	}

	return o, nil
}

func collectArticles(rows *sql.Rows) ([]model.Article, error) {
	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

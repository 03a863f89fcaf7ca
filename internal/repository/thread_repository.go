package repository

import (
	"database/sql"

	"github.com/satyaprakashdhfm/news-categorize/internal/model"
)

type ThreadRepository struct {
	db *sql.DB
}

func NewThreadRepository(db *sql.DB) *ThreadRepository {
	return &ThreadRepository{db: db}
}

func (r *ThreadRepository) GetThreadByID(id string) (*model.StoryThread, error) {
	var t model.StoryThread
	err := r.db.QueryRow(`
		SELECT id, title, description, region, category, start_date, last_update, article_count
		FROM story_thread
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.Description, &t.Region, &t.Category, &t.StartDate, &t.LastUpdate, &t.ArticleCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *ThreadRepository) GetThreads(limit, offset int) ([]model.StoryThread, error) {
	rows, err := r.db.Query(`
		SELECT id, title, description, region, category, start_date, last_update, article_count
		FROM story_thread
		ORDER BY last_update DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var threads []model.StoryThread
	for rows.Next() {
		var t model.StoryThread
		err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Region, &t.Category, &t.StartDate, &t.LastUpdate, &t.ArticleCount)
		if err != nil {
			return nil, err
		}
		threads = append(threads, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return threads, nil
}

func (r *ThreadRepository) GetThreadTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM story_thread`).Scan(&total)
	return total, err
}

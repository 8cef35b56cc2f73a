package store_db

import (
	"context"
	"errors"
	"time"

	"newsreader/domain"
	"newsreader/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetSavedArticleRefs returns the bookmark references saved by one user,
// newest first.
func (r *StoreDBRepository) GetSavedArticleRefs(ctx context.Context, userID string) ([]*domain.SavedArticleRecord, error) {
	query := `
		SELECT id, article_id, user_id, saved_at
		FROM saved_articles
		WHERE user_id = $1
		ORDER BY saved_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		logger.SafeError("error fetching saved article refs", "error", err, "user_id", userID)
		return nil, errors.New("error fetching saved article refs")
	}
	defer rows.Close()

	var records []*domain.SavedArticleRecord
	for rows.Next() {
		var record domain.SavedArticleRecord
		if err := rows.Scan(&record.ID, &record.ArticleID, &record.UserID, &record.SavedAt); err != nil {
			logger.SafeError("error scanning saved article ref", "error", err)
			return nil, errors.New("error scanning saved article refs")
		}
		records = append(records, &record)
	}

	return records, nil
}

// GetArticleByID looks up a stored article document. A missing document is
// reported as domain.ErrSavedArticleMissing so the caller can synthesize a
// placeholder instead of failing the load.
func (r *StoreDBRepository) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `
		SELECT id, title, content, url, image_url, author, published_at
		FROM articles
		WHERE id = $1
	`

	var article domain.Article
	err := r.pool.QueryRow(ctx, query, articleID).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.URL,
		&article.ImageURL,
		&article.Author,
		&article.PublishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSavedArticleMissing
		}
		logger.SafeError("error fetching article by id", "error", err, "article_id", articleID)
		return nil, errors.New("error fetching article by id")
	}

	return &article, nil
}

// SaveArticleRef creates a bookmark reference and returns its id.
func (r *StoreDBRepository) SaveArticleRef(ctx context.Context, userID, articleID string) (string, error) {
	query := `
		INSERT INTO saved_articles (id, article_id, user_id, saved_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	id := uuid.New().String()
	var returned string
	err := r.pool.QueryRow(ctx, query, id, articleID, userID, time.Now().UTC()).Scan(&returned)
	if err != nil {
		logger.SafeError("error saving article ref", "error", err, "user_id", userID, "article_id", articleID)
		return "", errors.New("error saving article ref")
	}

	return returned, nil
}

// DeleteArticleRef removes a bookmark reference.
func (r *StoreDBRepository) DeleteArticleRef(ctx context.Context, userID, articleID string) error {
	query := `
		DELETE FROM saved_articles
		WHERE user_id = $1 AND article_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, userID, articleID)
	if err != nil {
		logger.SafeError("error deleting article ref", "error", err, "user_id", userID, "article_id", articleID)
		return errors.New("error deleting article ref")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSavedArticleMissing
	}

	return nil
}

package saved_articles_port

import (
	"context"

	"newsreader/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=saved_articles_port.go -destination=../../mocks/mock_saved_articles_port.go -package=mocks

// SavedArticlesPort is the remote bookmark store as seen by the orchestrator.
type SavedArticlesPort interface {
	// GetSavedArticles resolves a user's bookmark references into feed items,
	// synthesizing placeholders for references that no longer resolve.
	GetSavedArticles(ctx context.Context, userID string) ([]*domain.FeedItem, error)
	SaveArticleRef(ctx context.Context, userID, articleID string) (string, error)
	DeleteArticleRef(ctx context.Context, userID, articleID string) error
}

// SavedArticlesCachePort is the local time-boxed envelope cache.
type SavedArticlesCachePort interface {
	GetEnvelope(ctx context.Context, userID string) (*domain.CacheEnvelope, error)
	PutEnvelope(ctx context.Context, userID string, envelope *domain.CacheEnvelope) error
}

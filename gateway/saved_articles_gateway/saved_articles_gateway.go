package saved_articles_gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsreader/domain"
	apperrors "newsreader/utils/errors"
	"newsreader/utils/logger"
)

// SavedArticlesStore is the subset of the store driver this gateway needs.
type SavedArticlesStore interface {
	GetSavedArticleRefs(ctx context.Context, userID string) ([]*domain.SavedArticleRecord, error)
	GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
	SaveArticleRef(ctx context.Context, userID, articleID string) (string, error)
	DeleteArticleRef(ctx context.Context, userID, articleID string) error
}

// SavedArticlesGateway resolves bookmark references into displayable feed
// items backed by the remote store.
type SavedArticlesGateway struct {
	store SavedArticlesStore
}

func NewSavedArticlesGateway(store SavedArticlesStore) *SavedArticlesGateway {
	return &SavedArticlesGateway{store: store}
}

// GetSavedArticles loads a user's bookmarks, newest first. References whose
// stored article has disappeared get a synthesized placeholder rather than
// dropping the entry or failing the whole load.
func (g *SavedArticlesGateway) GetSavedArticles(ctx context.Context, userID string) ([]*domain.FeedItem, error) {
	records, err := g.store.GetSavedArticleRefs(ctx, userID)
	if err != nil {
		return nil, storeError(ctx, err)
	}

	items := make([]*domain.FeedItem, 0, len(records))
	for _, record := range records {
		article, err := g.store.GetArticleByID(ctx, record.ArticleID)
		if err != nil {
			if errors.Is(err, domain.ErrSavedArticleMissing) {
				items = append(items, BuildPlaceholderItem(record.ArticleID, record.SavedAt))
				continue
			}
			logger.SafeWarn("error resolving saved article, synthesizing placeholder",
				"article_id", record.ArticleID, "error", err)
			items = append(items, BuildPlaceholderItem(record.ArticleID, record.SavedAt))
			continue
		}
		items = append(items, articleToFeedItem(article))
	}

	return items, nil
}

func (g *SavedArticlesGateway) SaveArticleRef(ctx context.Context, userID, articleID string) (string, error) {
	id, err := g.store.SaveArticleRef(ctx, userID, articleID)
	if err != nil {
		return "", storeError(ctx, err)
	}
	return id, nil
}

func (g *SavedArticlesGateway) DeleteArticleRef(ctx context.Context, userID, articleID string) error {
	err := g.store.DeleteArticleRef(ctx, userID, articleID)
	if err != nil {
		if errors.Is(err, domain.ErrSavedArticleMissing) {
			return err
		}
		return storeError(ctx, err)
	}
	return nil
}

// storeError classifies a store failure: a deadline hit on the request
// context is a timeout, everything else a generic remote-store failure. The
// sentinel is chained ahead of the driver error so errors.Is finds both.
func storeError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError("remote store timed out",
			fmt.Errorf("%w: %w", domain.ErrRemoteStoreTimeout, err), nil)
	}
	return apperrors.RemoteStoreError("remote store request failed",
		fmt.Errorf("%w: %w", domain.ErrRemoteStore, err), nil)
}

func articleToFeedItem(article *domain.Article) *domain.FeedItem {
	published := ""
	if !article.PublishedAt.IsZero() {
		published = article.PublishedAt.Format(time.RFC1123)
	}

	return &domain.FeedItem{
		Title:          article.Title,
		DescriptionRaw: article.Content,
		Published:      published,
		Link:           article.URL,
		GUID:           domain.ResolveGUID(article.ID, article.URL),
		ImageURL:       article.ImageURL,
		Origin:         domain.OriginStore,
	}
}

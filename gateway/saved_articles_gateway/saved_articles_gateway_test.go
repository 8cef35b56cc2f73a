package saved_articles_gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsreader/domain"
	apperrors "newsreader/utils/errors"

	"github.com/stretchr/testify/require"
)

type stubStore struct {
	refs       []*domain.SavedArticleRecord
	refsErr    error
	articles   map[string]*domain.Article
	saveErr    error
	deleteErr  error
	deletedIDs []string
}

func (s *stubStore) GetSavedArticleRefs(ctx context.Context, userID string) ([]*domain.SavedArticleRecord, error) {
	return s.refs, s.refsErr
}

func (s *stubStore) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	article, ok := s.articles[articleID]
	if !ok {
		return nil, domain.ErrSavedArticleMissing
	}
	return article, nil
}

func (s *stubStore) SaveArticleRef(ctx context.Context, userID, articleID string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	return "ref-1", nil
}

func (s *stubStore) DeleteArticleRef(ctx context.Context, userID, articleID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, articleID)
	return nil
}

func TestGetSavedArticlesResolvesAndSynthesizes(t *testing.T) {
	savedAt := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStore{
		refs: []*domain.SavedArticleRecord{
			{ID: "r1", ArticleID: "a1", UserID: "u1", SavedAt: savedAt},
			{ID: "r2", ArticleID: "https://vnexpress.net/thoi-su/bai-da-xoa.html", UserID: "u1", SavedAt: savedAt},
		},
		articles: map[string]*domain.Article{
			"a1": {
				ID:          "a1",
				Title:       "Stored title",
				Content:     "<p>body</p>",
				URL:         "https://example.com/a1",
				ImageURL:    "https://example.com/a1.jpg",
				PublishedAt: savedAt,
			},
		},
	}

	gateway := NewSavedArticlesGateway(store)
	items, err := gateway.GetSavedArticles(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, "Stored title", items[0].Title)
	require.Equal(t, domain.OriginStore, items[0].Origin)
	require.Equal(t, "a1", items[0].GUID)

	require.Equal(t, "Bai Da Xoa", items[1].Title)
	require.Equal(t, domain.OriginStore, items[1].Origin)
	require.Equal(t, "https://vnexpress.net/thoi-su/bai-da-xoa.html", items[1].Link)
}

func TestGetSavedArticlesStoreFailure(t *testing.T) {
	cause := errors.New("connection refused")
	store := &stubStore{refsErr: cause}
	gateway := NewSavedArticlesGateway(store)

	_, err := gateway.GetSavedArticles(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrRemoteStore)
	require.ErrorIs(t, err, cause, "driver error must stay reachable through the wrap")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.ErrCodeRemoteStore, appErr.Code)
}

func TestGetSavedArticlesTimeoutClassified(t *testing.T) {
	store := &stubStore{refsErr: context.DeadlineExceeded}
	gateway := NewSavedArticlesGateway(store)

	_, err := gateway.GetSavedArticles(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrRemoteStoreTimeout)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.ErrCodeTimeout, appErr.Code)
}

func TestSaveArticleRefMapsErrors(t *testing.T) {
	gateway := NewSavedArticlesGateway(&stubStore{})
	id, err := gateway.SaveArticleRef(context.Background(), "u1", "a1")
	require.NoError(t, err)
	require.Equal(t, "ref-1", id)

	gateway = NewSavedArticlesGateway(&stubStore{saveErr: errors.New("boom")})
	_, err = gateway.SaveArticleRef(context.Background(), "u1", "a1")
	require.ErrorIs(t, err, domain.ErrRemoteStore)
}

func TestDeleteArticleRefKeepsMissingSentinel(t *testing.T) {
	store := &stubStore{}
	gateway := NewSavedArticlesGateway(store)
	require.NoError(t, gateway.DeleteArticleRef(context.Background(), "u1", "a1"))
	require.Equal(t, []string{"a1"}, store.deletedIDs)

	gateway = NewSavedArticlesGateway(&stubStore{deleteErr: domain.ErrSavedArticleMissing})
	err := gateway.DeleteArticleRef(context.Background(), "u1", "missing")
	require.ErrorIs(t, err, domain.ErrSavedArticleMissing)

	gateway = NewSavedArticlesGateway(&stubStore{deleteErr: errors.New("boom")})
	err = gateway.DeleteArticleRef(context.Background(), "u1", "a1")
	require.ErrorIs(t, err, domain.ErrRemoteStore)
}

package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsreader/config"
	"newsreader/di"
	"newsreader/domain"
	"newsreader/mocks"
	"newsreader/usecase/fetch_feed_usecase"
	"newsreader/usecase/saved_articles_usecase"
	"newsreader/usecase/scrape_article_usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	echo    *echo.Echo
	feed    *mocks.MockFetchFeedPort
	scrape  *mocks.MockScrapeArticlePort
	saved   *mocks.MockSavedArticlesPort
	cache   *mocks.MockSavedArticlesCachePort
	usecase *saved_articles_usecase.SavedArticlesUsecase
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	feedPort := mocks.NewMockFetchFeedPort(ctrl)
	scrapePort := mocks.NewMockScrapeArticlePort(ctrl)
	savedPort := mocks.NewMockSavedArticlesPort(ctrl)
	cachePort := mocks.NewMockSavedArticlesCachePort(ctrl)

	savedUsecase := saved_articles_usecase.NewSavedArticlesUsecase(
		savedPort, cachePort, feedPort,
		"https://fallback.example/rss", 30*time.Minute, time.Second)

	container := &di.ApplicationComponents{
		FetchFeedUsecase:     fetch_feed_usecase.NewFetchFeedUsecase(feedPort, 30*time.Second),
		ScrapeArticleUsecase: scrape_article_usecase.NewScrapeArticleUsecase(scrapePort),
		SavedArticlesUsecase: savedUsecase,
	}

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	e := echo.New()
	RegisterRoutes(e, container, cfg)

	return &testServer{
		echo:    e,
		feed:    feedPort,
		scrape:  scrapePort,
		saved:   savedPort,
		cache:   cachePort,
		usecase: savedUsecase,
	}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFetchFeedEndpoint(t *testing.T) {
	s := newTestServer(t)

	items := []*domain.FeedItem{
		{Title: "Headline", Link: "https://example.com/1", GUID: "g1", Origin: domain.OriginFeed},
	}
	s.feed.EXPECT().FetchFeed(gomock.Any(), "https://example.com/rss").Return(items, nil)

	rec := s.do(http.MethodGet, "/v1/feeds/fetch?url=https%3A%2F%2Fexample.com%2Frss", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*domain.FeedItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Headline", got[0].Title)
}

func TestFetchFeedEndpointRejectsBadURL(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/v1/feeds/fetch?url=not-a-url", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchFeedEndpointUpstreamFailure(t *testing.T) {
	s := newTestServer(t)

	s.feed.EXPECT().FetchFeed(gomock.Any(), "https://example.com/rss").Return(nil, domain.ErrFeedFetch)

	rec := s.do(http.MethodGet, "/v1/feeds/fetch?url=https%3A%2F%2Fexample.com%2Frss", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestArticleContentEndpointNeverFails(t *testing.T) {
	s := newTestServer(t)

	s.scrape.EXPECT().ScrapeArticleContent(gomock.Any(), "https://example.com/article.html").
		Return("", domain.ErrScrapeFetch)

	rec := s.do(http.MethodGet, "/v1/articles/content?url=https%3A%2F%2Fexample.com%2Farticle.html", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got articleContentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.Content)
}

func TestLoadSavedArticlesEndpoint(t *testing.T) {
	s := newTestServer(t)

	items := []*domain.FeedItem{
		{Title: "Saved", Link: "https://example.com/a1", GUID: "a1", Origin: domain.OriginStore},
	}
	s.cache.EXPECT().GetEnvelope(gomock.Any(), "u1").Return(nil, nil)
	s.saved.EXPECT().GetSavedArticles(gomock.Any(), "u1").Return(items, nil)
	s.cache.EXPECT().PutEnvelope(gomock.Any(), "u1", gomock.Any()).Return(nil)

	rec := s.do(http.MethodGet, "/v1/saved/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got saved_articles_usecase.LoadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, saved_articles_usecase.SourceRemote, got.Source)
	require.Len(t, got.Items, 1)
}

func TestUnsaveGuardMapsToConflict(t *testing.T) {
	s := newTestServer(t)

	items := []*domain.FeedItem{
		{Title: "Fallback", Link: "https://example.com/f1", GUID: "f1", Origin: domain.OriginFeed},
	}
	s.cache.EXPECT().GetEnvelope(gomock.Any(), "u1").Return(nil, nil)
	s.saved.EXPECT().GetSavedArticles(gomock.Any(), "u1").Return(items, nil)
	s.cache.EXPECT().PutEnvelope(gomock.Any(), "u1", gomock.Any()).Return(nil)

	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/v1/saved/u1", "").Code)

	rec := s.do(http.MethodDelete, "/v1/saved/u1/f1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUndoWithoutUnsaveMapsToConflict(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/v1/saved/u1/undo", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSaveArticleEndpoint(t *testing.T) {
	s := newTestServer(t)

	s.saved.EXPECT().SaveArticleRef(gomock.Any(), "u1", "a1").Return("ref-1", nil)
	s.saved.EXPECT().GetSavedArticles(gomock.Any(), "u1").
		Return([]*domain.FeedItem{{Title: "Saved", GUID: "a1", Origin: domain.OriginStore}}, nil)
	s.cache.EXPECT().PutEnvelope(gomock.Any(), "u1", gomock.Any()).Return(nil)

	rec := s.do(http.MethodPost, "/v1/saved/u1", `{"articleId":"a1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got saveArticleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ref-1", got.ID)
}

func TestSaveArticleEndpointRequiresBody(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/v1/saved/u1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

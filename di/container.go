package di

import (
	"newsreader/config"
	"newsreader/driver/cache_driver"
	"newsreader/driver/store_db"
	"newsreader/gateway/fetch_feed_gateway"
	"newsreader/gateway/saved_articles_gateway"
	"newsreader/gateway/scrape_article_gateway"
	"newsreader/usecase/fetch_feed_usecase"
	"newsreader/usecase/saved_articles_usecase"
	"newsreader/usecase/scrape_article_usecase"
	"newsreader/utils"
	"newsreader/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ApplicationComponents struct {
	FetchFeedUsecase     *fetch_feed_usecase.FetchFeedUsecase
	ScrapeArticleUsecase *scrape_article_usecase.ScrapeArticleUsecase
	SavedArticlesUsecase *saved_articles_usecase.SavedArticlesUsecase
	StoreDBRepository    *store_db.StoreDBRepository
}

func NewApplicationComponents(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) *ApplicationComponents {
	httpClient := utils.NewHTTPClient(cfg.HTTP)
	rateLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.ExternalAPIInterval)

	storeRepository := store_db.NewStoreDBRepository(pool)
	cacheDriver := cache_driver.NewCacheDriver(redisClient)

	fetchFeedGateway := fetch_feed_gateway.NewFetchFeedGateway(rateLimiter, httpClient)
	scrapeGateway := scrape_article_gateway.NewScrapeArticleGateway(
		rateLimiter, httpClient, cfg.Scraper.UserAgent, cfg.Scraper.Timeout)
	savedGateway := saved_articles_gateway.NewSavedArticlesGateway(storeRepository)

	fetchFeedUsecase := fetch_feed_usecase.NewFetchFeedUsecase(fetchFeedGateway, cfg.Feed.FetchTimeout)
	scrapeUsecase := scrape_article_usecase.NewScrapeArticleUsecase(scrapeGateway)
	savedUsecase := saved_articles_usecase.NewSavedArticlesUsecase(
		savedGateway,
		cacheDriver,
		fetchFeedGateway,
		cfg.Feed.FallbackURL,
		cfg.Cache.SavedArticlesValidity,
		cfg.Feed.RemoteTimeout,
	)

	return &ApplicationComponents{
		FetchFeedUsecase:     fetchFeedUsecase,
		ScrapeArticleUsecase: scrapeUsecase,
		SavedArticlesUsecase: savedUsecase,
		StoreDBRepository:    storeRepository,
	}
}

package fetch_feed_usecase

import (
	"context"
	"net/url"
	"sync"
	"time"

	"newsreader/domain"
	"newsreader/port/fetch_feed_port"
	"newsreader/utils/errors"
	"newsreader/utils/logger"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFeedFetches bounds the batch fan-out so a large request does
// not open one connection per feed at once.
const maxConcurrentFeedFetches = 4

type FetchFeedUsecase struct {
	fetchFeedPort fetch_feed_port.FetchFeedPort
	fetchTimeout  time.Duration
}

func NewFetchFeedUsecase(fetchFeedPort fetch_feed_port.FetchFeedPort, fetchTimeout time.Duration) *FetchFeedUsecase {
	return &FetchFeedUsecase{
		fetchFeedPort: fetchFeedPort,
		fetchTimeout:  fetchTimeout,
	}
}

// Execute fetches and normalizes a single feed.
func (u *FetchFeedUsecase) Execute(ctx context.Context, feedURL string) ([]*domain.FeedItem, error) {
	if err := validateFeedURL(feedURL); err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout)
	defer cancel()

	return u.fetchFeedPort.FetchFeed(fetchCtx, feedURL)
}

// ExecuteBatch fetches several feeds concurrently and merges their items in
// input order. Individual feed failures are skipped; the call fails only when
// every feed fails.
func (u *FetchFeedUsecase) ExecuteBatch(ctx context.Context, feedURLs []string) ([]*domain.FeedItem, error) {
	if len(feedURLs) == 0 {
		return nil, errors.ValidationError("no feed URLs given", map[string]interface{}{})
	}
	for _, feedURL := range feedURLs {
		if err := validateFeedURL(feedURL); err != nil {
			return nil, err
		}
	}

	perFeed := make([][]*domain.FeedItem, len(feedURLs))
	var mu sync.Mutex
	var failed int

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFeedFetches)

	for i, feedURL := range feedURLs {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(groupCtx, u.fetchTimeout)
			defer cancel()

			items, err := u.fetchFeedPort.FetchFeed(fetchCtx, feedURL)
			if err != nil {
				logger.SafeWarn("skipping failed feed in batch", "url", feedURL, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			perFeed[i] = items
			return nil
		})
	}

	// Workers never return errors; Wait only surfaces context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if failed == len(feedURLs) {
		return nil, domain.ErrFeedFetch
	}

	var merged []*domain.FeedItem
	for _, items := range perFeed {
		merged = append(merged, items...)
	}
	return merged, nil
}

func validateFeedURL(feedURL string) error {
	parsed, err := url.Parse(feedURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return errors.ValidationError("feed URL must be absolute", map[string]interface{}{
			"url": feedURL,
		})
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.ValidationError("feed URL scheme must be http or https", map[string]interface{}{
			"url": feedURL,
		})
	}
	return nil
}

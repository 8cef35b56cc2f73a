package fetch_feed_gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"newsreader/domain"
	apperrors "newsreader/utils/errors"
	"newsreader/utils/html_parser"
	"newsreader/utils/logger"
	"newsreader/utils/rate_limiter"

	"github.com/mmcdole/gofeed"
)

// FetchFeedGateway pulls a remote feed and maps each entry into a normalized
// domain.FeedItem.
type FetchFeedGateway struct {
	rateLimiter *rate_limiter.HostRateLimiter
	httpClient  *http.Client
}

func NewFetchFeedGateway(rateLimiter *rate_limiter.HostRateLimiter, httpClient *http.Client) *FetchFeedGateway {
	return &FetchFeedGateway{
		rateLimiter: rateLimiter,
		httpClient:  httpClient,
	}
}

// FetchFeed retrieves and normalizes one feed. Failure outcomes are kept
// distinct: domain.ErrFeedFetch for transport problems, domain.ErrFeedParse
// for malformed XML, domain.ErrEmptyFeed for a well-formed feed with no
// usable entries. A single malformed entry is skipped, not fatal.
func (g *FetchFeedGateway) FetchFeed(ctx context.Context, link string) ([]*domain.FeedItem, error) {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, link); err != nil {
			return nil, domain.ErrFeedFetch
		}
	}

	fp := gofeed.NewParser()
	fp.Client = g.httpClient
	fp.UserAgent = "newsreader-feed-fetcher/1.0"

	feed, err := fp.ParseURLWithContext(link, ctx)
	if err != nil {
		logger.SafeError("error fetching feed", "url", link, "error", err)
		feedCtx := map[string]interface{}{"feed_url": link}
		// Chaining the sentinel ahead of the parser error keeps both
		// reachable through errors.Is.
		if isTransportError(err) {
			return nil, apperrors.FetchError("feed could not be fetched",
				fmt.Errorf("%w: %w", domain.ErrFeedFetch, err), feedCtx)
		}
		return nil, apperrors.ParseError("feed could not be parsed",
			fmt.Errorf("%w: %w", domain.ErrFeedParse, err), feedCtx)
	}

	items := make([]*domain.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		feedItem, ok := mapItem(item)
		if !ok {
			// Entry too broken to identify; skip it and keep the rest.
			logger.SafeWarn("skipping malformed feed entry", "feed", link)
			continue
		}
		items = append(items, feedItem)
	}

	if len(items) == 0 {
		return nil, apperrors.EmptyResultError("feed has no usable entries",
			domain.ErrEmptyFeed, map[string]interface{}{"feed_url": link})
	}

	return items, nil
}

// mapItem normalizes one feed entry. An entry without both guid and link has
// no stable identity and is rejected.
func mapItem(item *gofeed.Item) (*domain.FeedItem, bool) {
	if item == nil {
		return nil, false
	}

	guid := domain.ResolveGUID(item.GUID, item.Link)
	if guid == "" {
		return nil, false
	}

	description := item.Description

	return &domain.FeedItem{
		Title:          html_parser.RepairEncoding(html_parser.CleanText(item.Title)),
		DescriptionRaw: description,
		Published:      item.Published,
		Link:           item.Link,
		GUID:           guid,
		ImageURL:       html_parser.ResolveImageURL(enclosureURL(item), description),
		Origin:         domain.OriginFeed,
	}, true
}

// enclosureURL picks the entry's attachment image URL. Enclosures declared
// as image/* win, then media:thumbnail and media:content extensions, then
// the item-level image. Only http/https URLs are accepted.
func enclosureURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc == nil {
			continue
		}
		if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" && isValidImageScheme(enc.URL) {
			return enc.URL
		}
	}

	if mediaExt, ok := item.Extensions["media"]; ok {
		if thumbnails, ok := mediaExt["thumbnail"]; ok {
			for _, thumb := range thumbnails {
				if u := thumb.Attrs["url"]; u != "" && isValidImageScheme(u) {
					return u
				}
			}
		}

		if contents, ok := mediaExt["content"]; ok {
			for _, content := range contents {
				if content.Attrs["medium"] == "image" {
					if u := content.Attrs["url"]; u != "" && isValidImageScheme(u) {
						return u
					}
				}
			}
		}
	}

	if item.Image != nil && item.Image.URL != "" && isValidImageScheme(item.Image.URL) {
		return item.Image.URL
	}

	return ""
}

func isValidImageScheme(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// isTransportError distinguishes network-level failures from parse failures.
// gofeed surfaces HTTP status and transport problems as HTTPError/url.Error;
// anything else means the response body reached the XML decoder and broke.
func isTransportError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var httpErr gofeed.HTTPError
	return errors.As(err, &httpErr)
}

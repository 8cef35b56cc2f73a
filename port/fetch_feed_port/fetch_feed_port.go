package fetch_feed_port

import (
	"context"

	"newsreader/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_feed_port.go -destination=../../mocks/mock_fetch_feed_port.go -package=mocks

// FetchFeedPort retrieves a remote RSS/Atom document and normalizes its
// entries. An empty-but-valid feed yields domain.ErrEmptyFeed, distinct from
// fetch and parse failures.
type FetchFeedPort interface {
	FetchFeed(ctx context.Context, link string) ([]*domain.FeedItem, error)
}

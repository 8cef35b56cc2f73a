package domain

import (
	"errors"
	"fmt"
)

var (
	// Feed pipeline errors. ErrEmptyFeed is deliberately distinct from fetch
	// and parse failures so callers can tell "nothing published" apart from
	// "could not read the feed".
	ErrFeedFetch = errors.New("feed fetch failed")
	ErrFeedParse = errors.New("feed parse failed")
	ErrEmptyFeed = errors.New("feed contains no usable entries")

	// Article scraping errors, one per failure stage so the user-facing
	// fallback message can say what actually went wrong.
	ErrScrapeFetch = errors.New("article page fetch failed")
	ErrScrapeParse = errors.New("article page parse failed")
	ErrScrapeEmpty = errors.New("article body produced no content")

	// Saved-articles errors.
	ErrRemoteStore         = errors.New("remote store operation failed")
	ErrRemoteStoreTimeout  = errors.New("remote store operation timed out")
	ErrSavedArticleMissing = errors.New("saved article not found")

	// ErrFeedItemNotDeletable signals an attempt to delete a feed-origin item
	// from the saved list.
	ErrFeedItemNotDeletable = errors.New("feed-origin items cannot be deleted")

	ErrNothingToUndo = errors.New("no removal to undo")
)

// ExternalHTTPError represents an unexpected HTTP status from an external site.
type ExternalHTTPError struct {
	StatusCode int
	URL        string
}

func (e *ExternalHTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %q", e.StatusCode, e.URL)
}

package domain

import (
	"time"

	"newsreader/utils/html_parser"
)

// Origin records where a feed item was sourced from. Items that came straight
// from a live RSS feed are display-only in the saved-articles view; only items
// recovered from the remote store may be deleted by the user.
type Origin string

const (
	OriginFeed  Origin = "feed"
	OriginStore Origin = "store"
)

type FeedItem struct {
	Title          string `json:"title"`
	DescriptionRaw string `json:"description"`
	// Published keeps the feed-native date text verbatim. Upstream feeds mix
	// RFC1123, RFC3339 and free-form strings, so no parsing happens here.
	Published string `json:"published"`
	Link      string `json:"link"`
	GUID      string `json:"guid"`
	// ImageURL is always set after pipeline processing. Empty string means
	// "no image", never absence.
	ImageURL string `json:"imageUrl"`
	Origin   Origin `json:"origin"`
}

// CleanDescription returns the description with CDATA markers and markup
// stripped, suitable for list display. DescriptionRaw keeps the original
// feed text.
func (f *FeedItem) CleanDescription() string {
	return html_parser.CleanText(f.DescriptionRaw)
}

// ResolveGUID applies the guid-or-link fallback: a feed item without a guid
// is identified by its link instead.
func ResolveGUID(guid, link string) string {
	if guid != "" {
		return guid
	}
	return link
}

// Deletable reports whether the user may remove this item from the saved
// list. Feed-origin items are a read-only fallback display.
func (f *FeedItem) Deletable() bool {
	return f.Origin == OriginStore
}

// SavedArticleRecord is a bookmark reference in the remote store. The article
// content itself is not duplicated here; ArticleID may be a store document id
// or, degenerately, a raw URL used as a synthetic id.
type SavedArticleRecord struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	UserID    string    `json:"userId"`
	SavedAt   time.Time `json:"savedAt"`
}

// Article is the full stored document a saved record points at.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

// CacheEnvelope bundles the cached saved-articles list with the time it was
// written. The envelope expires as a unit; individual items are never aged
// out separately.
type CacheEnvelope struct {
	Items    []*FeedItem `json:"items"`
	CachedAt time.Time   `json:"cachedAt"`
}

// Fresh reports whether the envelope is still inside the validity window.
func (e *CacheEnvelope) Fresh(now time.Time, validity time.Duration) bool {
	if e == nil || len(e.Items) == 0 {
		return false
	}
	return now.Sub(e.CachedAt) < validity
}

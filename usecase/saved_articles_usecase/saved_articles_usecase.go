package saved_articles_usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"newsreader/domain"
	"newsreader/port/fetch_feed_port"
	"newsreader/port/saved_articles_port"
	"newsreader/utils/logger"
)

// LoadSource labels where the items in a LoadResult came from.
type LoadSource string

const (
	SourceCache    LoadSource = "cache"
	SourceRemote   LoadSource = "remote"
	SourceFallback LoadSource = "fallback"
	// SourceEmpty means every source answered and none had content.
	SourceEmpty LoadSource = "empty"
	// SourceError means the view is empty because the last resort failed,
	// not because nothing exists; a retry may succeed.
	SourceError LoadSource = "error"
)

// LoadResult is a saved-articles view: the items, where they came from, and
// any warning left over from a background operation.
type LoadResult struct {
	Items   []*domain.FeedItem `json:"items"`
	Source  LoadSource         `json:"source"`
	Warning string             `json:"warning,omitempty"`
}

const (
	unsaveWarning      = "could not remove the article from the remote store; it may reappear"
	unavailableWarning = "saved articles are temporarily unavailable; try again shortly"
)

type unsaveRecord struct {
	item  *domain.FeedItem
	index int
}

// userState is the in-memory view of one user's saved list. The generation
// counter orders overlapping loads: a load commits its result only while its
// generation is still the newest.
type userState struct {
	mu         sync.Mutex
	generation atomic.Uint64
	items      []*domain.FeedItem
	lastUnsave *unsaveRecord
	warning    string
}

// SavedArticlesUsecase orchestrates the saved-articles view: optimistic
// cache display, a timer-bounded remote refresh, fallback to a live feed,
// and optimistic unsave with undo.
type SavedArticlesUsecase struct {
	savedArticlesPort saved_articles_port.SavedArticlesPort
	cachePort         saved_articles_port.SavedArticlesCachePort
	fetchFeedPort     fetch_feed_port.FetchFeedPort

	fallbackFeedURL string
	cacheValidity   time.Duration
	remoteTimeout   time.Duration

	statesMu sync.Mutex
	states   map[string]*userState

	// background tracks remote deletes and refreshes so shutdown and tests
	// can wait for them.
	background sync.WaitGroup

	now func() time.Time
}

func NewSavedArticlesUsecase(
	savedArticlesPort saved_articles_port.SavedArticlesPort,
	cachePort saved_articles_port.SavedArticlesCachePort,
	fetchFeedPort fetch_feed_port.FetchFeedPort,
	fallbackFeedURL string,
	cacheValidity time.Duration,
	remoteTimeout time.Duration,
) *SavedArticlesUsecase {
	return &SavedArticlesUsecase{
		savedArticlesPort: savedArticlesPort,
		cachePort:         cachePort,
		fetchFeedPort:     fetchFeedPort,
		fallbackFeedURL:   fallbackFeedURL,
		cacheValidity:     cacheValidity,
		remoteTimeout:     remoteTimeout,
		states:            make(map[string]*userState),
		now:               time.Now,
	}
}

// Wait blocks until all background remote deletes and refreshes finish.
func (u *SavedArticlesUsecase) Wait() {
	u.background.Wait()
}

func (u *SavedArticlesUsecase) state(userID string) *userState {
	u.statesMu.Lock()
	defer u.statesMu.Unlock()

	state, ok := u.states[userID]
	if !ok {
		state = &userState{}
		u.states[userID] = state
	}
	return state
}

// Load produces the saved-articles view for one user.
//
// A cache envelope inside its validity window is returned immediately and a
// remote refresh continues in the background. Without a usable envelope the
// remote store is queried, racing a timer of remoteTimeout; if the timer
// wins, or the store comes back empty or failing, the fallback feed is
// fetched instead. An empty result is never an error, but it stays
// classified: SourceEmpty when every source answered with nothing,
// SourceError when the fallback itself failed and a retry could still
// succeed.
func (u *SavedArticlesUsecase) Load(ctx context.Context, userID string) (*LoadResult, error) {
	state := u.state(userID)
	generation := state.generation.Add(1)

	envelope, err := u.cachePort.GetEnvelope(ctx, userID)
	if err != nil {
		logger.SafeWarn("cache read failed, treating as miss", "user_id", userID, "error", err)
	}

	if envelope.Fresh(u.now(), u.cacheValidity) {
		u.commitItems(state, generation, envelope.Items)
		u.background.Add(1)
		go u.refreshInBackground(userID, state, generation)
		return u.result(state, envelope.Items, SourceCache), nil
	}

	items, source := u.loadRemoteOrFallback(ctx, userID, state, generation)
	u.commitItems(state, generation, items)
	if len(items) > 0 {
		u.persistEnvelope(ctx, userID, items)
	}

	res := u.result(state, items, source)
	if source == SourceError && res.Warning == "" {
		res.Warning = unavailableWarning
	}
	return res, nil
}

// loadRemoteOrFallback races the remote store against the timer. Exactly one
// side wins via compare-and-swap; a remote completion that loses the race is
// discarded.
func (u *SavedArticlesUsecase) loadRemoteOrFallback(ctx context.Context, userID string, state *userState, generation uint64) ([]*domain.FeedItem, LoadSource) {
	type remoteOutcome struct {
		items []*domain.FeedItem
		err   error
	}

	var won atomic.Bool
	outcomeCh := make(chan remoteOutcome, 1)

	remoteCtx, cancel := context.WithTimeout(ctx, u.remoteTimeout)
	defer cancel()

	go func() {
		items, err := u.savedArticlesPort.GetSavedArticles(remoteCtx, userID)
		if !won.CompareAndSwap(false, true) {
			logger.SafeInfo("discarding late remote result", "user_id", userID)
			return
		}
		outcomeCh <- remoteOutcome{items: items, err: err}
	}()

	timer := time.NewTimer(u.remoteTimeout)
	defer timer.Stop()

	select {
	case outcome := <-outcomeCh:
		if outcome.err == nil && len(outcome.items) > 0 {
			return outcome.items, SourceRemote
		}
		if outcome.err != nil {
			logger.SafeWarn("remote saved-articles load failed", "user_id", userID, "error", outcome.err)
		}
	case <-timer.C:
		if !won.CompareAndSwap(false, true) {
			// The remote result landed between the timer firing and the swap.
			outcome := <-outcomeCh
			if outcome.err == nil && len(outcome.items) > 0 {
				return outcome.items, SourceRemote
			}
		} else {
			logger.SafeWarn("remote saved-articles load timed out", "user_id", userID)
		}
	}

	return u.loadFallbackFeed(ctx, userID)
}

func (u *SavedArticlesUsecase) loadFallbackFeed(ctx context.Context, userID string) ([]*domain.FeedItem, LoadSource) {
	items, err := u.fetchFeedPort.FetchFeed(ctx, u.fallbackFeedURL)
	switch {
	case err == nil && len(items) > 0:
		return items, SourceFallback
	case err == nil || errors.Is(err, domain.ErrEmptyFeed):
		// The feed answered and legitimately has nothing.
		return nil, SourceEmpty
	default:
		logger.SafeWarn("fallback feed load failed", "user_id", userID, "error", err)
		return nil, SourceError
	}
}

// refreshInBackground re-queries the remote store after a cache hit so the
// next load sees current data. A result arriving after a newer load has
// started is discarded.
func (u *SavedArticlesUsecase) refreshInBackground(userID string, state *userState, generation uint64) {
	defer u.background.Done()

	refreshCtx, cancel := context.WithTimeout(context.Background(), u.remoteTimeout)
	defer cancel()

	items, err := u.savedArticlesPort.GetSavedArticles(refreshCtx, userID)
	if err != nil || len(items) == 0 {
		if err != nil {
			logger.SafeWarn("background refresh failed", "user_id", userID, "error", err)
		}
		return
	}

	if state.generation.Load() != generation {
		logger.SafeInfo("discarding stale background refresh", "user_id", userID)
		return
	}

	u.commitItems(state, generation, items)
	u.persistEnvelope(refreshCtx, userID, items)
}

// Unsave removes an article from the saved view optimistically: memory and
// cache first, the remote delete in the background. A failed remote delete
// leaves a warning on the state for the next result; nothing is rolled back.
func (u *SavedArticlesUsecase) Unsave(ctx context.Context, userID, articleGUID string) (*LoadResult, error) {
	state := u.state(userID)

	state.mu.Lock()
	index := -1
	for i, item := range state.items {
		if item.GUID == articleGUID {
			index = i
			break
		}
	}
	if index == -1 {
		state.mu.Unlock()
		return nil, domain.ErrSavedArticleMissing
	}

	item := state.items[index]
	if !item.Deletable() {
		state.mu.Unlock()
		return nil, domain.ErrFeedItemNotDeletable
	}

	state.items = append(state.items[:index], state.items[index+1:]...)
	state.lastUnsave = &unsaveRecord{item: item, index: index}
	items := snapshot(state.items)
	state.mu.Unlock()

	u.persistEnvelope(ctx, userID, items)

	u.background.Add(1)
	go func() {
		defer u.background.Done()

		deleteCtx, cancel := context.WithTimeout(context.Background(), u.remoteTimeout)
		defer cancel()

		if err := u.savedArticlesPort.DeleteArticleRef(deleteCtx, userID, articleGUID); err != nil {
			logger.SafeWarn("remote delete failed after optimistic unsave",
				"user_id", userID, "article_guid", articleGUID, "error", err)
			state.mu.Lock()
			state.warning = unsaveWarning
			state.mu.Unlock()
		}
	}()

	return u.result(state, items, SourceRemote), nil
}

// Undo re-inserts the most recently unsaved article at its original index,
// clamped to the current list bounds, and re-issues the remote save.
func (u *SavedArticlesUsecase) Undo(ctx context.Context, userID string) (*LoadResult, error) {
	state := u.state(userID)

	state.mu.Lock()
	record := state.lastUnsave
	if record == nil {
		state.mu.Unlock()
		return nil, domain.ErrNothingToUndo
	}
	state.lastUnsave = nil

	index := record.index
	if index > len(state.items) {
		index = len(state.items)
	}
	state.items = append(state.items[:index], append([]*domain.FeedItem{record.item}, state.items[index:]...)...)
	items := snapshot(state.items)
	state.mu.Unlock()

	u.persistEnvelope(ctx, userID, items)

	if _, err := u.savedArticlesPort.SaveArticleRef(ctx, userID, record.item.GUID); err != nil {
		logger.SafeWarn("remote re-save failed after undo",
			"user_id", userID, "article_guid", record.item.GUID, "error", err)
		state.mu.Lock()
		state.warning = "could not restore the article in the remote store"
		state.mu.Unlock()
	}

	return u.result(state, items, SourceRemote), nil
}

// Save bookmarks an article for the user and refreshes the cached envelope.
func (u *SavedArticlesUsecase) Save(ctx context.Context, userID, articleID string) (string, error) {
	id, err := u.savedArticlesPort.SaveArticleRef(ctx, userID, articleID)
	if err != nil {
		return "", err
	}

	items, err := u.savedArticlesPort.GetSavedArticles(ctx, userID)
	if err == nil && len(items) > 0 {
		state := u.state(userID)
		u.commitItems(state, state.generation.Load(), items)
		u.persistEnvelope(ctx, userID, items)
	}

	return id, nil
}

func (u *SavedArticlesUsecase) commitItems(state *userState, generation uint64, items []*domain.FeedItem) {
	if state.generation.Load() != generation {
		return
	}
	state.mu.Lock()
	state.items = snapshot(items)
	state.mu.Unlock()
}

func (u *SavedArticlesUsecase) persistEnvelope(ctx context.Context, userID string, items []*domain.FeedItem) {
	envelope := &domain.CacheEnvelope{
		Items:    items,
		CachedAt: u.now(),
	}
	if err := u.cachePort.PutEnvelope(ctx, userID, envelope); err != nil {
		logger.SafeWarn("cache write failed", "user_id", userID, "error", err)
	}
}

// result bundles items with any pending warning, consuming the warning.
func (u *SavedArticlesUsecase) result(state *userState, items []*domain.FeedItem, source LoadSource) *LoadResult {
	state.mu.Lock()
	warning := state.warning
	state.warning = ""
	state.mu.Unlock()

	if items == nil {
		items = []*domain.FeedItem{}
	}
	return &LoadResult{Items: items, Source: source, Warning: warning}
}

func snapshot(items []*domain.FeedItem) []*domain.FeedItem {
	out := make([]*domain.FeedItem, len(items))
	copy(out, items)
	return out
}

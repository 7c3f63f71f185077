package feedcache

import (
	"context"
	"sync"

	"warbler/internal/model"
)

// View names the places a tweet list renders. Each view owns its own cache;
// copies of the same tweet across views are reconciled only through the Hub.
type View string

const (
	ViewHome             View = "home"
	ViewRecommended      View = "recommended"
	ViewSearch           View = "search"
	ViewProfileTweets    View = "profile_tweets"
	ViewProfileLikes     View = "profile_likes"
	ViewProfileRetweets  View = "profile_retweets"
	ViewProfileBookmarks View = "profile_bookmarks"
)

// Cache is a view-scoped tweet list with a loaded flag so a view fetches at
// most once per mount. It is transient: nothing here persists.
type Cache struct {
	mu     sync.Mutex
	view   View
	tweets []model.Tweet
	loaded bool
}

func New(view View) *Cache { return &Cache{view: view} }

func (c *Cache) View() View { return c.view }

// EnsureLoaded runs fetch once; later calls are no-ops until Invalidate. A
// failed fetch leaves the cache unloaded so a manual reload can retry.
func (c *Cache) EnsureLoaded(ctx context.Context, fetch func(ctx context.Context) ([]model.Tweet, error)) error {
	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	tweets, err := fetch(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.tweets = tweets
	c.loaded = true
	c.mu.Unlock()
	return nil
}

func (c *Cache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Invalidate drops the list so the next EnsureLoaded refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.tweets = nil
	c.loaded = false
	c.mu.Unlock()
}

// Tweets returns a copy of the cached list.
func (c *Cache) Tweets() []model.Tweet {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Tweet, len(c.tweets))
	copy(out, c.tweets)
	return out
}

func (c *Cache) Get(id string) (model.Tweet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tweets {
		if t.ID == id {
			return t, true
		}
	}
	return model.Tweet{}, false
}

// Patch replaces the copy with the same id, if this cache holds one.
func (c *Cache) Patch(t model.Tweet) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.tweets {
		if c.tweets[i].ID == t.ID {
			c.tweets[i] = t
			return true
		}
	}
	return false
}

// Prepend puts a newly composed tweet at the head of the list.
func (c *Cache) Prepend(t model.Tweet) {
	c.mu.Lock()
	c.tweets = append([]model.Tweet{t}, c.tweets...)
	c.mu.Unlock()
}

// Hub is the explicit propagation channel between caches. A mutation
// publishes the updated tweet and every registered cache patches its copy;
// a cache that never registered simply goes stale until its own refetch.
type Hub struct {
	mu     sync.Mutex
	caches map[*Cache]struct{}
}

func NewHub() *Hub { return &Hub{caches: make(map[*Cache]struct{})} }

func (h *Hub) Register(c *Cache) {
	h.mu.Lock()
	h.caches[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Cache) {
	h.mu.Lock()
	delete(h.caches, c)
	h.mu.Unlock()
}

// Publish patches every registered cache holding the tweet and reports how
// many copies were updated.
func (h *Hub) Publish(t model.Tweet) int {
	h.mu.Lock()
	targets := make([]*Cache, 0, len(h.caches))
	for c := range h.caches {
		targets = append(targets, c)
	}
	h.mu.Unlock()
	n := 0
	for _, c := range targets {
		if c.Patch(t) {
			n++
		}
	}
	return n
}

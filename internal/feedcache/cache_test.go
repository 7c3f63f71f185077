package feedcache

import (
	"context"
	"errors"
	"testing"

	"warbler/internal/model"
)

func TestEnsureLoadedFetchesOnce(t *testing.T) {
	c := New(ViewHome)
	calls := 0
	fetch := func(ctx context.Context) ([]model.Tweet, error) {
		calls++
		return []model.Tweet{{ID: "t1"}}, nil
	}
	ctx := context.Background()
	if err := c.EnsureLoaded(ctx, fetch); err != nil {
		t.Fatal(err)
	}
	if err := c.EnsureLoaded(ctx, fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 fetch, got %d", calls)
	}
	c.Invalidate()
	_ = c.EnsureLoaded(ctx, fetch)
	if calls != 2 {
		t.Fatalf("invalidate should allow a refetch, got %d", calls)
	}
}

func TestEnsureLoadedErrorLeavesUnloaded(t *testing.T) {
	c := New(ViewHome)
	err := c.EnsureLoaded(context.Background(), func(ctx context.Context) ([]model.Tweet, error) {
		return nil, errors.New("boom")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if c.Loaded() {
		t.Fatalf("failed fetch must leave cache unloaded for retry")
	}
}

func TestHubPropagation(t *testing.T) {
	home := New(ViewHome)
	search := New(ViewSearch)
	other := New(ViewProfileTweets)
	seed := func(c *Cache, ts ...model.Tweet) {
		_ = c.EnsureLoaded(context.Background(), func(ctx context.Context) ([]model.Tweet, error) { return ts, nil })
	}
	seed(home, model.Tweet{ID: "t1", LikeCount: 5}, model.Tweet{ID: "t2"})
	seed(search, model.Tweet{ID: "t1", LikeCount: 5})
	seed(other, model.Tweet{ID: "t9"})

	h := NewHub()
	h.Register(home)
	h.Register(search)

	n := h.Publish(model.Tweet{ID: "t1", LikeCount: 6, UserLiked: true})
	if n != 2 {
		t.Fatalf("expected 2 patched copies, got %d", n)
	}
	for _, c := range []*Cache{home, search} {
		got, ok := c.Get("t1")
		if !ok || got.LikeCount != 6 || !got.UserLiked {
			t.Fatalf("%s copy not updated: %+v", c.View(), got)
		}
	}
	// Unregistered cache keeps its (absent) copy untouched and a cache
	// without the id is simply skipped.
	if _, ok := other.Get("t1"); ok {
		t.Fatalf("unregistered cache should not gain entries")
	}

	h.Unregister(search)
	_ = h.Publish(model.Tweet{ID: "t1", LikeCount: 7})
	got, _ := search.Get("t1")
	if got.LikeCount != 6 {
		t.Fatalf("unregistered cache should stay stale, got %d", got.LikeCount)
	}
}

func TestPrepend(t *testing.T) {
	c := New(ViewHome)
	c.Prepend(model.Tweet{ID: "t1"})
	c.Prepend(model.Tweet{ID: "t2"})
	ts := c.Tweets()
	if len(ts) != 2 || ts[0].ID != "t2" {
		t.Fatalf("unexpected order: %+v", ts)
	}
}

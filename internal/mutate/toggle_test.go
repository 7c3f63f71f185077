package mutate

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"warbler/internal/feedcache"
	"warbler/internal/model"
)

// fakeAPI counts calls and can fail or block per action.
type fakeAPI struct {
	mu             sync.Mutex
	likes, unlikes int
	retweets       int
	unretweets     int
	follows        int
	unfollows      int
	statusCalls    int
	bookmarked     bool
	failWith       error
	gate           chan struct{} // when set, engagement calls block until closed
	started        chan struct{} // signaled when a blocked call begins
}

func (f *fakeAPI) step(n *int) error {
	if f.gate != nil {
		if f.started != nil {
			f.started <- struct{}{}
		}
		<-f.gate
	}
	f.mu.Lock()
	*n++
	f.mu.Unlock()
	return f.failWith
}

func (f *fakeAPI) Like(ctx context.Context, id string) error      { return f.step(&f.likes) }
func (f *fakeAPI) Unlike(ctx context.Context, id string) error    { return f.step(&f.unlikes) }
func (f *fakeAPI) Retweet(ctx context.Context, id string) error   { return f.step(&f.retweets) }
func (f *fakeAPI) Unretweet(ctx context.Context, id string) error { return f.step(&f.unretweets) }
func (f *fakeAPI) Follow(ctx context.Context, u string) error     { return f.step(&f.follows) }
func (f *fakeAPI) Unfollow(ctx context.Context, u string) error   { return f.step(&f.unfollows) }

func (f *fakeAPI) ToggleBookmark(ctx context.Context, id string) (bool, error) {
	if f.gate != nil {
		<-f.gate
	}
	if f.failWith != nil {
		return false, f.failWith
	}
	f.mu.Lock()
	f.bookmarked = !f.bookmarked
	on := f.bookmarked
	f.mu.Unlock()
	return on, nil
}

func (f *fakeAPI) BookmarkStatus(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	f.statusCalls++
	on := f.bookmarked
	f.mu.Unlock()
	return on, nil
}

func TestToggleLikeRoundTrip(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, nil, nil)
	ctx := context.Background()
	orig := model.Tweet{ID: "t1", LikeCount: 5}

	once, err := c.ToggleLike(ctx, orig)
	if err != nil {
		t.Fatal(err)
	}
	if once.LikeCount != 6 || !once.UserLiked {
		t.Fatalf("after like: %+v", once)
	}
	twice, err := c.ToggleLike(ctx, once)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(twice, orig) {
		t.Fatalf("double toggle should restore original: %+v vs %+v", twice, orig)
	}
	if api.likes != 1 || api.unlikes != 1 {
		t.Fatalf("calls: likes=%d unlikes=%d", api.likes, api.unlikes)
	}
}

func TestReentrancyGuard(t *testing.T) {
	api := &fakeAPI{gate: make(chan struct{}), started: make(chan struct{}, 4)}
	c := NewController(api, nil, nil)
	ctx := context.Background()
	tw := model.Tweet{ID: "t1", LikeCount: 5}

	done := make(chan model.Tweet, 1)
	go func() {
		got, _ := c.ToggleLike(ctx, tw)
		done <- got
	}()
	<-api.started // first toggle holds the latch and sits in its network call

	if _, err := c.ToggleLike(ctx, tw); !errors.Is(err, ErrBusy) {
		t.Fatalf("second trigger should be dropped, got %v", err)
	}
	close(api.gate)
	got := <-done
	if got.LikeCount != 6 || api.likes != 1 {
		t.Fatalf("exactly one transition expected, got %+v calls=%d", got, api.likes)
	}
	// A different action on the same entity is independent.
	if _, err := c.ToggleRetweet(ctx, tw); err != nil {
		t.Fatalf("retweet should not be blocked by like latch: %v", err)
	}
}

func TestRollbackOnFailure(t *testing.T) {
	api := &fakeAPI{failWith: errors.New("503")}
	hub := feedcache.NewHub()
	home := feedcache.New(feedcache.ViewHome)
	seedCache(t, home, model.Tweet{ID: "t1", LikeCount: 5})
	hub.Register(home)

	c := NewController(api, hub, nil)
	orig := model.Tweet{ID: "t1", LikeCount: 5}
	got, err := c.ToggleLike(context.Background(), orig)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !reflect.DeepEqual(got, orig) {
		t.Fatalf("failed toggle must return pre-state: %+v", got)
	}
	cached, _ := home.Get("t1")
	if cached.LikeCount != 5 || cached.UserLiked {
		t.Fatalf("cache not rolled back: %+v", cached)
	}
}

func TestCounterNeverNegative(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, nil, nil)
	// Server claims the viewer liked it but the counter is already zero.
	tw := model.Tweet{ID: "t1", LikeCount: 0, UserLiked: true}
	got, err := c.ToggleLike(context.Background(), tw)
	if err != nil {
		t.Fatal(err)
	}
	if got.LikeCount != 0 {
		t.Fatalf("counter went negative: %d", got.LikeCount)
	}
}

func TestCrossCachePropagation(t *testing.T) {
	api := &fakeAPI{}
	hub := feedcache.NewHub()
	home := feedcache.New(feedcache.ViewHome)
	search := feedcache.New(feedcache.ViewSearch)
	stale := feedcache.New(feedcache.ViewRecommended)
	shared := model.Tweet{ID: "t1", LikeCount: 5}
	seedCache(t, home, shared)
	seedCache(t, search, shared)
	seedCache(t, stale, shared)
	hub.Register(home)
	hub.Register(search)
	// stale is never registered: permitted to miss the update.

	c := NewController(api, hub, nil)
	if _, err := c.ToggleLike(context.Background(), shared); err != nil {
		t.Fatal(err)
	}
	for _, cc := range []*feedcache.Cache{home, search} {
		got, _ := cc.Get("t1")
		if got.LikeCount != 6 || !got.UserLiked {
			t.Fatalf("%s not propagated: %+v", cc.View(), got)
		}
	}
	got, _ := stale.Get("t1")
	if got.LikeCount != 5 {
		t.Fatalf("unregistered cache unexpectedly updated: %+v", got)
	}
}

func TestToggleFollow(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, nil, nil)
	ctx := context.Background()
	subject := model.User{Username: "alice", FollowersCount: 10}

	u, following, err := c.ToggleFollow(ctx, subject, false)
	if err != nil || !following || u.FollowersCount != 11 {
		t.Fatalf("follow: %+v %v %v", u, following, err)
	}
	u, following, err = c.ToggleFollow(ctx, u, following)
	if err != nil || following || u.FollowersCount != 10 {
		t.Fatalf("unfollow: %+v %v %v", u, following, err)
	}
	if api.follows != 1 || api.unfollows != 1 {
		t.Fatalf("calls: %d %d", api.follows, api.unfollows)
	}
	// Failure keeps the caller's state.
	api.failWith = errors.New("boom")
	u2, f2, err := c.ToggleFollow(ctx, u, false)
	if err == nil || f2 || u2 != u {
		t.Fatalf("failed follow must not change state: %+v %v %v", u2, f2, err)
	}
}

func TestSeedViewerFlags(t *testing.T) {
	api := &fakeAPI{bookmarked: true}
	c := NewController(api, nil, nil)
	// Payload claims liked; no like status call exists to contradict it.
	// Bookmark claims false but the status check overrides it.
	tw := model.Tweet{ID: "t1", UserLiked: true, UserBookmarked: false}
	got, err := c.SeedViewerFlags(context.Background(), tw)
	if err != nil {
		t.Fatal(err)
	}
	if !got.UserLiked {
		t.Fatalf("payload like flag must be preserved")
	}
	if !got.UserBookmarked {
		t.Fatalf("bookmark flag must come from the status check")
	}
	if api.statusCalls != 1 {
		t.Fatalf("expected exactly one status call, got %d", api.statusCalls)
	}
}

func seedCache(t *testing.T, c *feedcache.Cache, ts ...model.Tweet) {
	t.Helper()
	if err := c.EnsureLoaded(context.Background(), func(ctx context.Context) ([]model.Tweet, error) {
		return ts, nil
	}); err != nil {
		t.Fatal(err)
	}
}

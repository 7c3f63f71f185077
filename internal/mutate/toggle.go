package mutate

import (
	"context"
	"errors"
	"sync"
	"time"

	"warbler/internal/feedcache"
	"warbler/internal/logging"
	"warbler/internal/metrics"
	"warbler/internal/model"
)

// ErrBusy means a mutation for the same entity and action is still in
// flight. The trigger is dropped: no queueing, no coalescing.
var ErrBusy = errors.New("mutation already in flight")

// API is the slice of the backend the controller drives. Like and retweet
// have distinct add/remove calls; bookmark flips server-side and reports the
// resulting state.
type API interface {
	Like(ctx context.Context, tweetID string) error
	Unlike(ctx context.Context, tweetID string) error
	Retweet(ctx context.Context, tweetID string) error
	Unretweet(ctx context.Context, tweetID string) error
	ToggleBookmark(ctx context.Context, tweetID string) (bool, error)
	BookmarkStatus(ctx context.Context, tweetID string) (bool, error)
	Follow(ctx context.Context, username string) error
	Unfollow(ctx context.Context, username string) error
}

// Recorder appends mutation outcomes to the diagnostic event log.
type Recorder interface {
	AppendEvent(ctx context.Context, ts time.Time, typ, entityID, outcome string, detail any) error
}

// Controller applies toggle actions optimistically: the local flip happens
// before the network call, every registered cache sees it immediately, and
// a failed call restores the pre-flip state exactly.
type Controller struct {
	api API
	hub *feedcache.Hub
	rec Recorder // optional

	mu   sync.Mutex
	busy map[string]struct{}
}

func NewController(api API, hub *feedcache.Hub, rec Recorder) *Controller {
	return &Controller{api: api, hub: hub, rec: rec, busy: make(map[string]struct{})}
}

func (c *Controller) acquire(entityID, action string) bool {
	k := entityID + "\x00" + action
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, held := c.busy[k]; held {
		return false
	}
	c.busy[k] = struct{}{}
	return true
}

func (c *Controller) release(entityID, action string) {
	c.mu.Lock()
	delete(c.busy, entityID+"\x00"+action)
	c.mu.Unlock()
}

// ToggleLike flips the viewer's like on t. Returns the tweet as the caller
// should now render it; on failure that is the original t.
func (c *Controller) ToggleLike(ctx context.Context, t model.Tweet) (model.Tweet, error) {
	return c.toggleCounted(ctx, t, "like",
		func(t *model.Tweet) (*bool, *int) { return &t.UserLiked, &t.LikeCount },
		c.api.Like, c.api.Unlike)
}

// ToggleRetweet flips the viewer's retweet on t.
func (c *Controller) ToggleRetweet(ctx context.Context, t model.Tweet) (model.Tweet, error) {
	return c.toggleCounted(ctx, t, "retweet",
		func(t *model.Tweet) (*bool, *int) { return &t.UserRetweeted, &t.RetweetCount },
		c.api.Retweet, c.api.Unretweet)
}

func (c *Controller) toggleCounted(ctx context.Context, t model.Tweet, action string,
	fields func(*model.Tweet) (*bool, *int), add, remove func(context.Context, string) error) (model.Tweet, error) {

	if !c.acquire(t.ID, action) {
		return t, ErrBusy
	}
	defer c.release(t.ID, action)
	metrics.IncMutation(action)

	flipped := t
	flag, count := fields(&flipped)
	if *flag {
		*flag = false
		*count = floorDec(*count)
	} else {
		*flag = true
		*count++
	}
	c.publish(flipped)

	var err error
	if *flag {
		err = add(ctx, t.ID)
	} else {
		err = remove(ctx, t.ID)
	}
	if err != nil {
		c.rollbackTweet(ctx, t, action, err)
		return t, err
	}
	c.record(ctx, action, t.ID, "ok", nil)
	return flipped, nil
}

// ToggleBookmark flips the viewer's bookmark. The server reports the state
// it landed on; if that disagrees with the optimistic flip, the server wins.
func (c *Controller) ToggleBookmark(ctx context.Context, t model.Tweet) (model.Tweet, error) {
	const action = "bookmark"
	if !c.acquire(t.ID, action) {
		return t, ErrBusy
	}
	defer c.release(t.ID, action)
	metrics.IncMutation(action)

	flipped := t
	flipped.UserBookmarked = !t.UserBookmarked
	c.publish(flipped)

	on, err := c.api.ToggleBookmark(ctx, t.ID)
	if err != nil {
		c.rollbackTweet(ctx, t, action, err)
		return t, err
	}
	if on != flipped.UserBookmarked {
		flipped.UserBookmarked = on
		c.publish(flipped)
	}
	c.record(ctx, action, t.ID, "ok", nil)
	return flipped, nil
}

// ToggleFollow flips whether the viewer follows subject, adjusting the
// subject's follower counter the same optimistic way. Returns the subject
// as it should render plus the new following flag.
func (c *Controller) ToggleFollow(ctx context.Context, subject model.User, following bool) (model.User, bool, error) {
	const action = "follow"
	if !c.acquire(subject.Username, action) {
		return subject, following, ErrBusy
	}
	defer c.release(subject.Username, action)
	metrics.IncMutation(action)

	updated := subject
	var err error
	if following {
		updated.FollowersCount = floorDec(updated.FollowersCount)
		err = c.api.Unfollow(ctx, subject.Username)
	} else {
		updated.FollowersCount++
		err = c.api.Follow(ctx, subject.Username)
	}
	if err != nil {
		metrics.IncRollback(action)
		logging.Error("follow_toggle_failed", map[string]any{"username": subject.Username, "error": err.Error()})
		c.record(ctx, action, subject.Username, "rollback", map[string]any{"error": err.Error()})
		return subject, following, err
	}
	c.record(ctx, action, subject.Username, "ok", nil)
	return updated, !following, nil
}

func (c *Controller) rollbackTweet(ctx context.Context, orig model.Tweet, action string, cause error) {
	c.publish(orig)
	metrics.IncRollback(action)
	logging.Error(action+"_toggle_failed", map[string]any{"tweet_id": orig.ID, "error": cause.Error()})
	c.record(ctx, action, orig.ID, "rollback", map[string]any{"error": cause.Error()})
}

func (c *Controller) publish(t model.Tweet) {
	if c.hub != nil {
		c.hub.Publish(t)
	}
}

func (c *Controller) record(ctx context.Context, typ, entityID, outcome string, detail any) {
	if c.rec == nil {
		return
	}
	if err := c.rec.AppendEvent(ctx, time.Now().UTC(), typ, entityID, outcome, detail); err != nil {
		logging.Warn("event_log_append_failed", map[string]any{"error": err.Error()})
	}
}

func floorDec(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}

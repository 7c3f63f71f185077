package notify

import (
	"context"
	"sync"
	"time"

	"warbler/internal/logging"
	"warbler/internal/metrics"
	"warbler/internal/model"
	"warbler/internal/mutate"
	"warbler/internal/store/localstate"
)

// API is the slice of the backend the center consumes.
type API interface {
	Notifications(ctx context.Context) ([]model.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

// Cursor persists the last successful poll time across restarts. Optional.
type Cursor interface {
	GetKV(ctx context.Context, key string) (string, error)
	PutKV(ctx context.Context, key, value string) error
}

// Center owns the notification list and the unread counter. Read flags only
// move false to true; both mark operations are optimistic with rollback,
// the same policy as the tweet toggles.
type Center struct {
	api    API
	cursor Cursor

	mu     sync.Mutex
	list   []model.Notification
	unread int
	busy   map[string]struct{}
}

func NewCenter(api API, cursor Cursor) *Center {
	return &Center{api: api, cursor: cursor, busy: make(map[string]struct{})}
}

func (c *Center) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

// Notifications returns a copy of the held list.
func (c *Center) Notifications() []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Notification, len(c.list))
	copy(out, c.list)
	return out
}

// Poll refreshes the unread count from the server. Independent of whether
// the panel was ever opened.
func (c *Center) Poll(ctx context.Context) error {
	metrics.NotifyPolls.Inc()
	n, err := c.api.UnreadCount(ctx)
	if err != nil {
		metrics.NotifyPollErrors.Inc()
		return err
	}
	c.mu.Lock()
	c.unread = n
	c.mu.Unlock()
	if c.cursor != nil {
		if err := c.cursor.PutKV(ctx, localstate.KeyNotifyCursor, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
			logging.Warn("notify_cursor_save_failed", map[string]any{"error": err.Error()})
		}
	}
	return nil
}

// LastPolled reports when the unread count last refreshed successfully,
// surviving restarts through the persisted cursor. ok is false when no
// poll ever completed or no cursor store is attached.
func (c *Center) LastPolled(ctx context.Context) (time.Time, bool) {
	if c.cursor == nil {
		return time.Time{}, false
	}
	v, err := c.cursor.GetKV(ctx, localstate.KeyNotifyCursor)
	if err != nil {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// Runpolls on a ticker until ctx is cancelled. Runs one poll immediately.
func (c *Center) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	if err := c.Poll(ctx); err != nil {
		logging.Error("notify_poll_error", map[string]any{"error": err.Error()})
	}
	for {
		select {
		case <-ctx.Done():
			logging.Info("notify_poll_stop", nil)
			return ctx.Err()
		case <-t.C:
			if err := c.Poll(ctx); err != nil {
				logging.Error("notify_poll_error", map[string]any{"error": err.Error()})
			}
		}
	}
}

// Open fetches the full list lazily: only when nothing is held yet. A
// server that returns zero notifications makes every reopen refetch; that
// matches the original guard, which keys on emptiness rather than a loaded
// flag.
func (c *Center) Open(ctx context.Context) ([]model.Notification, error) {
	c.mu.Lock()
	if len(c.list) > 0 {
		c.mu.Unlock()
		return c.Notifications(), nil
	}
	c.mu.Unlock()

	list, err := c.api.Notifications(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.list = list
	c.mu.Unlock()
	return c.Notifications(), nil
}

func (c *Center) acquire(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, held := c.busy[key]; held {
		return false
	}
	c.busy[key] = struct{}{}
	return true
}

func (c *Center) release(key string) {
	c.mu.Lock()
	delete(c.busy, key)
	c.mu.Unlock()
}

// MarkRead marks one notification read. The entry's flag flips and the
// unread count recomputes client-side from the held list, never below zero
// and never refetched from the server. An id the list does not hold changes
// nothing locally.
func (c *Center) MarkRead(ctx context.Context, id string) error {
	if !c.acquire(id) {
		return mutate.ErrBusy
	}
	defer c.release(id)
	metrics.IncMutation("notification_read")

	c.mu.Lock()
	prevList := append([]model.Notification(nil), c.list...)
	prevUnread := c.unread
	found := false
	for i := range c.list {
		if c.list[i].ID == id {
			c.list[i].Read = true
			found = true
		}
	}
	if found {
		n := 0
		for _, nf := range c.list {
			if !nf.Read && nf.ID != id {
				n++
			}
		}
		c.unread = n
	}
	c.mu.Unlock()

	if err := c.api.MarkNotificationRead(ctx, id); err != nil {
		c.mu.Lock()
		c.list = prevList
		c.unread = prevUnread
		c.mu.Unlock()
		metrics.IncRollback("notification_read")
		logging.Error("mark_read_failed", map[string]any{"notification_id": id, "error": err.Error()})
		return err
	}
	return nil
}

// MarkAllRead forces every held entry read and the count to zero, rolling
// both back if the server call fails.
func (c *Center) MarkAllRead(ctx context.Context) error {
	if !c.acquire("all") {
		return mutate.ErrBusy
	}
	defer c.release("all")
	metrics.IncMutation("notification_read_all")

	c.mu.Lock()
	prevList := append([]model.Notification(nil), c.list...)
	prevUnread := c.unread
	for i := range c.list {
		c.list[i].Read = true
	}
	c.unread = 0
	c.mu.Unlock()

	if err := c.api.MarkAllNotificationsRead(ctx); err != nil {
		c.mu.Lock()
		c.list = prevList
		c.unread = prevUnread
		c.mu.Unlock()
		metrics.IncRollback("notification_read_all")
		logging.Error("mark_all_read_failed", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}

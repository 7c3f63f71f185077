package mutate

import (
	"context"

	"warbler/internal/model"
)

// SeedViewerFlags prepares a tweet for rendering in a card. Like and
// retweet flags are trusted from the feed payload as-is; the bookmark flag
// is always confirmed with one status call, overriding whatever the payload
// carried.
func (c *Controller) SeedViewerFlags(ctx context.Context, t model.Tweet) (model.Tweet, error) {
	on, err := c.api.BookmarkStatus(ctx, t.ID)
	if err != nil {
		return t, err
	}
	t.UserBookmarked = on
	return t, nil
}

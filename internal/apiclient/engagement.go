package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Toggle endpoints. Like and retweet have distinct add/remove calls; the
// bookmark endpoint flips on the server and reports the resulting state.

func (c *HTTPClient) Like(ctx context.Context, tweetID string) error {
	return c.do(ctx, "like", http.MethodPost, engagePath(tweetID, "like"), nil, nil)
}

func (c *HTTPClient) Unlike(ctx context.Context, tweetID string) error {
	return c.do(ctx, "unlike", http.MethodDelete, engagePath(tweetID, "like"), nil, nil)
}

func (c *HTTPClient) LikeStatus(ctx context.Context, tweetID string) (bool, error) {
	var out struct {
		Liked bool `json:"liked"`
	}
	if err := c.do(ctx, "like_status", http.MethodGet, engagePath(tweetID, "like/status"), nil, &out); err != nil {
		return false, err
	}
	return out.Liked, nil
}

func (c *HTTPClient) Retweet(ctx context.Context, tweetID string) error {
	return c.do(ctx, "retweet", http.MethodPost, engagePath(tweetID, "retweet"), nil, nil)
}

func (c *HTTPClient) Unretweet(ctx context.Context, tweetID string) error {
	return c.do(ctx, "unretweet", http.MethodDelete, engagePath(tweetID, "retweet"), nil, nil)
}

func (c *HTTPClient) RetweetStatus(ctx context.Context, tweetID string) (bool, error) {
	var out struct {
		Retweeted bool `json:"retweeted"`
	}
	if err := c.do(ctx, "retweet_status", http.MethodGet, engagePath(tweetID, "retweet/status"), nil, &out); err != nil {
		return false, err
	}
	return out.Retweeted, nil
}

func (c *HTTPClient) ToggleBookmark(ctx context.Context, tweetID string) (bool, error) {
	var out struct {
		Bookmarked bool `json:"bookmarked"`
	}
	if err := c.do(ctx, "toggle_bookmark", http.MethodPost, engagePath(tweetID, "bookmark"), nil, &out); err != nil {
		return false, err
	}
	return out.Bookmarked, nil
}

func (c *HTTPClient) BookmarkStatus(ctx context.Context, tweetID string) (bool, error) {
	var out struct {
		Bookmarked bool `json:"bookmarked"`
	}
	if err := c.do(ctx, "bookmark_status", http.MethodGet, engagePath(tweetID, "bookmark/status"), nil, &out); err != nil {
		return false, err
	}
	return out.Bookmarked, nil
}

func engagePath(tweetID, suffix string) string {
	return fmt.Sprintf("/api/tweets/%s/%s", url.PathEscape(tweetID), suffix)
}

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"warbler/internal/model"
)

func (c *HTTPClient) Follow(ctx context.Context, username string) error {
	return c.do(ctx, "follow", http.MethodPost, userPath(username, "follow"), nil, nil)
}

func (c *HTTPClient) Unfollow(ctx context.Context, username string) error {
	return c.do(ctx, "unfollow", http.MethodDelete, userPath(username, "follow"), nil, nil)
}

// FollowStatus reports whether the current viewer follows the subject.
func (c *HTTPClient) FollowStatus(ctx context.Context, username string) (bool, error) {
	var out struct {
		Following bool `json:"following"`
	}
	if err := c.do(ctx, "follow_status", http.MethodGet, userPath(username, "follow/status"), nil, &out); err != nil {
		return false, err
	}
	return out.Following, nil
}

func (c *HTTPClient) Followers(ctx context.Context, username string) ([]model.User, error) {
	var out []wireUser
	if err := c.do(ctx, "followers", http.MethodGet, userPath(username, "followers"), nil, &out); err != nil {
		return nil, err
	}
	return usersToModel(out), nil
}

func (c *HTTPClient) Following(ctx context.Context, username string) ([]model.User, error) {
	var out []wireUser
	if err := c.do(ctx, "following", http.MethodGet, userPath(username, "following"), nil, &out); err != nil {
		return nil, err
	}
	return usersToModel(out), nil
}

func (c *HTTPClient) UserStats(ctx context.Context, username string) (model.FollowStats, error) {
	var out struct {
		FollowersCount int `json:"followers_count"`
		FollowingCount int `json:"following_count"`
	}
	if err := c.do(ctx, "user_stats", http.MethodGet, userPath(username, "stats"), nil, &out); err != nil {
		return model.FollowStats{}, err
	}
	return model.FollowStats{FollowersCount: out.FollowersCount, FollowingCount: out.FollowingCount}, nil
}

func userPath(username, suffix string) string {
	return fmt.Sprintf("/api/users/%s/%s", url.PathEscape(username), suffix)
}

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"warbler/internal/model"
)

func (c *HTTPClient) HomeFeed(ctx context.Context) ([]model.Tweet, error) {
	var out []wireTweet
	if err := c.do(ctx, "home_feed", http.MethodGet, "/api/tweets/feed", nil, &out); err != nil {
		return nil, err
	}
	return tweetsToModel(out), nil
}

func (c *HTTPClient) CreateTweet(ctx context.Context, content, mediaID, mediaType string, tags []string) (model.Tweet, error) {
	if err := model.ValidateTweetContent(content); err != nil {
		return model.Tweet{}, err
	}
	in := struct {
		Content   string   `json:"content"`
		MediaID   string   `json:"media_id,omitempty"`
		MediaType string   `json:"media_type,omitempty"`
		Tags      []string `json:"tags,omitempty"`
	}{content, mediaID, mediaType, tags}
	var out wireTweet
	if err := c.do(ctx, "create_tweet", http.MethodPost, "/api/tweets", in, &out); err != nil {
		return model.Tweet{}, err
	}
	return out.toModel(), nil
}

func (c *HTTPClient) userTweetList(ctx context.Context, op, kind, username string) ([]model.Tweet, error) {
	var out []wireTweet
	p := fmt.Sprintf("/api/tweets/%s/%s", kind, url.PathEscape(username))
	if err := c.do(ctx, op, http.MethodGet, p, nil, &out); err != nil {
		return nil, err
	}
	return tweetsToModel(out), nil
}

func (c *HTTPClient) UserTweets(ctx context.Context, username string) ([]model.Tweet, error) {
	return c.userTweetList(ctx, "user_tweets", "user", username)
}

func (c *HTTPClient) LikedTweets(ctx context.Context, username string) ([]model.Tweet, error) {
	return c.userTweetList(ctx, "liked_tweets", "liked", username)
}

func (c *HTTPClient) RetweetedTweets(ctx context.Context, username string) ([]model.Tweet, error) {
	return c.userTweetList(ctx, "retweeted_tweets", "retweeted", username)
}

func (c *HTTPClient) BookmarkedTweets(ctx context.Context, username string) ([]model.Tweet, error) {
	return c.userTweetList(ctx, "bookmarked_tweets", "bookmarked", username)
}

// Recommended returns server-ranked tweets with their score and reasons.
func (c *HTTPClient) Recommended(ctx context.Context, limit int) ([]model.RecommendedTweet, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []struct {
		wireTweet
		Score   float64  `json:"score"`
		Reasons []string `json:"reasons"`
	}
	p := fmt.Sprintf("/api/tweets/recommended?limit=%d", limit)
	if err := c.do(ctx, "recommended", http.MethodGet, p, nil, &out); err != nil {
		return nil, err
	}
	recs := make([]model.RecommendedTweet, 0, len(out))
	for _, r := range out {
		recs = append(recs, model.RecommendedTweet{Tweet: r.toModel(), Score: r.Score, Reasons: r.Reasons})
	}
	return recs, nil
}

func (c *HTTPClient) Comments(ctx context.Context, tweetID string) ([]model.Comment, error) {
	var out []wireComment
	p := fmt.Sprintf("/api/tweets/%s/comments", url.PathEscape(tweetID))
	if err := c.do(ctx, "comments", http.MethodGet, p, nil, &out); err != nil {
		return nil, err
	}
	cs := make([]model.Comment, 0, len(out))
	for _, w := range out {
		cs = append(cs, w.toModel())
	}
	return cs, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, tweetID, content string) (model.Comment, error) {
	in := struct {
		Content string `json:"content"`
	}{content}
	var out wireComment
	p := fmt.Sprintf("/api/tweets/%s/comments", url.PathEscape(tweetID))
	if err := c.do(ctx, "create_comment", http.MethodPost, p, in, &out); err != nil {
		return model.Comment{}, err
	}
	return out.toModel(), nil
}

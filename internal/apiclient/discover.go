package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"warbler/internal/model"
)

func (c *HTTPClient) Search(ctx context.Context, query string) (model.SearchResults, error) {
	var out struct {
		Users  []wireUser  `json:"users"`
		Tweets []wireTweet `json:"tweets"`
	}
	p := "/api/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, "search", http.MethodGet, p, nil, &out); err != nil {
		return model.SearchResults{}, err
	}
	return model.SearchResults{Users: usersToModel(out.Users), Tweets: tweetsToModel(out.Tweets)}, nil
}

// SearchUsers backs mention autocomplete, so it returns users only.
func (c *HTTPClient) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	var out []wireUser
	p := "/api/search/users?q=" + url.QueryEscape(query)
	if err := c.do(ctx, "search_users", http.MethodGet, p, nil, &out); err != nil {
		return nil, err
	}
	return usersToModel(out), nil
}

func (c *HTTPClient) TrendingHashtags(ctx context.Context) ([]model.TrendingTag, error) {
	var out []struct {
		Tag          string      `json:"tag"`
		Count        int         `json:"count"`
		SampleTweets []wireTweet `json:"sample_tweets"`
	}
	if err := c.do(ctx, "trending", http.MethodGet, "/api/trends/hashtags", nil, &out); err != nil {
		return nil, err
	}
	tags := make([]model.TrendingTag, 0, len(out))
	for _, t := range out {
		tags = append(tags, model.TrendingTag{Tag: t.Tag, Count: t.Count, SampleTweets: tweetsToModel(t.SampleTweets)})
	}
	return tags, nil
}

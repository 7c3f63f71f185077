package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(ts *httptest.Server, token string) *HTTPClient {
	c := New(ts.URL, staticToken(token), 1000, 1000)
	c.httpClient = ts.Client()
	return c
}

func TestAuthHeaderAndCorrelationID(t *testing.T) {
	var gotAuth, gotReqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]wireTweet{})
	}))
	defer ts.Close()

	c := newTestClient(ts, "tok123")
	if _, err := c.HomeFeed(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("auth header: %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatalf("expected a correlation id header")
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := newTestClient(ts, "expired")
	_, err := c.CurrentUser(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestServerErrorIsStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := newTestClient(ts, "")
	err := c.Like(context.Background(), "t1")
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusBadGateway {
		t.Fatalf("expected StatusError 502, got %v", err)
	}
}

func TestEngagementPaths(t *testing.T) {
	var method, path string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"bookmarked": true}`))
	}))
	defer ts.Close()

	c := newTestClient(ts, "tok")
	ctx := context.Background()
	if err := c.Unlike(ctx, "t9"); err != nil {
		t.Fatal(err)
	}
	if method != http.MethodDelete || path != "/api/tweets/t9/like" {
		t.Fatalf("unlike hit %s %s", method, path)
	}
	on, err := c.ToggleBookmark(ctx, "t9")
	if err != nil || !on {
		t.Fatalf("toggle bookmark: %v %v", on, err)
	}
	if method != http.MethodPost || path != "/api/tweets/t9/bookmark" {
		t.Fatalf("bookmark hit %s %s", method, path)
	}
}

func TestSearchDecodesBothKinds(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "gopher" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"users":[{"id":"u1","username":"gopher"}],"tweets":[{"id":"t1","content":"hi","like_count":3,"user_liked":true}]}`))
	}))
	defer ts.Close()

	c := newTestClient(ts, "tok")
	res, err := c.Search(context.Background(), "gopher")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Users) != 1 || res.Users[0].Username != "gopher" {
		t.Fatalf("users: %+v", res.Users)
	}
	if len(res.Tweets) != 1 || res.Tweets[0].LikeCount != 3 || !res.Tweets[0].UserLiked {
		t.Fatalf("tweets: %+v", res.Tweets)
	}
}

func TestFollowerListingPaths(t *testing.T) {
	var path string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`[{"id":"u2","username":"wren","bio":"birdwatcher"}]`))
	}))
	defer ts.Close()

	c := newTestClient(ts, "tok")
	ctx := context.Background()
	users, err := c.Followers(ctx, "finch")
	if err != nil {
		t.Fatal(err)
	}
	if path != "/api/users/finch/followers" {
		t.Fatalf("followers hit %s", path)
	}
	if len(users) != 1 || users[0].Username != "wren" || users[0].Bio != "birdwatcher" {
		t.Fatalf("followers: %+v", users)
	}
	if _, err := c.Following(ctx, "finch"); err != nil {
		t.Fatal(err)
	}
	if path != "/api/users/finch/following" {
		t.Fatalf("following hit %s", path)
	}
}

func TestSearchUsersQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search/users" || r.URL.Query().Get("q") != "wr en" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"u2","username":"wren"}]`))
	}))
	defer ts.Close()

	c := newTestClient(ts, "tok")
	users, err := c.SearchUsers(context.Background(), "wr en")
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || users[0].Username != "wren" {
		t.Fatalf("users: %+v", users)
	}
}

func TestTweetReactionsDecode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tweets/t3/reactions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"r1","tweet_id":"t3","user_id":"u2","emotion":"joy","created_at":"2026-08-01T10:00:00Z"}]`))
	}))
	defer ts.Close()

	c := newTestClient(ts, "tok")
	rs, err := c.TweetReactions(context.Background(), "t3")
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != 1 || rs[0].Emotion != "joy" || rs[0].UserID != "u2" {
		t.Fatalf("reactions: %+v", rs)
	}
}

func TestMediaURL(t *testing.T) {
	c := New("http://example.test", nil, 0, 0)
	if got := c.MediaURL("abc 123"); got != "http://example.test/api/media/abc%20123" {
		t.Fatalf("media url: %s", got)
	}
}

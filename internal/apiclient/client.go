package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"warbler/internal/metrics"
	"warbler/internal/model"
)

// Client defines the backend operations the views depend on. The backend is
// a capability provider; endpoint paths are private to this package.
type Client interface {
	// auth
	Register(ctx context.Context, username, email, password string) (model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (model.User, error)

	// tweets
	HomeFeed(ctx context.Context) ([]model.Tweet, error)
	CreateTweet(ctx context.Context, content, mediaID, mediaType string, tags []string) (model.Tweet, error)
	UserTweets(ctx context.Context, username string) ([]model.Tweet, error)
	LikedTweets(ctx context.Context, username string) ([]model.Tweet, error)
	RetweetedTweets(ctx context.Context, username string) ([]model.Tweet, error)
	BookmarkedTweets(ctx context.Context, username string) ([]model.Tweet, error)
	Recommended(ctx context.Context, limit int) ([]model.RecommendedTweet, error)

	// engagement
	Like(ctx context.Context, tweetID string) error
	Unlike(ctx context.Context, tweetID string) error
	LikeStatus(ctx context.Context, tweetID string) (bool, error)
	Retweet(ctx context.Context, tweetID string) error
	Unretweet(ctx context.Context, tweetID string) error
	RetweetStatus(ctx context.Context, tweetID string) (bool, error)
	ToggleBookmark(ctx context.Context, tweetID string) (bool, error)
	BookmarkStatus(ctx context.Context, tweetID string) (bool, error)

	// comments
	Comments(ctx context.Context, tweetID string) ([]model.Comment, error)
	CreateComment(ctx context.Context, tweetID, content string) (model.Comment, error)

	// follow graph
	Follow(ctx context.Context, username string) error
	Unfollow(ctx context.Context, username string) error
	FollowStatus(ctx context.Context, username string) (bool, error)
	Followers(ctx context.Context, username string) ([]model.User, error)
	Following(ctx context.Context, username string) ([]model.User, error)
	UserStats(ctx context.Context, username string) (model.FollowStats, error)

	// notifications
	Notifications(ctx context.Context) ([]model.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error

	// discovery
	Search(ctx context.Context, query string) (model.SearchResults, error)
	SearchUsers(ctx context.Context, query string) ([]model.User, error)
	TrendingHashtags(ctx context.Context) ([]model.TrendingTag, error)

	// media
	UploadTweetMedia(ctx context.Context, filename string, data []byte) (string, error)
	UploadProfilePhoto(ctx context.Context, filename string, data []byte) (string, error)
	UploadBannerPhoto(ctx context.Context, filename string, data []byte) (string, error)
	UpdateProfile(ctx context.Context, bio string) (model.User, error)
	MediaURL(id string) string

	// emotion capability
	DetectEmotion(ctx context.Context, frame []byte) (model.EmotionDetection, error)
	ReactToTweet(ctx context.Context, tweetID, emotion string) error
	TweetReactions(ctx context.Context, tweetID string) ([]model.EmotionReaction, error)
	ReactionSummary(ctx context.Context, tweetID string) (model.ReactionSummary, error)
}

// TokenSource supplies the bearer token for authenticated requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// ErrUnauthorized maps 401 responses: the stored token is invalid or expired.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is any other non-2xx backend response.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("%s: backend status %d", e.Op, e.Code) }

// HTTPClient is a bearer-token JSON client for the backend. There is no
// retry loop: mutations are at-most-once and reads surface their failure to
// the caller for a manual reload.
type HTTPClient struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	limiter    limiter
}

func New(baseURL string, tokens TokenSource, rps float64, burst int) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    newLimiter(rps, burst),
	}
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) auth(req *http.Request) {
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// do performs one JSON request. body is marshaled when non-nil, out decoded
// when non-nil and the response is 2xx.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, op, out)
}

func (c *HTTPClient) send(req *http.Request, op string, out any) error {
	c.auth(req)
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveAPICall(op, "error", start)
		return err
	}
	defer resp.Body.Close()
	metrics.ObserveAPICall(op, statusClass(resp.StatusCode), start)
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	if resp.StatusCode >= 400 {
		return &StatusError{Op: op, Code: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusClass(code int) string {
	switch {
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

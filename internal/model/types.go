package model

import "time"

// User is a user profile as the backend reports it.
type User struct {
	ID               string
	Username         string
	Email            string
	Bio              string
	ProfilePictureID string
	BannerPictureID  string
	CreatedAt        time.Time
	FollowersCount   int
	FollowingCount   int
}

// Tweet is a tweet as held by a view cache. Counters come from the server;
// the User* flags and UserReaction are viewer-relative and tracked only on
// the client for the current session.
type Tweet struct {
	ID                     string
	Content                string
	AuthorID               string
	AuthorUsername         string
	CreatedAt              time.Time
	LikeCount              int
	CommentCount           int
	RetweetCount           int
	IsRetweet              bool
	OriginalTweetID        string
	OriginalAuthorUsername string
	MediaID                string
	MediaType              string
	Tags                   []string

	UserLiked      bool
	UserRetweeted  bool
	UserBookmarked bool
	UserReaction   string
}

// Comment on a tweet. Append-only from the client's perspective.
type Comment struct {
	ID             string
	TweetID        string
	Content        string
	AuthorID       string
	AuthorUsername string
	CreatedAt      time.Time
}

// Notification types as the backend emits them.
const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationRetweet = "retweet"
	NotificationFollow  = "follow"
	NotificationMention = "mention"
)

// Notification delivered to the current user. TweetID/TweetContent are empty
// for follow notifications; CommentID/CommentContent are set only for
// comment notifications.
type Notification struct {
	ID             string
	RecipientID    string
	SenderID       string
	SenderUsername string
	Type           string
	TweetID        string
	TweetContent   string
	CommentID      string
	CommentContent string
	Read           bool
	CreatedAt      time.Time
}

// FollowStats are the follower/following counters for a profile.
type FollowStats struct {
	FollowersCount int
	FollowingCount int
}

// SearchResults groups the two result kinds a query returns.
type SearchResults struct {
	Users  []User
	Tweets []Tweet
}

// TrendingTag is a hashtag with its usage count and a few sample tweets.
type TrendingTag struct {
	Tag          string
	Count        int
	SampleTweets []Tweet
}

// RecommendedTweet is a feed tweet with the server's ranking metadata.
type RecommendedTweet struct {
	Tweet   Tweet
	Score   float64
	Reasons []string
}

// EmotionDetection is the result of analyzing one captured frame.
type EmotionDetection struct {
	Dominant   string
	Confidence map[string]float64
}

// EmotionReaction is one viewer's recorded reaction to a tweet.
type EmotionReaction struct {
	ID        string
	TweetID   string
	UserID    string
	Emotion   string
	CreatedAt time.Time
}

// ReactionSummary aggregates reaction counts per emotion for a tweet.
type ReactionSummary struct {
	TweetID string
	Total   int
	Counts  map[string]int
}

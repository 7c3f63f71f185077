package apiclient

import (
	"time"

	"warbler/internal/model"
)

// Wire representations of backend JSON. Field names follow the backend's
// snake_case; converters map them onto the tag-free model types the rest of
// the client works with.

type wireUser struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Bio              string    `json:"bio"`
	ProfilePictureID string    `json:"profile_picture_id"`
	BannerPictureID  string    `json:"banner_picture_id"`
	CreatedAt        time.Time `json:"created_at"`
	FollowersCount   int       `json:"followers_count"`
	FollowingCount   int       `json:"following_count"`
}

func (w wireUser) toModel() model.User {
	return model.User{
		ID:               w.ID,
		Username:         w.Username,
		Email:            w.Email,
		Bio:              w.Bio,
		ProfilePictureID: w.ProfilePictureID,
		BannerPictureID:  w.BannerPictureID,
		CreatedAt:        w.CreatedAt,
		FollowersCount:   w.FollowersCount,
		FollowingCount:   w.FollowingCount,
	}
}

func usersToModel(ws []wireUser) []model.User {
	out := make([]model.User, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toModel())
	}
	return out
}

type wireTweet struct {
	ID                     string    `json:"id"`
	Content                string    `json:"content"`
	AuthorID               string    `json:"author_id"`
	AuthorUsername         string    `json:"author_username"`
	CreatedAt              time.Time `json:"created_at"`
	LikeCount              int       `json:"like_count"`
	CommentCount           int       `json:"comment_count"`
	RetweetCount           int       `json:"retweet_count"`
	IsRetweet              bool      `json:"is_retweet"`
	OriginalTweetID        string    `json:"original_tweet_id"`
	OriginalAuthorUsername string    `json:"original_author_username"`
	MediaID                string    `json:"media_id"`
	MediaType              string    `json:"media_type"`
	Tags                   []string  `json:"tags"`
	// Viewer-relative flags the feed payload may carry. Bookmark state is
	// never taken from here; the card always confirms it separately.
	UserLiked     bool `json:"user_liked"`
	UserRetweeted bool `json:"user_retweeted"`
}

func (w wireTweet) toModel() model.Tweet {
	return model.Tweet{
		ID:                     w.ID,
		Content:                w.Content,
		AuthorID:               w.AuthorID,
		AuthorUsername:         w.AuthorUsername,
		CreatedAt:              w.CreatedAt,
		LikeCount:              w.LikeCount,
		CommentCount:           w.CommentCount,
		RetweetCount:           w.RetweetCount,
		IsRetweet:              w.IsRetweet,
		OriginalTweetID:        w.OriginalTweetID,
		OriginalAuthorUsername: w.OriginalAuthorUsername,
		MediaID:                w.MediaID,
		MediaType:              w.MediaType,
		Tags:                   w.Tags,
		UserLiked:              w.UserLiked,
		UserRetweeted:          w.UserRetweeted,
	}
}

func tweetsToModel(ws []wireTweet) []model.Tweet {
	out := make([]model.Tweet, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toModel())
	}
	return out
}

type wireComment struct {
	ID             string    `json:"id"`
	TweetID        string    `json:"tweet_id"`
	Content        string    `json:"content"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
}

func (w wireComment) toModel() model.Comment {
	return model.Comment{
		ID:             w.ID,
		TweetID:        w.TweetID,
		Content:        w.Content,
		AuthorID:       w.AuthorID,
		AuthorUsername: w.AuthorUsername,
		CreatedAt:      w.CreatedAt,
	}
}

type wireNotification struct {
	ID             string    `json:"id"`
	RecipientID    string    `json:"recipient_id"`
	SenderID       string    `json:"sender_id"`
	SenderUsername string    `json:"sender_username"`
	Type           string    `json:"type"`
	TweetID        string    `json:"tweet_id"`
	TweetContent   string    `json:"tweet_content"`
	CommentID      string    `json:"comment_id"`
	CommentContent string    `json:"comment_content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

func (w wireNotification) toModel() model.Notification {
	return model.Notification{
		ID:             w.ID,
		RecipientID:    w.RecipientID,
		SenderID:       w.SenderID,
		SenderUsername: w.SenderUsername,
		Type:           w.Type,
		TweetID:        w.TweetID,
		TweetContent:   w.TweetContent,
		CommentID:      w.CommentID,
		CommentContent: w.CommentContent,
		Read:           w.Read,
		CreatedAt:      w.CreatedAt,
	}
}

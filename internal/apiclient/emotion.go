package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"warbler/internal/model"
)

// DetectEmotion submits one captured frame and returns the dominant emotion
// with per-class confidences. The capture itself happens outside the client.
func (c *HTTPClient) DetectEmotion(ctx context.Context, frame []byte) (model.EmotionDetection, error) {
	body, contentType, err := multipartFile("frame", "frame.jpg", frame)
	if err != nil {
		return model.EmotionDetection{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/emotion/detect", body)
	if err != nil {
		return model.EmotionDetection{}, err
	}
	req.Header.Set("Content-Type", contentType)
	var out struct {
		DominantEmotion string             `json:"dominant_emotion"`
		Confidence      map[string]float64 `json:"confidence"`
	}
	if err := c.send(req, "detect_emotion", &out); err != nil {
		return model.EmotionDetection{}, err
	}
	return model.EmotionDetection{Dominant: out.DominantEmotion, Confidence: out.Confidence}, nil
}

func (c *HTTPClient) ReactToTweet(ctx context.Context, tweetID, emotion string) error {
	in := struct {
		Emotion string `json:"emotion"`
	}{emotion}
	p := reactionsPath(tweetID)
	return c.do(ctx, "react", http.MethodPost, p, in, nil)
}

func (c *HTTPClient) TweetReactions(ctx context.Context, tweetID string) ([]model.EmotionReaction, error) {
	var out []struct {
		ID        string  `json:"id"`
		TweetID   string  `json:"tweet_id"`
		UserID    string  `json:"user_id"`
		Emotion   string  `json:"emotion"`
		CreatedAt time.Time `json:"created_at"`
	}
	if err := c.do(ctx, "reactions", http.MethodGet, reactionsPath(tweetID), nil, &out); err != nil {
		return nil, err
	}
	rs := make([]model.EmotionReaction, 0, len(out))
	for _, r := range out {
		rs = append(rs, model.EmotionReaction{ID: r.ID, TweetID: r.TweetID, UserID: r.UserID, Emotion: r.Emotion, CreatedAt: r.CreatedAt})
	}
	return rs, nil
}

func (c *HTTPClient) ReactionSummary(ctx context.Context, tweetID string) (model.ReactionSummary, error) {
	var out struct {
		TweetID       string         `json:"tweet_id"`
		ReactionCount int            `json:"reaction_count"`
		Reactions     map[string]int `json:"reactions"`
	}
	p := reactionsPath(tweetID) + "/summary"
	if err := c.do(ctx, "reaction_summary", http.MethodGet, p, nil, &out); err != nil {
		return model.ReactionSummary{}, err
	}
	return model.ReactionSummary{TweetID: out.TweetID, Total: out.ReactionCount, Counts: out.Reactions}, nil
}

func reactionsPath(tweetID string) string {
	return fmt.Sprintf("/api/tweets/%s/reactions", url.PathEscape(tweetID))
}

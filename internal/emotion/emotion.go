package emotion

import (
	"bytes"
	"context"
	"errors"

	"warbler/internal/model"
)

// API is the backend's emotion capability: frame analysis plus per-tweet
// reaction aggregation.
type API interface {
	DetectEmotion(ctx context.Context, frame []byte) (model.EmotionDetection, error)
	ReactToTweet(ctx context.Context, tweetID, emotion string) error
	ReactionSummary(ctx context.Context, tweetID string) (model.ReactionSummary, error)
}

var ErrBadFrame = errors.New("frame is not a JPEG or PNG image")

var (
	jpegMagic = []byte{0xff, 0xd8, 0xff}
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
)

// Reactor glues a captured frame to a recorded reaction. Capture itself is
// external; this only validates and submits.
type Reactor struct {
	api API
}

func NewReactor(api API) *Reactor { return &Reactor{api: api} }

// Detect validates the frame and asks the capability for its dominant
// emotion with per-class confidences.
func (r *Reactor) Detect(ctx context.Context, frame []byte) (model.EmotionDetection, error) {
	if err := validateFrame(frame); err != nil {
		return model.EmotionDetection{}, err
	}
	return r.api.DetectEmotion(ctx, frame)
}

// ReactWithFrame detects the emotion on a frame and records it as the
// viewer's reaction to the tweet, returning what was recorded.
func (r *Reactor) ReactWithFrame(ctx context.Context, tweetID string, frame []byte) (model.EmotionDetection, error) {
	det, err := r.Detect(ctx, frame)
	if err != nil {
		return model.EmotionDetection{}, err
	}
	if err := r.api.ReactToTweet(ctx, tweetID, det.Dominant); err != nil {
		return model.EmotionDetection{}, err
	}
	return det, nil
}

// Summary returns aggregate reaction counts per emotion for a tweet.
func (r *Reactor) Summary(ctx context.Context, tweetID string) (model.ReactionSummary, error) {
	return r.api.ReactionSummary(ctx, tweetID)
}

func validateFrame(frame []byte) error {
	if len(frame) < 4 {
		return ErrBadFrame
	}
	if bytes.HasPrefix(frame, jpegMagic) || bytes.HasPrefix(frame, pngMagic) {
		return nil
	}
	return ErrBadFrame
}

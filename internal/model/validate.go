package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxTweetRunes is the tweet content limit in code points.
const MaxTweetRunes = 280

var (
	ErrContentEmpty   = errors.New("tweet content is empty")
	ErrContentTooLong = errors.New("tweet content exceeds 280 characters")
)

// ValidateTweetContent enforces the compose rules before a create call is
// attempted. Length counts code points, not bytes.
func ValidateTweetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentEmpty
	}
	if utf8.RuneCountInString(content) > MaxTweetRunes {
		return ErrContentTooLong
	}
	return nil
}

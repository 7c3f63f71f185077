package media

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind of an attachment, derived from its filename.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindNone  Kind = ""
)

var (
	ErrUnsupportedType = errors.New("unsupported media type")
	ErrTooLarge        = errors.New("file too large")
	ErrEmpty           = errors.New("empty file")
)

var imageExts = map[string]bool{"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true}
var videoExts = map[string]bool{"mp4": true, "webm": true, "ogg": true, "mov": true}

// KindOf classifies a filename by extension.
func KindOf(name string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch {
	case imageExts[ext]:
		return KindImage
	case videoExts[ext]:
		return KindVideo
	}
	return KindNone
}

// ValidateUpload runs the synchronous pre-submission checks. A failure here
// is user-visible and blocks the upload; nothing is sent.
func ValidateUpload(name string, size, maxBytes int64) (Kind, error) {
	kind := KindOf(name)
	if kind == KindNone {
		return KindNone, fmt.Errorf("%s: %w", name, ErrUnsupportedType)
	}
	if size <= 0 {
		return KindNone, fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	if maxBytes > 0 && size > maxBytes {
		return KindNone, fmt.Errorf("%s (%d bytes): %w", name, size, ErrTooLarge)
	}
	return kind, nil
}

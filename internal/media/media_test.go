package media

import (
	"errors"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := map[string]Kind{
		"pic.JPG":    KindImage,
		"clip.webm":  KindVideo,
		"movie.mov":  KindVideo,
		"doc.pdf":    KindNone,
		"noext":      KindNone,
		"shot.webp":  KindImage,
		"weird.ogg":  KindVideo,
		"photo.jpeg": KindImage,
	}
	for name, want := range cases {
		if got := KindOf(name); got != want {
			t.Errorf("KindOf(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestValidateUpload(t *testing.T) {
	if _, err := ValidateUpload("a.png", 100, 1000); err != nil {
		t.Fatalf("valid upload rejected: %v", err)
	}
	if _, err := ValidateUpload("a.txt", 100, 1000); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if _, err := ValidateUpload("a.png", 2000, 1000); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, err := ValidateUpload("a.png", 0, 1000); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	// No cap configured means size is unchecked.
	if _, err := ValidateUpload("a.png", 1<<40, 0); err != nil {
		t.Fatalf("uncapped size rejected: %v", err)
	}
}

package theme

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"warbler/internal/logging"
	"warbler/internal/store/localstate"
)

// Prefs is the slice of persistence the theme store needs.
type Prefs interface {
	GetKV(ctx context.Context, key string) (string, error)
	PutKV(ctx context.Context, key, value string) error
}

// Store holds the binary theme flag. Dark is the default; the flag persists
// on every toggle and survives logout untouched.
type Store struct {
	prefs Prefs
	dark  bool
}

func Load(prefs Prefs) *Store {
	s := &Store{prefs: prefs, dark: true}
	if v, err := prefs.GetKV(context.Background(), localstate.KeyTheme); err == nil {
		s.dark = v != "light"
	}
	return s
}

func (s *Store) Dark() bool { return s.dark }

// Toggle flips the flag and persists it synchronously. Returns the new value.
func (s *Store) Toggle() bool {
	s.dark = !s.dark
	v := "light"
	if s.dark {
		v = "dark"
	}
	if err := s.prefs.PutKV(context.Background(), localstate.KeyTheme, v); err != nil {
		logging.Error("theme_persist_failed", map[string]any{"error": err.Error()})
	}
	return s.dark
}

// Palette is the set of styles the CLI renders with.
type Palette struct {
	Title  lipgloss.Style
	Handle lipgloss.Style
	Body   lipgloss.Style
	Accent lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// Palette returns the styles for the current mode.
func (s *Store) Palette() Palette {
	if s.dark {
		return Palette{
			Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Handle: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Body:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		}
	}
	return Palette{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Handle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Body:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

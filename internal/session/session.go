package session

import (
	"context"
	"errors"
	"sync"

	"warbler/internal/logging"
	"warbler/internal/model"
)

// State of the session machine. Loading only exists before the first
// Restore completes; afterwards the store moves between Unauthenticated and
// Authenticated only through Login and Logout.
type State int

const (
	Loading State = iota
	Unauthenticated
	Authenticated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

// ErrNotAuthenticated is returned by operations that need a session.
var ErrNotAuthenticated = errors.New("not authenticated")

// TokenStore persists the credential across restarts. Writes happen inside
// the state mutation that triggers them, never deferred.
type TokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

// CurrentUserFetcher resolves the profile the persisted token belongs to.
// The API client satisfies this; it reads the token from the same store.
type CurrentUserFetcher interface {
	CurrentUser(ctx context.Context) (model.User, error)
}

// Session is the read snapshot consumers get. Nothing outside this package
// mutates session state.
type Session struct {
	Token         string
	User          model.User
	Authenticated bool
	Loading       bool
}

// Store is the single authority for authentication state.
type Store struct {
	tokens TokenStore
	users  CurrentUserFetcher

	mu       sync.Mutex
	token    string
	user     model.User
	authed   bool
	loading  bool
	restored *restoreCall
}

type restoreCall struct {
	done chan struct{}
	err  error
}

func New(tokens TokenStore, users CurrentUserFetcher) *Store {
	return &Store{tokens: tokens, users: users, loading: true}
}

// Restore resolves the persisted token into a session, once. A token that
// no longer resolves is cleared so the next start comes up unauthenticated
// immediately. All callers coalesce onto a single attempt and observe its
// outcome; loading ends when that attempt does, success or not.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	if call := s.restored; call != nil {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	call := &restoreCall{done: make(chan struct{})}
	s.restored = call
	s.mu.Unlock()

	call.err = s.restore(ctx)

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	close(call.done)
	return call.err
}

func (s *Store) restore(ctx context.Context) error {
	tok := s.tokens.Token()
	if tok == "" {
		return nil
	}
	u, err := s.users.CurrentUser(ctx)
	if err != nil {
		// Invalid stored token: silent logout.
		if cerr := s.tokens.Clear(); cerr != nil {
			logging.Error("restore_token_clear_failed", map[string]any{"error": cerr.Error()})
		}
		logging.Warn("restore_failed", map[string]any{"error": err.Error()})
		return err
	}
	s.mu.Lock()
	s.token = tok
	s.user = u
	s.authed = true
	s.mu.Unlock()
	return nil
}

// Login installs a session from credentials the caller already exchanged.
// The token is persisted synchronously; there is no network call here.
func (s *Store) Login(token string, u model.User) {
	if err := s.tokens.Save(token); err != nil {
		logging.Error("token_persist_failed", map[string]any{"error": err.Error()})
	}
	s.mu.Lock()
	s.token = token
	s.user = u
	s.authed = true
	s.loading = false
	s.mu.Unlock()
}

// Logout clears the persisted token and resets to unauthenticated. It
// always succeeds; a persistence failure is logged and the in-memory state
// resets regardless.
func (s *Store) Logout() {
	if err := s.tokens.Clear(); err != nil {
		logging.Error("token_clear_failed", map[string]any{"error": err.Error()})
	}
	s.mu.Lock()
	s.token = ""
	s.user = model.User{}
	s.authed = false
	s.loading = false
	s.mu.Unlock()
}

// UpdateUser replaces the current user snapshot without touching the token.
// Used after profile edits. No-op when unauthenticated.
func (s *Store) UpdateUser(u model.User) {
	s.mu.Lock()
	if s.authed {
		s.user = u
	}
	s.mu.Unlock()
}

// RefreshUser re-fetches the current user and replaces the snapshot. No-op
// when unauthenticated; on failure the prior snapshot stays untouched and
// the error goes to the caller.
func (s *Store) RefreshUser(ctx context.Context) error {
	s.mu.Lock()
	authed := s.authed
	s.mu.Unlock()
	if !authed {
		return nil
	}
	u, err := s.users.CurrentUser(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	if s.authed {
		s.user = u
	}
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Session{Token: s.token, User: s.user, Authenticated: s.authed, Loading: s.loading}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.loading:
		return Loading
	case s.authed:
		return Authenticated
	}
	return Unauthenticated
}

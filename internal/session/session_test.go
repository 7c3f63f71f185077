package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"warbler/internal/model"
	"warbler/internal/store/localstate"
)

type fakeFetcher struct {
	calls int32
	user  model.User
	err   error
	gate  chan struct{} // when set, CurrentUser blocks until closed
}

func (f *fakeFetcher) CurrentUser(ctx context.Context) (model.User, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return model.User{}, f.err
	}
	return f.user, nil
}

func newTokens(t *testing.T) *localstate.Tokens {
	t.Helper()
	db, err := localstate.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return localstate.NewTokens(db)
}

func TestRestoreValidToken(t *testing.T) {
	tokens := newTokens(t)
	if err := tokens.Save("tok"); err != nil {
		t.Fatal(err)
	}
	f := &fakeFetcher{user: model.User{ID: "u1", Username: "alice"}}
	s := New(tokens, f)
	if s.State() != Loading {
		t.Fatalf("initial state = %v", s.State())
	}
	if err := s.Restore(context.Background()); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if !snap.Authenticated || snap.Loading || snap.User.Username != "alice" {
		t.Fatalf("snapshot: %+v", snap)
	}
	if s.State() != Authenticated {
		t.Fatalf("state = %v", s.State())
	}
}

func TestRestoreInvalidTokenClearsPersistence(t *testing.T) {
	tokens := newTokens(t)
	_ = tokens.Save("stale")
	f := &fakeFetcher{err: errors.New("401")}
	s := New(tokens, f)
	if err := s.Restore(context.Background()); err == nil {
		t.Fatalf("expected restore error")
	}
	snap := s.Snapshot()
	if snap.Authenticated || snap.Loading || snap.User.ID != "" {
		t.Fatalf("snapshot: %+v", snap)
	}
	if tokens.Token() != "" {
		t.Fatalf("stale token still persisted")
	}
}

func TestRestoreNoToken(t *testing.T) {
	s := New(newTokens(t), &fakeFetcher{})
	if err := s.Restore(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.State() != Unauthenticated {
		t.Fatalf("state = %v", s.State())
	}
}

func TestConcurrentRestoreSingleFlight(t *testing.T) {
	tokens := newTokens(t)
	_ = tokens.Save("tok")
	f := &fakeFetcher{user: model.User{ID: "u1"}, gate: make(chan struct{})}
	s := New(tokens, f)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Restore(context.Background())
		}(i)
	}
	close(f.gate)
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("restore %d: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&f.calls); got != 1 {
		t.Fatalf("expected 1 fetch, got %d", got)
	}
	if s.State() != Authenticated {
		t.Fatalf("state = %v", s.State())
	}
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	tokens := newTokens(t)
	s := New(tokens, &fakeFetcher{})
	_ = s.Restore(context.Background())
	before := s.Snapshot()

	s.Login("tok", model.User{ID: "u1", Username: "alice"})
	if tokens.Token() != "tok" {
		t.Fatalf("token not persisted by login")
	}
	if s.State() != Authenticated {
		t.Fatalf("state after login = %v", s.State())
	}

	s.Logout()
	if tokens.Token() != "" {
		t.Fatalf("token still persisted after logout")
	}
	if s.Snapshot() != before {
		t.Fatalf("logout did not restore pre-login state: %+v vs %+v", s.Snapshot(), before)
	}
}

func TestRefreshUser(t *testing.T) {
	tokens := newTokens(t)
	f := &fakeFetcher{user: model.User{ID: "u1", Bio: "new bio"}}
	s := New(tokens, f)
	_ = s.Restore(context.Background())

	// No-op while unauthenticated: resolves without effect or fetch.
	if err := s.RefreshUser(context.Background()); err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&f.calls) != 0 {
		t.Fatalf("refresh fetched while unauthenticated")
	}

	s.Login("tok", model.User{ID: "u1", Bio: "old bio"})
	if err := s.RefreshUser(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().User.Bio != "new bio" {
		t.Fatalf("snapshot not replaced: %+v", s.Snapshot().User)
	}

	// Failure keeps the prior snapshot.
	f.err = errors.New("boom")
	if err := s.RefreshUser(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if s.Snapshot().User.Bio != "new bio" {
		t.Fatalf("snapshot changed on failed refresh")
	}
}

func TestUpdateUser(t *testing.T) {
	s := New(newTokens(t), &fakeFetcher{})
	s.Login("tok", model.User{ID: "u1", Bio: "a"})
	s.UpdateUser(model.User{ID: "u1", Bio: "b"})
	if s.Snapshot().User.Bio != "b" {
		t.Fatalf("update not applied")
	}
	if s.Snapshot().Token != "tok" {
		t.Fatalf("update touched the token")
	}
}

package localstate

import (
	"context"
	"errors"
)

// Tokens adapts the kv table to the token persistence the session store and
// the API client share. Reads and writes are synchronous, matching the
// contract that persistence happens inside login/logout/restore.
type Tokens struct{ db *DB }

func NewTokens(db *DB) *Tokens { return &Tokens{db: db} }

// Token returns the persisted token, or "" if none is stored.
func (t *Tokens) Token() string {
	v, err := t.db.GetKV(context.Background(), KeyToken)
	if err != nil {
		return ""
	}
	return v
}

func (t *Tokens) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return t.db.PutKV(context.Background(), KeyToken, token)
}

func (t *Tokens) Clear() error {
	return t.db.DeleteKV(context.Background(), KeyToken)
}

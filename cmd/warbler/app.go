package main

import (
	"context"
	"os"

	"warbler/internal/apiclient"
	"warbler/internal/config"
	"warbler/internal/feedcache"
	"warbler/internal/mutate"
	"warbler/internal/notify"
	"warbler/internal/session"
	"warbler/internal/store/localstate"
	"warbler/internal/theme"
)

// app holds one fully wired instance: config, local DB, API client, and the
// stateful stores the commands operate through.
type app struct {
	cfg     config.Config
	db      *localstate.DB
	client  *apiclient.HTTPClient
	session *session.Store
	theme   *theme.Store
	hub     *feedcache.Hub
	home    *feedcache.Cache
	mutator *mutate.Controller
	center  *notify.Center
}

func openApp(cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = config.Default()
		cfg.ResolveEnv()
	}
	db, err := localstate.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	tokens := localstate.NewTokens(db)
	client := apiclient.New(cfg.Server.BaseURL, tokens, cfg.Server.RPS, cfg.Server.Burst)
	hub := feedcache.NewHub()
	home := feedcache.New(feedcache.ViewHome)
	hub.Register(home)
	return &app{
		cfg:     cfg,
		db:      db,
		client:  client,
		session: session.New(tokens, client),
		theme:   theme.Load(db),
		hub:     hub,
		home:    home,
		mutator: mutate.NewController(client, hub, db),
		center:  notify.NewCenter(client, db),
	}, nil
}

func (a *app) Close() { _ = a.db.Close() }

// requireAuth restores the persisted session and fails when none survives.
func (a *app) requireAuth(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		return err
	}
	if !a.session.Snapshot().Authenticated {
		return session.ErrNotAuthenticated
	}
	return nil
}

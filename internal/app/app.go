package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/voyago/voyago/internal/config"
	"github.com/voyago/voyago/internal/prefs"
	"github.com/voyago/voyago/internal/santsg"
	"github.com/voyago/voyago/internal/state"
	"github.com/voyago/voyago/internal/ui"
)

// Options configure the Voyago application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/voyago/prefs.toml
	PollEvery  int    // seconds between health checks; zero uses default
}

// Run boots the Voyago TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := santsg.NewClient(cfg.APIBase)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	StartPoller(ctx, store, client, interval)

	// Both lookup lists load before the UI starts; no partial UI.
	nats, curs, refErr := loadReferenceData(ctx, client)

	uiOpts := ui.Options{
		Context:              ctx,
		Client:               client,
		Store:                store,
		PollTick:             interval,
		Nationalities:        nats,
		Currencies:           curs,
		ReferenceErr:         refErr,
		PreferredNationality: userPrefs.Nationality,
		PreferredCurrency:    userPrefs.Currency,
		ThemeName:            userPrefs.Theme,
		PrefsPath:            opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// loadReferenceData fetches the nationality and currency lookups in
// parallel and joins them. A single failed list degrades to the built-in
// fallback with a logged warning; only both lists failing is treated as
// the API being unreachable.
func loadReferenceData(ctx context.Context, client *santsg.Client) ([]santsg.Nationality, []santsg.Currency, error) {
	var (
		wg     sync.WaitGroup
		nats   []santsg.Nationality
		curs   []santsg.Currency
		natErr error
		curErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		nats, natErr = client.FetchNationalities(ctx)
	}()
	go func() {
		defer wg.Done()
		curs, curErr = client.FetchCurrencies(ctx)
	}()
	wg.Wait()

	if natErr != nil && curErr != nil {
		return nil, nil, fmt.Errorf("load reference data: %w", natErr)
	}
	if natErr != nil {
		log.Printf("nationalities lookup failed, using fallback: %v", natErr)
		nats = nil
	}
	if curErr != nil {
		log.Printf("currencies lookup failed, using fallback: %v", curErr)
		curs = nil
	}
	if len(nats) == 0 {
		nats = santsg.FallbackNationalities()
	}
	if len(curs) == 0 {
		curs = santsg.FallbackCurrencies()
	}
	return nats, curs, nil
}

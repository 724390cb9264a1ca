package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/tallyhq/tally/internal/api"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/store"
)

// newAPIClient builds the gateway from the loaded configuration.
func newAPIClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, common.NewUserError("configuration is invalid, check your config file and flags", err)
	}
	return api.NewClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}), nil
}

// newStore wires the gateway and the terminal notifier into a store.
func newStore() (*store.Store, error) {
	client, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	return store.New(client, cli.NewNotifier(nil)), nil
}

// buildFilter translates the list-style flags into a filter. The
// confirmed/unconfirmed flags are mutually exclusive; leaving both unset
// means no confirmation filter at all, which is a different request than
// either of them.
func buildFilter(confirmed, unconfirmed bool, from, to string) (api.Filter, error) {
	var filter api.Filter

	if confirmed && unconfirmed {
		return filter, fmt.Errorf("--confirmed and --unconfirmed are mutually exclusive")
	}
	switch {
	case confirmed:
		filter = api.ConfirmedOnly()
	case unconfirmed:
		filter = api.UnconfirmedOnly()
	}

	if from != "" {
		date, err := model.ParseDate(from)
		if err != nil {
			return api.Filter{}, fmt.Errorf("invalid --from: %w", err)
		}
		filter.StartDate = &date
	}
	if to != "" {
		date, err := model.ParseDate(to)
		if err != nil {
			return api.Filter{}, fmt.Errorf("invalid --to: %w", err)
		}
		filter.EndDate = &date
	}

	if err := filter.Validate(); err != nil {
		return api.Filter{}, err
	}
	return filter, nil
}

// parseID parses a transaction id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q", arg)
	}
	return id, nil
}

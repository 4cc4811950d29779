package main

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/angeloszaimis/duolog/pkg/logger"
)

// runShowcase walks through the library's output shapes once: plain
// messages at every level, metadata blocks, a fixed-identifier logger,
// and the three error forms.
func runShowcase(opts logger.Options) {
	log := logger.New(opts)

	log.Debug("cache warmed", logger.Metadata{"entries": 128})

	apiOpts := opts
	apiOpts.ID = "API"
	logger.New(apiOpts).Info("User logged in", logger.Metadata{
		"userId":      12345,
		"preferences": map[string]any{"theme": "dark"},
	})

	log.Success("migration applied", logger.Metadata{"version": "2026-08-01"})

	log.Warn("token close to expiry", logger.Metadata{"ttl_seconds": 42})

	log.Error(pkgerrors.New("connection refused"))

	log.Error(fetchProfile(), logger.Metadata{"endpoint": "/v1/profile"})

	log.Error(logger.ErrorValue{
		Name:    "QueryError",
		Message: `relation "users" does not exist`,
		Cause:   "migration 0042 was never applied",
	})
}

// fetchProfile stands in for a failing downstream call.
func fetchProfile() error {
	err := pkgerrors.New("upstream timed out")
	return pkgerrors.Wrap(err, "fetch profile")
}

package impl

import (
	"io"
	"log/slog"

	"bazaar/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Listing: &config.ListingConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
	}
}

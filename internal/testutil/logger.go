// Package testutil holds helpers shared by tests.
package testutil

import "log/slog"

// NopLogger returns a logger whose records are dropped before formatting
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

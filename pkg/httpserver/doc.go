// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeout configuration, and slog logging.
//
// A Server is constructed with New or NewFromConfig plus functional options,
// then started with Run, which blocks until the context is cancelled, an
// interrupt or TERM signal arrives, or the listener fails. Shutdown uses
// http.Server.Shutdown under a configurable deadline. Failures are wrapped
// with the ErrStart and ErrShutdown sentinels for errors.Is inspection.
package httpserver

// Package logger builds configured *slog.Logger instances.
//
// New assembles a logger from functional options (level, format, output,
// static attributes, context extractors); NewFromConfig does the same from an
// env-tagged Config struct. Context extractors run per log call, so
// request-scoped values such as request IDs are injected automatically into
// every record logged with a context-aware method.
package logger

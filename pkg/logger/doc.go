// Package logger builds configured slog.Logger instances with functional
// options and context-aware attribute injection.
//
//	log := logger.New(
//	    logger.WithProduction("worker"),
//	    logger.WithContextExtractors(logger.ContextValue("request_id", ctxKeyRequestID)),
//	)
//	log.InfoContext(ctx, "task finished", logger.Error(err))
//
// Defaults are production-safe: JSON output to stdout at info level.
// WithDevelopment flips to human-readable text at debug level. Context
// extractors run once per log call, so request-scoped values like request
// IDs are captured fresh rather than frozen at logger construction.
//
// The attr helpers (Error, Errors, Group, Component) keep attribute keys
// consistent across packages. Types implementing slog.LogValuer, such as the
// structured errors in pkg/outcome, render as grouped attributes
// automatically.
package logger

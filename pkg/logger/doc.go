// Package logger builds configured log/slog loggers with sane defaults.
//
// The factory applies functional options over production-safe defaults
// (JSON format, info level, stdout):
//
//	log := logger.New(
//		logger.WithDevelopment("flagdeck"),
//		logger.WithAttr(slog.String("version", version)),
//	)
//
// Context extractors inject request-scoped values into every record logged
// with a matching context:
//
//	log := logger.New(logger.WithContextValue("session_id", sessionKey{}))
//
// The package also ships small attribute helpers (Error, Component, FlagID)
// that keep attribute keys consistent across the codebase.
package logger

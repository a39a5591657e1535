// Package logger builds log/slog loggers for validflow binaries.
//
// New applies functional options on top of JSON output at info level on
// stderr. WithContextValue copies a context value, such as the payload being
// validated, onto every record logged with that context.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "validflow"),
//	    logger.WithContextValue("source", sourceKey{}),
//	)
//	log.InfoContext(ctx, "payload checked", logger.Valid(res.Valid))
//
// Attribute helpers (Error, Validator, Valid, Messages, Duration) keep keys
// consistent across packages.
package logger

// Package logger builds *slog.Logger values from functional options and
// injects context-scoped attributes into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it with LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks on each Handle call. Defaults are
// text records at warn level on stderr, so a command line tool can keep
// stdout for its own output.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "anketa"),
//	    logger.WithLevel(cfg.LogLevel),
//	    logger.WithContextExtractors(logger.RunIDExtractor()),
//	)
//	ctx := logger.WithRunID(context.Background(), uuid.NewString())
//	log.InfoContext(ctx, "source read", logger.File(path), logger.Bytes(n))
//
// Attribute helpers (Error, File, Count, Fields, ...) keep key names
// consistent. Error and Errors return an empty Attr for nil errors, which
// slog drops, so they can be passed unconditionally.
package logger

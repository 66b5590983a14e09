// Package logger builds *slog.Logger values from functional options.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// handler with LogHandlerDecorator, which copies values out of the record's
// context.Context on every call:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "strkit"),
//	    logger.WithLevel(level),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.DebugContext(ctx, "sanitized input", logger.Policy("regex"), logger.InputLength(len(s)))
//
// Loggers write to stderr unless WithOutput says otherwise. The attribute
// helpers in attr.go keep key names consistent across commands.
package logger

// Package logger builds *slog.Logger values from functional options and adds
// attributes pulled from context.Context at log time.
//
// New selects a JSON or text handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// on each *Context logging call. WithEnvironment applies per-environment
// defaults (text at debug level in development, JSON at info otherwise).
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "validkit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "record rejected",
//	    logger.Record(rec),
//	    logger.Violations(msgs),
//	)
//
// The attribute helpers in attr.go keep key names consistent. Error, Errors,
// RequestID and Violations return an empty Attr for empty input, which slog
// drops, so callers need no nil checks.
package logger

// Package logger provides a thin factory around Go's slog package with
// functional options for configuration and helper attribute constructors that
// keep attribute naming consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("notification opened",
//	    logger.NotificationID(id),
//	    logger.Tag(tag),
//	)
package logger

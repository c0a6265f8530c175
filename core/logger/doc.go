// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework used by the serve command.
//
// # Context Awareness
//
// The WithRequestID helper extracts the request ID from a Fiber context and attaches it to the
// log entry, so all logs for one HTTP-triggered sync can be correlated. CLI runs attach a
// run_id field instead (see feature/hubsync).
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
package logger

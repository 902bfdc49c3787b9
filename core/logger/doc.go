// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for CLI use (console encoding) and for the
// HTTP server (json encoding), and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so all logs related to a specific request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Bucket created", zap.String("bucket", name))
package logger

// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a sane console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Infof, ErrorKV, etc.).
//
// Operational logging goes to stderr; the alarm's user-facing protocol
// lines are printed to stdout by the service and stay out of the logger.
package logger

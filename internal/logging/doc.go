// Package logging provides concrete implementations of the paramflip.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted lines to an io.Writer (stderr by default,
//     which Lambda forwards to CloudWatch Logs)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging

// Package logging provides concrete implementations of the mflux.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr (never stdout,
//     which is reserved for the report)
//   - NullLogger: Discards all messages (library use and tests)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging

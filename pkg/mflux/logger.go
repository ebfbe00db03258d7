package mflux

// Logger provides a pluggable logging interface for metadata reading.
// Implementations must be safe for concurrent use by multiple goroutines.
// Diagnostics never share a stream with the report itself, which is the
// only thing written to stdout.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}

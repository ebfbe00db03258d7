package mflux

// Exit codes. Existing scripts branch only on zero versus non-zero, so
// every failure maps to 1.
const (
	ExitSuccess = 0 // Report printed
	ExitFailure = 1 // Missing file, no metadata, or any other error
)

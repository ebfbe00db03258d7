package mflux

import "errors"

// Sentinel errors for the two expected failure outcomes.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := cli.Execute()
//	if errors.Is(err, mflux.ErrNoMetadata) {
//	    // The image was readable but carries no generation record.
//	}
var (
	// ErrImageNotFound indicates the input path does not name an existing file.
	ErrImageNotFound = errors.New("image file not found")

	// ErrNoMetadata indicates both metadata groups are absent from the image.
	ErrNoMetadata = errors.New("no metadata found")
)

// ExitCodeForError returns the process exit code for an error.
// The tool's contract knows exactly two codes: ExitSuccess for a printed
// report and ExitFailure for everything else (missing file, no metadata,
// usage errors). Failure classes are distinguished by their message, not
// by their exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

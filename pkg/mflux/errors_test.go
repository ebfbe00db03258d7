package mflux_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tdh-archive/mflux/pkg/mflux"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, mflux.ExitSuccess},
		{"image not found", mflux.ErrImageNotFound, mflux.ExitFailure},
		{"no metadata", mflux.ErrNoMetadata, mflux.ExitFailure},
		{"wrapped sentinel", fmt.Errorf("reading %s: %w", "x.png", mflux.ErrNoMetadata), mflux.ExitFailure},
		{"usage error", errors.New("unknown flag: --foo"), mflux.ExitFailure},
		{"unclassified error", errors.New("something went wrong"), mflux.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mflux.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// The exit codes are a compatibility contract for calling scripts; pin the
// numeric values.
func TestExitCodeValues(t *testing.T) {
	if mflux.ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", mflux.ExitSuccess)
	}
	if mflux.ExitFailure != 1 {
		t.Errorf("ExitFailure = %d, want 1", mflux.ExitFailure)
	}
}

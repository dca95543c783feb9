// Package osascript runs compiled AppleScript through the osascript binary.
package osascript

import (
	"context"
	"fmt"
)

// DefaultBinary is the interpreter used when RealRunner.Binary is empty.
const DefaultBinary = "osascript"

// Runner abstracts AppleScript execution for testability.
type Runner interface {
	Run(ctx context.Context, script string) error
}

// DefaultRunner is the default runner used by the launch pipeline.
// Set to RealRunner{} in runner_real.go (excluded from test builds via build tag).
var DefaultRunner Runner = RealRunner{}

// ExecError is returned when the interpreter exits unsuccessfully. Stderr
// holds its trimmed diagnostic output.
type ExecError struct {
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("error running AppleScript: %s", e.Stderr)
	}
	return fmt.Sprintf("error running AppleScript: %v", e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

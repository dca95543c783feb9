//go:build !unittest

package osascript

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// RealRunner is the production implementation that calls the osascript binary.
type RealRunner struct {
	Binary string // defaults to DefaultBinary
}

// Run passes script to the interpreter as a single -e argument and waits for it.
func (r RealRunner) Run(ctx context.Context, script string) error {
	bin := r.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	cmd := exec.CommandContext(ctx, bin, "-e", script)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &ExecError{Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return nil
}

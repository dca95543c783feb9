//go:build unittest

package osascript

import "context"

// RealRunner is a no-op stub used during unit testing (build tag: unittest).
// The real implementation is in runner_real.go.
type RealRunner struct {
	Binary string
}

func (RealRunner) Run(ctx context.Context, script string) error { return nil }

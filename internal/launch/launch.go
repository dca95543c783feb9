// Package launch wires a loaded layout through compilation and execution.
package launch

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	"github.com/zulandar/dskup/internal/applescript"
	"github.com/zulandar/dskup/internal/config"
	"github.com/zulandar/dskup/internal/osascript"
)

// Opts configures a single launch.
type Opts struct {
	Config *config.Config
	Home   string           // expands ~ in working directories; empty leaves ~ as is
	Debug  bool             // print the compiled script to Out before running it
	DryRun bool             // compile only, never run the interpreter
	Out    io.Writer        // debug output; defaults to io.Discard
	Runner osascript.Runner // defaults to osascript.DefaultRunner if nil
}

// Result holds the outcome of a launch.
type Result struct {
	Script   *applescript.Script
	Executed bool
}

// Launch compiles opts.Config and hands the script to the runner.
func Launch(ctx context.Context, opts Opts) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("launch: config is required")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Runner == nil {
		opts.Runner = osascript.DefaultRunner
	}

	script, err := applescript.Compile(opts.Config, applescript.Options{Home: opts.Home})
	if err != nil {
		return nil, fmt.Errorf("launch: %w", err)
	}
	log.WithFields(log.Fields{
		"tabs":   script.Tabs,
		"panes":  script.Panes,
		"splits": script.Splits,
	}).Debug("compiled layout")

	result := &Result{Script: script}

	if opts.Debug {
		if err := writeDebug(opts.Out, script); err != nil {
			return nil, fmt.Errorf("launch: write debug output: %w", err)
		}
	}
	if opts.DryRun {
		return result, nil
	}

	if err := opts.Runner.Run(ctx, script.String()); err != nil {
		return nil, err
	}
	result.Executed = true
	log.Debug("layout script finished")
	return result, nil
}

// writeDebug prints the script between banner lines. The banner is only
// styled when w is a terminal.
func writeDebug(w io.Writer, script *applescript.Script) error {
	banner := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		banner.Render("--- Generated AppleScript ---"),
		script,
		banner.Render("--- End ---"))
	return err
}

// Package applescript compiles a dskup layout into an iTerm2 AppleScript
// program. Compilation is pure: the same Config and Options always produce
// the same script.
package applescript

import (
	"fmt"
	"strings"

	"github.com/zulandar/dskup/internal/config"
)

// Options holds the inputs to Compile that do not come from the layout.
type Options struct {
	// Home replaces a leading ~ in working directories. When empty, ~ is
	// written to the script unexpanded and left to the shell.
	Home string
}

// Script is a compiled AppleScript program.
type Script struct {
	lines []string

	Tabs   int // tabs emitted (tabs without panes are not counted)
	Panes  int // sessions captured or created
	Splits int // split statements emitted
}

// Lines returns the script's statements in order.
func (s *Script) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// String returns the script body as handed to osascript.
func (s *Script) String() string {
	return strings.Join(s.lines, "\n")
}

func (s *Script) add(format string, args ...any) {
	if len(args) == 0 {
		s.lines = append(s.lines, format)
		return
	}
	s.lines = append(s.lines, fmt.Sprintf(format, args...))
}

// Compile builds the AppleScript that opens one iTerm2 window laid out as cfg
// describes. It returns a *SplitSourceError if a pane splits from a pane that
// does not exist yet.
func Compile(cfg *config.Config, opts Options) (*Script, error) {
	if cfg == nil {
		return nil, fmt.Errorf("applescript: config is required")
	}

	s := &Script{}
	s.add(`tell application "iTerm2"`)
	s.add("    activate")
	s.add("    ")
	s.add("    -- Create a new window")
	s.add("    create window with default profile")
	s.add("    ")
	s.add("    tell current window")

	sessions := newSessionTable()
	for ti, tab := range cfg.Tabs {
		if len(tab.Panes) == 0 {
			continue
		}

		s.add("        ")
		if s.Tabs == 0 {
			s.add("        -- First tab (already created with window)")
		} else {
			s.add("        -- Create tab: %s", commentSafe(tab.Name))
			s.add("        create tab with default profile")
		}
		s.Tabs++

		first := sessions.add(ti)
		s.add("        set %s to (current session)", first)
		s.Panes++

		for pi := 1; pi < len(tab.Panes); pi++ {
			pane := tab.Panes[pi]
			from := pane.SplitFrom
			if from == 0 {
				from = 1
			}
			src, ok := sessions.lookup(ti, from)
			if !ok {
				return nil, &SplitSourceError{Tab: ti, TabName: tab.Name, Pane: pi + 1, SplitFrom: from}
			}
			dir := splitDirection(pane.Split)
			dst := sessions.add(ti)

			s.add("        ")
			s.add("        -- Split pane %d %sly to create pane %d", src.Pane, dir, dst.Pane)
			s.add("        tell %s", src)
			s.add("            set %s to (split %sly with default profile)", dst, dir)
			s.add("        end tell")
			s.Panes++
			s.Splits++
		}

		s.add("        ")
		s.add("        -- Send commands to each pane")
		for pi, ref := range sessions.panes(ti) {
			s.add("        tell %s", ref)
			if pi == 0 && tab.Name != "" {
				s.add(`            write text "printf \"\\e]1;%s\\a\""`, Escape(tab.Name))
			}
			for _, cmd := range PaneCommands(cfg, tab, tab.Panes[pi], opts.Home) {
				s.add(`            write text "%s"`, Escape(cmd))
			}
			s.add("        end tell")
		}
	}

	if s.Tabs > 1 {
		s.add("        ")
		s.add("        select first tab")
	}

	s.add("    end tell")
	s.add("end tell")
	return s, nil
}

// splitDirection maps a pane's split setting onto the direction iTerm2 is
// asked for. Anything other than "horizontal" splits vertically.
func splitDirection(split string) string {
	if split == config.SplitHorizontal {
		return config.SplitHorizontal
	}
	return config.SplitVertical
}

// commentSafe keeps a tab name on one line of an AppleScript comment.
func commentSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

package applescript

import (
	"strings"

	"github.com/zulandar/dskup/internal/config"
)

// Escape quotes s for use inside an AppleScript double-quoted string.
// Backslashes are doubled before quotes are escaped.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// WorkingDir resolves the directory a pane starts in: the pane's dir, else
// the tab's, else the layout root, else ~. A leading ~ is expanded with home.
func WorkingDir(cfg *config.Config, tab config.TabConfig, pane config.PaneConfig, home string) string {
	dir := pane.Dir
	if dir == "" {
		dir = tab.Dir
	}
	if dir == "" {
		dir = cfg.Root
	}
	if dir == "" {
		dir = "~"
	}
	return config.ExpandHome(dir, home)
}

// PaneCommands returns the shell lines typed into a pane: a cd into its
// working directory followed by its configured commands.
func PaneCommands(cfg *config.Config, tab config.TabConfig, pane config.PaneConfig, home string) []string {
	cmds := make([]string, 0, len(pane.Commands)+1)
	cmds = append(cmds, "cd "+WorkingDir(cfg, tab, pane, home))
	return append(cmds, pane.Commands...)
}

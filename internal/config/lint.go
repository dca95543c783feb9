package config

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a misspelled split may be from a known
// direction before no suggestion is offered.
const maxSuggestDistance = 4

func paneLabel(ti, pi int, tab TabConfig) string {
	name := strings.TrimSpace(tab.Name)
	if name != "" {
		return fmt.Sprintf("tabs[%d] (%s) pane %d", ti, name, pi+1)
	}
	return fmt.Sprintf("tabs[%d] pane %d", ti, pi+1)
}

// Lint inspects a layout and returns warnings and errors describing
// potential issues. Warnings describe input that compiles but is probably
// not what the author meant; errors describe layouts that cannot compile.
func Lint(c *Config) (warnings []string, errors []string) {
	for ti, tab := range c.Tabs {
		if len(tab.Panes) == 0 {
			label := fmt.Sprintf("tabs[%d]", ti)
			if strings.TrimSpace(tab.Name) != "" {
				label += " (" + tab.Name + ")"
			}
			warnings = append(warnings, label+" has no panes and will be skipped")
			continue
		}
		for pi, pane := range tab.Panes {
			label := paneLabel(ti, pi, tab)
			if pi == 0 {
				if pane.Split != "" {
					warnings = append(warnings, fmt.Sprintf("%s sets split %q, which is ignored on the first pane", label, pane.Split))
				}
				continue
			}
			if pane.Split != "" && pane.Split != SplitVertical && pane.Split != SplitHorizontal {
				msg := fmt.Sprintf("%s has unknown split %q; using %s", label, pane.Split, SplitVertical)
				if s := suggestSplit(pane.Split); s != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", s)
				}
				warnings = append(warnings, msg)
			}
			from := pane.SplitFrom
			if from == 0 {
				from = 1
			}
			if from < 0 || from > pi {
				errors = append(errors, fmt.Sprintf("%s splits from pane %d, which is not created before pane %d", label, from, pi+1))
			}
		}
	}
	return warnings, errors
}

// suggestSplit returns the known split direction closest to s, or "" when
// none is close enough.
func suggestSplit(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	best, bestDist := "", maxSuggestDistance+1
	for _, known := range []string{SplitVertical, SplitHorizontal} {
		if d := levenshtein.ComputeDistance(s, known); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best
}

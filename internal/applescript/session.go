package applescript

import "fmt"

// SessionRef names an iTerm2 session captured in a script variable.
// Tab is the tab's position in the layout (0-based), Pane the pane's
// position within the tab (1-based).
type SessionRef struct {
	Tab  int
	Pane int
}

// String returns the AppleScript variable holding the session.
func (r SessionRef) String() string {
	return fmt.Sprintf("t%d_p%d", r.Tab, r.Pane)
}

// SplitSourceError reports a pane whose split_from does not name a pane
// created earlier in the same tab.
type SplitSourceError struct {
	Tab       int
	TabName   string
	Pane      int
	SplitFrom int
}

func (e *SplitSourceError) Error() string {
	tab := fmt.Sprintf("tab %d", e.Tab)
	if e.TabName != "" {
		tab = fmt.Sprintf("tab %d (%s)", e.Tab, e.TabName)
	}
	return fmt.Sprintf("applescript: %s pane %d: split_from %d does not name a pane created before it", tab, e.Pane, e.SplitFrom)
}

// sessionTable records, per tab, the sessions created so far in creation
// order. Index 0 of a tab's slice is pane 1.
type sessionTable struct {
	tabs map[int][]SessionRef
}

func newSessionTable() *sessionTable {
	return &sessionTable{tabs: make(map[int][]SessionRef)}
}

// add records the next pane of tab and returns its reference.
func (t *sessionTable) add(tab int) SessionRef {
	ref := SessionRef{Tab: tab, Pane: len(t.tabs[tab]) + 1}
	t.tabs[tab] = append(t.tabs[tab], ref)
	return ref
}

// lookup returns the session for pane (1-based) of tab if it has been created.
func (t *sessionTable) lookup(tab, pane int) (SessionRef, bool) {
	refs := t.tabs[tab]
	if pane < 1 || pane > len(refs) {
		return SessionRef{}, false
	}
	return refs[pane-1], true
}

// panes returns the sessions created for tab, in pane order.
func (t *sessionTable) panes(tab int) []SessionRef {
	return t.tabs[tab]
}

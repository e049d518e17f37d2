package inquiry

// historyNavigator walks a list of earlier entries with Up and Down, the
// way a shell recalls previous commands.
//
// Entries are supplied by the caller and kept in memory only; nothing is
// read from or written to disk. The text being typed when navigation starts
// is kept as a draft and restored when the user walks past the newest entry.
type historyNavigator struct {
	entries []string
	index   int // len(entries) means "not navigating"
	draft   string
}

func newHistoryNavigator(entries []string) *historyNavigator {
	h := &historyNavigator{}
	h.setEntries(entries)
	return h
}

// setEntries replaces the history, dropping empty entries and consecutive
// duplicates.
func (h *historyNavigator) setEntries(entries []string) {
	h.entries = make([]string, 0, len(entries))
	for _, e := range entries {
		if e == "" {
			continue
		}
		if n := len(h.entries); n > 0 && h.entries[n-1] == e {
			continue
		}
		h.entries = append(h.entries, e)
	}
	h.reset()
}

// reset ends navigation, e.g. after the user edits the recalled text.
func (h *historyNavigator) reset() {
	h.index = len(h.entries)
	h.draft = ""
}

// navigating reports whether an entry is currently recalled.
func (h *historyNavigator) navigating() bool {
	return h.index < len(h.entries)
}

// prev returns the entry before the current one. current is the text in
// the editor, saved as the draft when navigation starts.
func (h *historyNavigator) prev(current string) (string, bool) {
	if h.index == 0 || len(h.entries) == 0 {
		return "", false
	}
	if h.index == len(h.entries) {
		h.draft = current
	}
	h.index--
	return h.entries[h.index], true
}

// next returns the entry after the current one, or the draft when moving
// past the newest entry.
func (h *historyNavigator) next() (string, bool) {
	if h.index >= len(h.entries) {
		return "", false
	}
	h.index++
	if h.index == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.index], true
}

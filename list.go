package inquiry

// ListOption is an option of a list prompt together with its position in
// the original list.
type ListOption struct {
	Index int
	Value string
}

// listView is the navigation state shared by Select and MultiSelect: a
// filter, the options that match it, and a cursor over those.
//
// Up and Down wrap around at the ends of the visible list; PageUp, PageDown,
// Home and End clamp. Navigation never touches anything but the cursor.
type listView struct {
	options  []string
	filter   *lineBuffer
	visible  []int // indices into options matching the filter, in list order
	cursor   int   // index into visible
	offset   int   // first visible option shown
	pageSize int
}

func newListView(options []string, pageSize, start int) *listView {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	v := &listView{
		options:  options,
		filter:   newLineBuffer(""),
		pageSize: pageSize,
	}
	v.refilter()
	v.moveTo(start)
	return v
}

// refilter recomputes the visible options, keeping the cursor on the same
// option when it still matches.
func (v *listView) refilter() {
	current, hadCurrent := v.current()
	v.visible = filterOptions(v.options, v.filter.String())
	v.cursor = 0
	v.offset = 0
	if hadCurrent {
		for i, idx := range v.visible {
			if idx == current {
				v.moveTo(i)
				break
			}
		}
	}
}

// current returns the index in options of the option under the cursor.
func (v *listView) current() (int, bool) {
	if v.cursor < 0 || v.cursor >= len(v.visible) {
		return 0, false
	}
	return v.visible[v.cursor], true
}

func (v *listView) moveTo(i int) {
	if len(v.visible) == 0 {
		v.cursor = 0
		v.offset = 0
		return
	}
	v.cursor = min(max(i, 0), len(v.visible)-1)
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+v.pageSize {
		v.offset = v.cursor - v.pageSize + 1
	}
}

// navigate applies a navigation key and reports whether k was one.
func (v *listView) navigate(k Key) bool {
	n := len(v.visible)
	switch k.Code {
	case KeyUp, KeyBackTab:
		if n > 0 {
			v.moveTo((v.cursor - 1 + n) % n)
		}
	case KeyDown, KeyTab:
		if n > 0 {
			v.moveTo((v.cursor + 1) % n)
		}
	case KeyPageUp:
		v.moveTo(v.cursor - v.pageSize)
	case KeyPageDown:
		v.moveTo(v.cursor + v.pageSize)
	case KeyHome:
		v.moveTo(0)
	case KeyEnd:
		v.moveTo(n - 1)
	default:
		return false
	}
	return true
}

// editFilter applies a filter editing key and reports whether k was one.
func (v *listView) editFilter(k Key) bool {
	before := v.filter.String()
	switch {
	case k.Code == KeyBackspace:
		v.filter.backspace()
	case k.Code == KeyChar && k.Modifiers == ModNone:
		v.filter.insert(k.Rune)
	case k.Code == KeyChar && k.Modifiers == ModCtrl && k.Rune == 'u':
		v.filter.clear()
	default:
		return false
	}
	if v.filter.String() != before {
		v.refilter()
	}
	return true
}

func (v *listView) clearFilter() {
	if v.filter.isEmpty() {
		return
	}
	v.filter.clear()
	v.refilter()
}

// window returns the positions in visible that are currently shown.
func (v *listView) window() (start, end int) {
	return v.offset, min(v.offset+v.pageSize, len(v.visible))
}

// renderPrompt paints the question line with the filter as its content.
func (v *listView) renderPrompt(r *Renderer, message string) error {
	return r.PrintPromptWithCursor(message, "", v.filter.String(), v.filter.cursorWidth())
}

const noMatchingOptions = "No matching options"

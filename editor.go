package inquiry

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// lineBuffer is a single line of editable text with a cursor.
//
// Positions and lengths are counted in grapheme clusters, so a flag emoji or
// a letter with a combining accent moves and deletes as one unit. The text
// itself is only ever produced by joining whole clusters and inserting whole
// runes, so it never holds a partially decoded sequence.
type lineBuffer struct {
	text   string
	cursor int // in grapheme clusters, 0 <= cursor <= len
}

func newLineBuffer(text string) *lineBuffer {
	b := &lineBuffer{}
	b.set(text)
	return b
}

// graphemes splits s into grapheme clusters.
func graphemes(s string) []string {
	clusters := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

func (b *lineBuffer) String() string {
	return b.text
}

func (b *lineBuffer) len() int {
	return uniseg.GraphemeClusterCount(b.text)
}

func (b *lineBuffer) isEmpty() bool {
	return b.text == ""
}

// set replaces the content and moves the cursor to the end.
func (b *lineBuffer) set(text string) {
	b.text = text
	b.cursor = b.len()
}

func (b *lineBuffer) clear() {
	b.text = ""
	b.cursor = 0
}

// split returns the text before and after the cursor.
func (b *lineBuffer) split() (before, after string) {
	gs := graphemes(b.text)
	if b.cursor > len(gs) {
		b.cursor = len(gs)
	}
	return strings.Join(gs[:b.cursor], ""), strings.Join(gs[b.cursor:], "")
}

// insert adds r at the cursor. A rune that combines with the cluster before
// it (a combining mark, a zero width joiner, a skin tone modifier) extends
// that cluster instead of forming a new one.
func (b *lineBuffer) insert(r rune) {
	before, after := b.split()
	before += string(r)
	b.text = before + after
	b.cursor = uniseg.GraphemeClusterCount(before)
	if n := b.len(); b.cursor > n {
		b.cursor = n
	}
}

// backspace removes the cluster before the cursor; a no-op at the start.
func (b *lineBuffer) backspace() {
	if b.cursor == 0 {
		return
	}
	gs := graphemes(b.text)
	if b.cursor > len(gs) {
		b.cursor = len(gs)
	}
	b.text = strings.Join(gs[:b.cursor-1], "") + strings.Join(gs[b.cursor:], "")
	b.cursor--
}

// deleteForward removes the cluster under the cursor; a no-op at the end.
func (b *lineBuffer) deleteForward() {
	gs := graphemes(b.text)
	if b.cursor >= len(gs) {
		return
	}
	b.text = strings.Join(gs[:b.cursor], "") + strings.Join(gs[b.cursor+1:], "")
}

// deleteWordBack removes the word before the cursor together with the
// whitespace that follows it.
func (b *lineBuffer) deleteWordBack() {
	gs := graphemes(b.text)
	if b.cursor > len(gs) {
		b.cursor = len(gs)
	}
	start := b.wordStart(gs)
	b.text = strings.Join(gs[:start], "") + strings.Join(gs[b.cursor:], "")
	b.cursor = start
}

func (b *lineBuffer) wordStart(gs []string) int {
	pos := b.cursor
	for pos > 0 && isSpace(gs[pos-1]) {
		pos--
	}
	for pos > 0 && !isSpace(gs[pos-1]) {
		pos--
	}
	return pos
}

func (b *lineBuffer) moveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *lineBuffer) moveRight() {
	if b.cursor < b.len() {
		b.cursor++
	}
}

func (b *lineBuffer) moveWordLeft() {
	b.cursor = b.wordStart(graphemes(b.text))
}

func (b *lineBuffer) moveWordRight() {
	gs := graphemes(b.text)
	pos := b.cursor
	for pos < len(gs) && isSpace(gs[pos]) {
		pos++
	}
	for pos < len(gs) && !isSpace(gs[pos]) {
		pos++
	}
	b.cursor = pos
}

func (b *lineBuffer) moveHome() {
	b.cursor = 0
}

func (b *lineBuffer) moveEnd() {
	b.cursor = b.len()
}

// cursorWidth returns the display width of the text before the cursor.
func (b *lineBuffer) cursorWidth() int {
	before, _ := b.split()
	return runewidth.StringWidth(before)
}

func isSpace(cluster string) bool {
	return cluster == " " || cluster == "\t"
}

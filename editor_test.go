package inquiry

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func typeInto(b *lineBuffer, s string) {
	for _, r := range s {
		b.insert(r)
	}
}

func TestLineBufferInsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantLen    int
		wantCursor int
	}{
		{name: "ascii", input: "hello", wantLen: 5, wantCursor: 5},
		{name: "precomposed accent", input: "caf\u00e9", wantLen: 4, wantCursor: 4},
		{name: "combining accent", input: "cafe\u0301", wantLen: 4, wantCursor: 4},
		{name: "flag", input: "🇯🇵", wantLen: 1, wantCursor: 1},
		{name: "skin tone", input: "👍🏽", wantLen: 1, wantCursor: 1},
		{name: "zwj family", input: "\U0001F468\u200d\U0001F469\u200d\U0001F467", wantLen: 1, wantCursor: 1},
		{name: "wide characters", input: "日本語", wantLen: 3, wantCursor: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newLineBuffer("")
			typeInto(b, tt.input)
			assert.Equal(t, tt.input, b.String())
			assert.Equal(t, tt.wantLen, b.len())
			assert.Equal(t, tt.wantCursor, b.cursor)
		})
	}
}

func TestLineBufferBackspace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial string
		times   int
		want    string
	}{
		{name: "one ascii", initial: "abc", times: 1, want: "ab"},
		{name: "saturates", initial: "ab", times: 5, want: ""},
		{name: "whole flag", initial: "a🇯🇵", times: 1, want: "a"},
		{name: "whole combined letter", initial: "cafe\u0301", times: 1, want: "caf"},
		{name: "whole zwj sequence", initial: "x\U0001F468\u200d\U0001F469\u200d\U0001F467", times: 1, want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newLineBuffer(tt.initial)
			for range tt.times {
				b.backspace()
			}
			assert.Equal(t, tt.want, b.String())
			assert.Equal(t, b.len(), b.cursor)
		})
	}
}

func TestLineBufferCursor(t *testing.T) {
	t.Parallel()

	b := newLineBuffer("ac")
	b.moveLeft()
	b.insert('b')
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 2, b.cursor)

	b.moveHome()
	b.moveLeft()
	assert.Equal(t, 0, b.cursor, "left stops at the start")
	b.backspace()
	assert.Equal(t, "abc", b.String(), "backspace at the start is a no-op")
	b.deleteForward()
	assert.Equal(t, "bc", b.String())

	b.moveEnd()
	b.moveRight()
	assert.Equal(t, 2, b.cursor, "right stops at the end")
	b.deleteForward()
	assert.Equal(t, "bc", b.String(), "delete at the end is a no-op")

	b.clear()
	assert.True(t, b.isEmpty())
	assert.Equal(t, 0, b.cursor)
}

func TestLineBufferWords(t *testing.T) {
	t.Parallel()

	b := newLineBuffer("foo bar baz")
	b.moveWordLeft()
	assert.Equal(t, 8, b.cursor)
	b.moveWordLeft()
	assert.Equal(t, 4, b.cursor)
	b.moveWordRight()
	assert.Equal(t, 7, b.cursor)
	b.moveWordRight()
	assert.Equal(t, 11, b.cursor)

	b.deleteWordBack()
	assert.Equal(t, "foo bar ", b.String())
	b.deleteWordBack()
	assert.Equal(t, "foo ", b.String())

	b = newLineBuffer("foo bar")
	b.moveWordLeft()
	b.deleteWordBack()
	assert.Equal(t, "bar", b.String())
	assert.Equal(t, 0, b.cursor)
}

func TestLineBufferCursorWidth(t *testing.T) {
	t.Parallel()

	b := newLineBuffer("日本")
	assert.Equal(t, 4, b.cursorWidth())
	b.moveLeft()
	assert.Equal(t, 2, b.cursorWidth())

	b = newLineBuffer("ab")
	b.moveHome()
	assert.Equal(t, 0, b.cursorWidth())
}

// Any sequence of edits leaves whole clusters and a cursor within bounds.
func TestLineBufferEditSequence(t *testing.T) {
	t.Parallel()

	runeSeq := []rune("a\U0001F1EF\U0001F1F5e\u0301 \U0001F44D\U0001F3FD\u200d\u65e5x")
	b := newLineBuffer("")
	for i, r := range runeSeq {
		b.insert(r)
		switch i % 4 {
		case 1:
			b.moveLeft()
		case 2:
			b.moveRight()
		case 3:
			if i%8 == 3 {
				b.backspace()
			} else {
				b.deleteForward()
			}
		}
		assert.True(t, utf8.ValidString(b.String()))
		assert.GreaterOrEqual(t, b.cursor, 0)
		assert.LessOrEqual(t, b.cursor, b.len())
	}

	for range len(runeSeq) {
		b.moveEnd()
		b.backspace()
	}
	assert.True(t, b.isEmpty())
	assert.Equal(t, 0, b.cursor)
}

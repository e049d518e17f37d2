package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryNavigatorEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []string
		want    []string
	}{
		{name: "nil", entries: nil, want: []string{}},
		{name: "kept in order", entries: []string{"a", "b", "c"}, want: []string{"a", "b", "c"}},
		{name: "empty entries dropped", entries: []string{"", "a", ""}, want: []string{"a"}},
		{name: "consecutive duplicates dropped", entries: []string{"a", "a", "b", "a"}, want: []string{"a", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHistoryNavigator(tt.entries)
			assert.Equal(t, tt.want, h.entries)
			assert.False(t, h.navigating())
		})
	}
}

func TestHistoryNavigatorWalk(t *testing.T) {
	t.Parallel()

	h := newHistoryNavigator([]string{"first", "second", "third"})

	_, ok := h.next()
	assert.False(t, ok, "next without navigating does nothing")

	entry, ok := h.prev("draft")
	assert.True(t, ok)
	assert.Equal(t, "third", entry)

	entry, _ = h.prev("third")
	assert.Equal(t, "second", entry)
	entry, _ = h.prev("second")
	assert.Equal(t, "first", entry)

	_, ok = h.prev("first")
	assert.False(t, ok, "prev stops at the oldest entry")

	entry, _ = h.next()
	assert.Equal(t, "second", entry)
	entry, _ = h.next()
	assert.Equal(t, "third", entry)
	entry, ok = h.next()
	assert.True(t, ok)
	assert.Equal(t, "draft", entry, "walking past the newest entry restores the draft")

	_, ok = h.next()
	assert.False(t, ok)
}

func TestHistoryNavigatorReset(t *testing.T) {
	t.Parallel()

	h := newHistoryNavigator([]string{"first", "second"})
	_, _ = h.prev("old draft")
	h.reset()

	entry, _ := h.prev("new draft")
	assert.Equal(t, "second", entry, "reset starts again from the newest entry")
	entry, _ = h.next()
	assert.Equal(t, "new draft", entry)

	empty := newHistoryNavigator(nil)
	_, ok := empty.prev("x")
	assert.False(t, ok)
}

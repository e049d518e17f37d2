package inquiry

import (
	"fmt"
	"strings"
)

// KeyCode identifies a logical input event.
type KeyCode int

// Key codes produced by the decoder. Prompts only ever see these, never raw
// bytes, so the editing logic does not depend on a keyboard backend.
const (
	KeyNone KeyCode = iota // unrecognized input; ignored by every prompt
	KeyChar                // character input, see Key.Rune
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyBackTab
	KeySubmit
	KeyCancel
)

// KeyModifiers is a bit set of modifier keys held during a key press.
type KeyModifiers uint8

// Modifier bits.
const (
	ModNone  KeyModifiers = 0
	ModCtrl  KeyModifiers = 1 << 0
	ModAlt   KeyModifiers = 1 << 1
	ModShift KeyModifiers = 1 << 2
)

// Key is a decoded keyboard event.
type Key struct {
	Code      KeyCode
	Rune      rune // set for KeyChar
	Modifiers KeyModifiers
}

// Char returns a character key with the given modifiers.
func Char(r rune, mods KeyModifiers) Key {
	return Key{Code: KeyChar, Rune: r, Modifiers: mods}
}

var keyCodeNames = map[KeyCode]string{
	KeyNone:      "None",
	KeyChar:      "Char",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeySubmit:    "Submit",
	KeyCancel:    "Cancel",
}

// String returns a human-readable form such as "Ctrl+u" or "Up".
func (k Key) String() string {
	var b strings.Builder
	if k.Modifiers&ModCtrl != 0 {
		b.WriteString("Ctrl+")
	}
	if k.Modifiers&ModAlt != 0 {
		b.WriteString("Alt+")
	}
	if k.Modifiers&ModShift != 0 {
		b.WriteString("Shift+")
	}
	if k.Code == KeyChar {
		b.WriteRune(k.Rune)
		return b.String()
	}
	if name, ok := keyCodeNames[k.Code]; ok {
		b.WriteString(name)
		return b.String()
	}
	return fmt.Sprintf("KeyCode(%d)", int(k.Code))
}

// KeyMap holds the key binding configuration
type KeyMap struct {
	bindings  map[rune]Key
	sequences map[string]Key
}

// NewDefaultKeyMap creates the default key bindings.
//
// Default key bindings:
//   - Enter/Return: Submit
//   - Ctrl+C, Esc: Cancel
//   - Backspace: Delete character backwards
//   - Delete: Delete character forwards
//   - Tab / Shift+Tab: Tab / BackTab
//   - Arrow keys, Home/End, PageUp/PageDown in both CSI and SS3 forms
//   - Ctrl+Left/Right: Left/Right with the Ctrl modifier
//
// Control bytes without a binding decode to Char with ModCtrl, e.g. Ctrl+U
// becomes Char('u', ModCtrl).
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]Key),
		sequences: make(map[string]Key),
	}

	km.bindings['\r'] = Key{Code: KeySubmit}
	km.bindings['\n'] = Key{Code: KeySubmit}
	km.bindings['\x03'] = Key{Code: KeyCancel} // Ctrl+C
	km.bindings['\x1b'] = Key{Code: KeyCancel} // lone Esc
	km.bindings['\x7f'] = Key{Code: KeyBackspace}
	km.bindings['\b'] = Key{Code: KeyBackspace}
	km.bindings['\t'] = Key{Code: KeyTab}

	// CSI
	km.sequences["[A"] = Key{Code: KeyUp}
	km.sequences["[B"] = Key{Code: KeyDown}
	km.sequences["[C"] = Key{Code: KeyRight}
	km.sequences["[D"] = Key{Code: KeyLeft}
	km.sequences["[H"] = Key{Code: KeyHome}
	km.sequences["[F"] = Key{Code: KeyEnd}
	km.sequences["[1~"] = Key{Code: KeyHome}
	km.sequences["[4~"] = Key{Code: KeyEnd}
	km.sequences["[7~"] = Key{Code: KeyHome}
	km.sequences["[8~"] = Key{Code: KeyEnd}
	km.sequences["[3~"] = Key{Code: KeyDelete}
	km.sequences["[5~"] = Key{Code: KeyPageUp}
	km.sequences["[6~"] = Key{Code: KeyPageDown}
	km.sequences["[Z"] = Key{Code: KeyBackTab, Modifiers: ModShift}
	km.sequences["[1;5C"] = Key{Code: KeyRight, Modifiers: ModCtrl}
	km.sequences["[1;5D"] = Key{Code: KeyLeft, Modifiers: ModCtrl}

	// SS3, sent by some terminals in application mode
	km.sequences["OA"] = Key{Code: KeyUp}
	km.sequences["OB"] = Key{Code: KeyDown}
	km.sequences["OC"] = Key{Code: KeyRight}
	km.sequences["OD"] = Key{Code: KeyLeft}
	km.sequences["OH"] = Key{Code: KeyHome}
	km.sequences["OF"] = Key{Code: KeyEnd}

	return km
}

// Bind adds or updates a key binding for a single character.
//
// Example:
//
//	keyMap := inquiry.NewDefaultKeyMap()
//	// Treat Ctrl+D as cancel as well
//	keyMap.Bind('\x04', inquiry.Key{Code: inquiry.KeyCancel})
func (km *KeyMap) Bind(r rune, key Key) {
	km.bindings[r] = key
}

// BindSequence adds or updates an escape sequence binding.
// The sequence should not include the initial ESC character.
//
// Example:
//
//	keyMap := inquiry.NewDefaultKeyMap()
//	// F1 (ESC O P) submits
//	keyMap.BindSequence("OP", inquiry.Key{Code: inquiry.KeySubmit})
func (km *KeyMap) BindSequence(seq string, key Key) {
	km.sequences[seq] = key
}

// Lookup returns the key bound to r.
func (km *KeyMap) Lookup(r rune) (Key, bool) {
	if km == nil || km.bindings == nil {
		return Key{}, false
	}
	k, ok := km.bindings[r]
	return k, ok
}

// LookupSequence returns the key bound to an escape sequence.
func (km *KeyMap) LookupSequence(seq string) (Key, bool) {
	if km == nil || km.sequences == nil {
		return Key{}, false
	}
	k, ok := km.sequences[seq]
	return k, ok
}

// maxSequenceLen bounds how many runes an escape sequence may span.
const maxSequenceLen = 16

// decodeKey reads one logical key from t.
//
// A lone ESC is told apart from the start of an escape sequence by whether
// more input is already buffered: terminals deliver a whole sequence in a
// single write, while a human pressing Esc does not.
func (km *KeyMap) decodeKey(t Terminal) (Key, error) {
	r, _, err := t.ReadRune()
	if err != nil {
		return Key{}, err
	}

	if r == '\x1b' && t.Buffered() {
		return km.decodeEscape(t)
	}
	if k, ok := km.Lookup(r); ok {
		return k, nil
	}
	return decodeRune(r), nil
}

// decodeEscape decodes what follows an ESC that is known to be followed by
// more input.
func (km *KeyMap) decodeEscape(t Terminal) (Key, error) {
	r, _, err := t.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case '[':
		seq := []rune{r}
		for range maxSequenceLen {
			c, _, err := t.ReadRune()
			if err != nil {
				return Key{}, err
			}
			seq = append(seq, c)
			// CSI final byte
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
		if k, ok := km.LookupSequence(string(seq)); ok {
			return k, nil
		}
		return Key{Code: KeyNone}, nil
	case 'O':
		c, _, err := t.ReadRune()
		if err != nil {
			return Key{}, err
		}
		if k, ok := km.LookupSequence(string([]rune{r, c})); ok {
			return k, nil
		}
		return Key{Code: KeyNone}, nil
	}

	k := decodeRune(r)
	if k.Code == KeyChar {
		k.Modifiers |= ModAlt
	}
	return k, nil
}

// decodeRune maps an unbound rune to a key.
func decodeRune(r rune) Key {
	switch {
	case r >= 0x01 && r <= 0x1a:
		return Char('a'+r-1, ModCtrl)
	case r < 0x20, r == 0x7f, r >= 0x80 && r < 0xa0:
		return Key{Code: KeyNone}
	}
	return Char(r, ModNone)
}

package input

import (
	"strings"
	"unicode/utf8"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Key is the high-level key the game reacts to. Everything unbound maps to KeyOther.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPlay
	KeyQuit
	KeyOther
)

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-independent identifier (e.g. "arrow_up", "p", "escape").
type RawInput struct {
	Device Device
	Code   string
}

// defaultBindings maps raw codes to keys. Single letters are matched case-insensitively.
var defaultBindings = map[string]Key{
	"arrow_up":    KeyUp,
	"arrow_down":  KeyDown,
	"arrow_left":  KeyLeft,
	"arrow_right": KeyRight,

	"p": KeyPlay,

	"q":      KeyQuit,
	"escape": KeyQuit,
	"ctrl_c": KeyQuit,
}

// vimBindings are the optional letter aliases for the arrows (vim keys and WASD).
var vimBindings = map[string]Key{
	"h": KeyLeft,
	"j": KeyDown,
	"k": KeyUp,
	"l": KeyRight,
	"a": KeyLeft,
	"s": KeyDown,
	"w": KeyUp,
	"d": KeyRight,
}

// Bindings is the 3rd layer: it turns raw codes into keys.
type Bindings struct {
	codes map[string]Key
}

// NewBindings returns the default bindings, optionally with the letter aliases.
func NewBindings(letterAliases bool) *Bindings {
	b := &Bindings{codes: make(map[string]Key, len(defaultBindings)+len(vimBindings))}
	for code, key := range defaultBindings {
		b.codes[code] = key
	}
	if letterAliases {
		for code, key := range vimBindings {
			b.codes[code] = key
		}
	}
	return b
}

// Bind maps code to key, replacing any previous binding for that code.
func (b *Bindings) Bind(code string, key Key) {
	b.codes[normalizeCode(code)] = key
}

// Map applies the bindings to a raw input.
func (b *Bindings) Map(raw RawInput) Key {
	if raw.Code == "" {
		return KeyNone
	}
	if key, ok := b.codes[normalizeCode(raw.Code)]; ok {
		return key
	}
	return KeyOther
}

// normalizeCode lowercases single-character codes so 'P' and 'p' bind together.
func normalizeCode(code string) string {
	if utf8.RuneCountInString(code) == 1 {
		return strings.ToLower(code)
	}
	return code
}

// KeyName returns a human-friendly name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyPlay:
		return "Play"
	case KeyQuit:
		return "Quit"
	case KeyOther:
		return "Other"
	default:
		return "None"
	}
}

// String implements fmt.Stringer using KeyName
func (k Key) String() string {
	return KeyName(k)
}

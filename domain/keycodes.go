package domain

import (
	"fmt"
	"strings"
)

// Carbon virtual key codes for the ANSI keyboard layout. Only codes the
// policy or the display layer needs are named; everything else travels as a
// plain int.
const (
	KeyA              = 0
	KeyS              = 1
	KeyD              = 2
	KeyF              = 3
	KeyH              = 4
	KeyG              = 5
	KeyZ              = 6
	KeyX              = 7
	KeyC              = 8
	KeyV              = 9
	KeyB              = 11
	KeyQ              = 12
	KeyW              = 13
	KeyE              = 14
	KeyR              = 15
	KeyY              = 16
	KeyT              = 17
	Key1              = 18
	Key2              = 19
	Key3              = 20
	Key4              = 21
	Key6              = 22
	Key5              = 23
	KeyEqual          = 24
	Key9              = 25
	Key7              = 26
	KeyMinus          = 27
	Key8              = 28
	Key0              = 29
	KeyRightBracket   = 30
	KeyO              = 31
	KeyU              = 32
	KeyLeftBracket    = 33
	KeyI              = 34
	KeyP              = 35
	KeyReturn         = 36
	KeyL              = 37
	KeyJ              = 38
	KeyQuote          = 39
	KeyK              = 40
	KeySemicolon      = 41
	KeyBackslash      = 42
	KeyComma          = 43
	KeySlash          = 44
	KeyN              = 45
	KeyM              = 46
	KeyPeriod         = 47
	KeyTab            = 48
	KeySpace          = 49
	KeyGrave          = 50
	KeyDelete         = 51
	KeyEscape         = 53
	KeyKeypadDecimal  = 65
	KeyKeypadMultiply = 67
	KeyKeypadPlus     = 69
	KeyKeypadClear    = 71
	KeyKeypadDivide   = 75
	KeyKeypadEnter    = 76
	KeyKeypadMinus    = 78
	KeyKeypadEquals   = 81
	KeyKeypad0        = 82
	KeyKeypad1        = 83
	KeyKeypad2        = 84
	KeyKeypad3        = 85
	KeyKeypad4        = 86
	KeyKeypad5        = 87
	KeyKeypad6        = 88
	KeyKeypad7        = 89
	KeyKeypad8        = 91
	KeyKeypad9        = 92
	KeyF5             = 96
	KeyF6             = 97
	KeyF7             = 98
	KeyF3             = 99
	KeyF8             = 100
	KeyF9             = 101
	KeyF11            = 103
	KeyF13            = 105
	KeyF16            = 106
	KeyF14            = 107
	KeyF10            = 109
	KeyF12            = 111
	KeyF15            = 113
	KeyHelp           = 114
	KeyHome           = 115
	KeyPageUp         = 116
	KeyForwardDelete  = 117
	KeyF4             = 118
	KeyEnd            = 119
	KeyF2             = 120
	KeyPageDown       = 121
	KeyF1             = 122
	KeyLeft           = 123
	KeyRight          = 124
	KeyDown           = 125
	KeyUp             = 126
	KeyF17            = 64
	KeyF18            = 79
	KeyF19            = 80
	KeyF20            = 90
)

// functionKeys maps F-key codes to their display names
var functionKeys = map[int]string{
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14", KeyF15: "F15",
	KeyF16: "F16", KeyF17: "F17", KeyF18: "F18", KeyF19: "F19", KeyF20: "F20",
}

// IsFunctionKey reports whether keyCode is one of F1 through F20
func IsFunctionKey(keyCode int) bool {
	_, ok := functionKeys[keyCode]
	return ok
}

// keyEquivalents maps key codes to the lower-case character a menu item's
// key equivalent would carry for that key. Keys with no printable
// equivalent (arrows, function keys) are absent.
var keyEquivalents = map[int]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyEqual: "=", KeyMinus: "-", KeyRightBracket: "]", KeyLeftBracket: "[",
	KeyQuote: "'", KeySemicolon: ";", KeyBackslash: "\\", KeyComma: ",",
	KeySlash: "/", KeyPeriod: ".", KeyGrave: "`", KeySpace: " ",
}

// specialKeyGlyphs maps non-printable key codes to their display glyphs
var specialKeyGlyphs = map[int]string{
	KeyReturn:        "↩",
	KeyTab:           "⇥",
	KeySpace:         "Space",
	KeyDelete:        "⌫",
	KeyForwardDelete: "⌦",
	KeyEscape:        "⎋",
	KeyKeypadEnter:   "⌅",
	KeyKeypadClear:   "⌧",
	KeyHelp:          "?",
	KeyHome:          "↖",
	KeyEnd:           "↘",
	KeyPageUp:        "⇞",
	KeyPageDown:      "⇟",
	KeyLeft:          "←",
	KeyRight:         "→",
	KeyUp:            "↑",
	KeyDown:          "↓",
}

// keypadNames maps keypad key codes to display names
var keypadNames = map[int]string{
	KeyKeypad0: "Keypad 0", KeyKeypad1: "Keypad 1", KeyKeypad2: "Keypad 2",
	KeyKeypad3: "Keypad 3", KeyKeypad4: "Keypad 4", KeyKeypad5: "Keypad 5",
	KeyKeypad6: "Keypad 6", KeyKeypad7: "Keypad 7", KeyKeypad8: "Keypad 8",
	KeyKeypad9: "Keypad 9", KeyKeypadDecimal: "Keypad .",
	KeyKeypadMultiply: "Keypad *", KeyKeypadPlus: "Keypad +",
	KeyKeypadDivide: "Keypad /", KeyKeypadMinus: "Keypad -",
	KeyKeypadEquals: "Keypad =",
}

// KeyEquivalent returns the lower-case menu key equivalent for keyCode, or
// "" when the key has no printable equivalent.
func KeyEquivalent(keyCode int) string {
	return keyEquivalents[keyCode]
}

// KeyName returns a display string for keyCode: the upper-cased character
// for printable keys, the macOS glyph or name for special keys, and the
// decimal code in brackets as a last resort.
func KeyName(keyCode int) string {
	if name, ok := functionKeys[keyCode]; ok {
		return name
	}
	if glyph, ok := specialKeyGlyphs[keyCode]; ok {
		return glyph
	}
	if name, ok := keypadNames[keyCode]; ok {
		return name
	}
	if eq, ok := keyEquivalents[keyCode]; ok {
		return strings.ToUpper(eq)
	}
	return fmt.Sprintf("[%d]", keyCode)
}

// keyCodesByName is the reverse lookup used by the shortcut spec parser
var keyCodesByName = buildKeyCodesByName()

func buildKeyCodesByName() map[string]int {
	names := make(map[string]int, len(keyEquivalents)+len(functionKeys)+24)
	for code, eq := range keyEquivalents {
		names[eq] = code
	}
	for code, name := range functionKeys {
		names[strings.ToLower(name)] = code
	}
	// Named keys accepted by the spec parser
	for name, code := range map[string]int{
		"space":     KeySpace,
		"escape":    KeyEscape,
		"esc":       KeyEscape,
		"tab":       KeyTab,
		"return":    KeyReturn,
		"enter":     KeyReturn,
		"delete":    KeyDelete,
		"backspace": KeyDelete,
		"fdelete":   KeyForwardDelete,
		"left":      KeyLeft,
		"right":     KeyRight,
		"up":        KeyUp,
		"down":      KeyDown,
		"home":      KeyHome,
		"end":       KeyEnd,
		"pageup":    KeyPageUp,
		"pagedown":  KeyPageDown,
		"help":      KeyHelp,
	} {
		names[name] = code
	}
	return names
}

// KeyCodeForName maps a key name from a shortcut spec ("n", "f5", "space")
// to its virtual key code. The bool is false for unknown names.
func KeyCodeForName(name string) (int, bool) {
	code, ok := keyCodesByName[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// KeyCodeNone is the sentinel key code meaning "no key"
const KeyCodeNone = -1

// Shortcut is an immutable (key code, modifier set) pair identifying a
// keyboard combination. Construct through NewShortcut or ParseShortcut so
// the modifier set is always normalized; two shortcuts built from different
// raw modifier supersets that reduce to the same canonical set compare
// equal. The zero-ish "no shortcut" value is NoShortcut.
type Shortcut struct {
	KeyCode   int
	Modifiers Modifiers
}

// NoShortcut is the well-defined absence of a shortcut
var NoShortcut = Shortcut{KeyCode: KeyCodeNone}

// NewShortcut builds a Shortcut, normalizing the raw modifier set
func NewShortcut(keyCode int, raw Modifiers) Shortcut {
	return Shortcut{KeyCode: keyCode, Modifiers: raw.Normalize()}
}

// IsEmpty reports whether s carries no key
func (s Shortcut) IsEmpty() bool {
	return s.KeyCode == KeyCodeNone
}

// String renders the shortcut for display, e.g. "⇧⌘N"
func (s Shortcut) String() string {
	if s.IsEmpty() {
		return ""
	}
	return s.Modifiers.String() + KeyName(s.KeyCode)
}

// shortcutRecord is the serialized form, shared between the JSON wire
// format and the preference-storage record.
type shortcutRecord struct {
	KeyCode       int  `json:"keyCode"`
	ModifierFlags uint `json:"modifierFlags"`
}

// MarshalJSON encodes the shortcut as {"keyCode": ..., "modifierFlags": ...}
func (s Shortcut) MarshalJSON() ([]byte, error) {
	return json.Marshal(shortcutRecord{
		KeyCode:       s.KeyCode,
		ModifierFlags: uint(s.Modifiers),
	})
}

// UnmarshalJSON decodes the wire form, re-normalizing the modifier flags
func (s *Shortcut) UnmarshalJSON(data []byte) error {
	var rec shortcutRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*s = NewShortcut(rec.KeyCode, Modifiers(rec.ModifierFlags))
	return nil
}

// EncodeRecord returns the preference-storage record form of the shortcut.
// NoShortcut encodes to an empty record.
func (s Shortcut) EncodeRecord() map[string]any {
	if s.IsEmpty() {
		return map[string]any{}
	}
	return map[string]any{
		"keyCode":       s.KeyCode,
		"modifierFlags": uint(s.Modifiers),
	}
}

// DecodeRecord rebuilds a Shortcut from a preference-storage record.
// A nil, empty, or malformed record decodes to NoShortcut; it never fails.
func DecodeRecord(record map[string]any) Shortcut {
	keyCode, ok := recordInt(record, "keyCode")
	if !ok {
		return NoShortcut
	}
	flags, _ := recordInt(record, "modifierFlags")
	return NewShortcut(keyCode, Modifiers(flags))
}

// recordInt reads an integer record field regardless of the numeric type
// the decoder produced (JSON gives float64, a direct map gives int or uint)
func recordInt(record map[string]any, key string) (int, bool) {
	switch v := record[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// ParseShortcut parses a spec string like "cmd+shift+n" or "ctrl+f5" into
// a Shortcut. The last '+'-separated token is the key; everything before it
// must be a modifier name.
func ParseShortcut(spec string) (Shortcut, error) {
	parts := strings.Split(spec, "+")
	if len(parts) == 0 || strings.TrimSpace(spec) == "" {
		return NoShortcut, fmt.Errorf("empty shortcut spec")
	}

	var mods Modifiers
	for _, part := range parts[:len(parts)-1] {
		mod := ParseModifier(part)
		if mod == 0 {
			return NoShortcut, fmt.Errorf("unknown modifier %q in %q", part, spec)
		}
		mods |= mod
	}

	keyName := parts[len(parts)-1]
	keyCode, ok := KeyCodeForName(keyName)
	if !ok {
		return NoShortcut, fmt.Errorf("unknown key %q in %q", keyName, spec)
	}

	return NewShortcut(keyCode, mods), nil
}

package domain

import "strings"

// Modifiers is a bit set of keyboard modifier flags. The bit layout mirrors
// the order macOS reports device-independent flags in, but the values are
// internal to tecla; use CarbonFlags for the OS-facing encoding.
type Modifiers uint32

const (
	ModCapsLock Modifiers = 1 << iota
	ModShift
	ModControl
	ModOption
	ModCommand
	ModNumericPad
	ModHelp
	ModFunction
)

// canonicalModifiers are the four modifiers a global shortcut may carry.
const canonicalModifiers = ModControl | ModShift | ModOption | ModCommand

// Carbon modifier bit encoding used by the OS hotkey registration call.
const (
	carbonCommand uint32 = 0x0100
	carbonShift   uint32 = 0x0200
	carbonOption  uint32 = 0x0800
	carbonControl uint32 = 0x1000
)

// Normalize projects a raw modifier set onto the four recognized modifiers
// (control, shift, option, command). Caps-lock, numeric-pad, help and
// function bits are dropped. Applied at every Shortcut construction site so
// equality is well-defined.
func (m Modifiers) Normalize() Modifiers {
	return m & canonicalModifiers
}

// NormalizeWithFunction is Normalize but retains the function-key bit. Used
// only when comparing against externally-sourced masks, such as menu key
// equivalents, that may legitimately carry it.
func (m Modifiers) NormalizeWithFunction() Modifiers {
	return m & (canonicalModifiers | ModFunction)
}

// Has reports whether every bit in mod is set
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// CarbonFlags returns the Carbon bit encoding of the canonical modifiers,
// the form the OS hotkey facility expects.
func (m Modifiers) CarbonFlags() uint32 {
	var flags uint32
	if m.Has(ModControl) {
		flags |= carbonControl
	}
	if m.Has(ModShift) {
		flags |= carbonShift
	}
	if m.Has(ModOption) {
		flags |= carbonOption
	}
	if m.Has(ModCommand) {
		flags |= carbonCommand
	}
	return flags
}

// ModifiersFromCarbon decodes a Carbon modifier mask back into Modifiers
func ModifiersFromCarbon(flags uint32) Modifiers {
	var m Modifiers
	if flags&carbonControl != 0 {
		m |= ModControl
	}
	if flags&carbonShift != 0 {
		m |= ModShift
	}
	if flags&carbonOption != 0 {
		m |= ModOption
	}
	if flags&carbonCommand != 0 {
		m |= ModCommand
	}
	return m
}

// String renders the modifiers as macOS keyboard symbols in the standard
// display order: control, option, shift, command.
func (m Modifiers) String() string {
	var b strings.Builder
	if m.Has(ModControl) {
		b.WriteString("⌃")
	}
	if m.Has(ModOption) {
		b.WriteString("⌥")
	}
	if m.Has(ModShift) {
		b.WriteString("⇧")
	}
	if m.Has(ModCommand) {
		b.WriteString("⌘")
	}
	if m.Has(ModFunction) {
		b.WriteString("fn")
	}
	return b.String()
}

// ParseModifier maps a modifier name to its flag. Returns 0 for unknown names.
func ParseModifier(name string) Modifiers {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ctrl", "control":
		return ModControl
	case "shift":
		return ModShift
	case "opt", "option", "alt":
		return ModOption
	case "cmd", "command", "super", "meta":
		return ModCommand
	case "fn", "function":
		return ModFunction
	default:
		return 0
	}
}

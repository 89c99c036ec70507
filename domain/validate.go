package domain

import "fmt"

// ValidationContext bundles the permissiveness flags controlling which
// otherwise-questionable combinations are accepted.
type ValidationContext struct {
	AllowSystemShortcuts      bool
	AllowServiceMenuOverrides bool
	AllowOptionModifier       bool
}

// DefaultValidationContext is the strict preset: every restriction on
func DefaultValidationContext() ValidationContext {
	return ValidationContext{}
}

// LenientValidationContext is the permissive preset: every restriction off
func LenientValidationContext() ValidationContext {
	return ValidationContext{
		AllowSystemShortcuts:      true,
		AllowServiceMenuOverrides: true,
		AllowOptionModifier:       true,
	}
}

// ReservedFunc reports whether a shortcut is reserved by the system.
// Enumerating truly reserved combinations needs live system data, so the
// default predicate reports nothing reserved; callers plug in their own
// list (see config.ReservedShortcuts).
type ReservedFunc func(Shortcut) bool

// Validator applies the shortcut validity policy under one context
type Validator struct {
	Context  ValidationContext
	Reserved ReservedFunc
}

// NewValidator creates a Validator with no reserved-shortcut predicate
func NewValidator(ctx ValidationContext) Validator {
	return Validator{Context: ctx}
}

// IsValid reports whether the key combination is acceptable as a global
// shortcut under ctx. Pure function; the first matching rule decides.
func IsValid(s Shortcut, ctx ValidationContext) bool {
	// Function keys never collide with text entry and are always safe,
	// with or without modifiers.
	if IsFunctionKey(s.KeyCode) {
		return true
	}

	mods := s.Modifiers.Normalize()

	// A bare key with no modifier is reserved for normal typing
	if mods == 0 {
		return false
	}

	// Control and Command are never used for plain text input, so any
	// combination carrying one of them is safe.
	if mods.Has(ModControl) || mods.Has(ModCommand) {
		return true
	}

	if mods.Has(ModOption) {
		// Option+Space and Option+Escape have no OS binding regardless
		// of context.
		if s.KeyCode == KeySpace || s.KeyCode == KeyEscape {
			return true
		}
		// Otherwise the caller must explicitly accept the risk of
		// colliding with an OS Option binding.
		return ctx.AllowOptionModifier
	}

	// Shift alone only alters character case and collides with typing
	return false
}

// IsValid applies the policy under the validator's context
func (v Validator) IsValid(s Shortcut) bool {
	return IsValid(s, v.Context)
}

// Validate returns nil when the shortcut is acceptable, ErrInvalidShortcut
// when the policy rejects it, and ErrSystemReserved when strict validation
// is on and the reserved predicate matches.
func (v Validator) Validate(s Shortcut) error {
	if !IsValid(s, v.Context) {
		return fmt.Errorf("%w: %s", ErrInvalidShortcut, describeRejection(s))
	}
	if !v.Context.AllowSystemShortcuts && v.Reserved != nil && v.Reserved(s) {
		return fmt.Errorf("%w: %s", ErrSystemReserved, s)
	}
	return nil
}

// describeRejection explains why the policy said no
func describeRejection(s Shortcut) string {
	mods := s.Modifiers.Normalize()
	switch {
	case mods == 0:
		return fmt.Sprintf("%s has no modifier and would interfere with typing", KeyName(s.KeyCode))
	case mods.Has(ModOption) && !mods.Has(ModControl) && !mods.Has(ModCommand):
		return fmt.Sprintf("%s may collide with an Option key binding", s)
	default:
		return fmt.Sprintf("%s needs Control or Command", s)
	}
}

package ports

import "errors"

// Error sentinels for hotkey provider operations
var (
	ErrHotkeyUnsupported = errors.New("global hotkeys are not supported on this platform")
	ErrProviderClosed    = errors.New("hotkey provider is closed")
	ErrUnknownHandle     = errors.New("unknown hotkey handle")
)

// HotkeyHandle is the OS-level resource representing one active global
// shortcut registration.
type HotkeyHandle uint64

// HotkeyRegistrar registers and releases OS-level hotkeys. The id passed to
// Register is echoed back on the Events channel when the combination fires.
type HotkeyRegistrar interface {
	Register(keyCode int, modifierBits uint32, id uint32) (HotkeyHandle, error)
	Unregister(handle HotkeyHandle) error
}

// HotkeyEventSource delivers the ids of fired registrations. The channel is
// closed when the provider shuts down.
type HotkeyEventSource interface {
	Events() <-chan uint32
}

// HotkeyProvider is the composite interface over the OS global-hotkey
// registration facility
type HotkeyProvider interface {
	HotkeyRegistrar
	HotkeyEventSource
	Close() error
}

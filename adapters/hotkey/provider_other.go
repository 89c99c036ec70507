//go:build !darwin

package hotkey

import "tecla/ports"

// Provider only exists on macOS; other platforms have no Carbon hotkey
// facility to bind to.
type Provider struct{}

// NewProvider fails on non-darwin platforms
func NewProvider() (*Provider, error) {
	return nil, ports.ErrHotkeyUnsupported
}

func (p *Provider) Register(keyCode int, modifierBits uint32, id uint32) (ports.HotkeyHandle, error) {
	return 0, ports.ErrHotkeyUnsupported
}

func (p *Provider) Unregister(handle ports.HotkeyHandle) error {
	return ports.ErrHotkeyUnsupported
}

func (p *Provider) Events() <-chan uint32 {
	return nil
}

func (p *Provider) Close() error {
	return nil
}

//go:build darwin

package hotkey

import (
	"sync"

	"golang.design/x/hotkey"

	"tecla/domain"
	"tecla/ports"
)

// Provider binds to the system-wide Carbon hotkey facility through
// golang.design/x/hotkey. Each registration owns one OS hotkey and one
// goroutine forwarding its key-down events, tagged with the caller's id,
// onto the shared events channel.
type Provider struct {
	mu         sync.Mutex
	closed     bool
	events     chan uint32
	handles    map[ports.HotkeyHandle]*liveHotkey
	nextHandle uint64
	wg         sync.WaitGroup
}

type liveHotkey struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
}

// Verify interface compliance at compile time
var _ ports.HotkeyProvider = (*Provider)(nil)

// NewProvider creates the macOS hotkey provider
func NewProvider() (*Provider, error) {
	return &Provider{
		events:  make(chan uint32, 16),
		handles: make(map[ports.HotkeyHandle]*liveHotkey),
	}, nil
}

// Register claims the key combination system-wide
func (p *Provider) Register(keyCode int, modifierBits uint32, id uint32) (ports.HotkeyHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, ports.ErrProviderClosed
	}

	hk := hotkey.New(carbonModifiers(modifierBits), hotkey.Key(keyCode))
	if err := hk.Register(); err != nil {
		return 0, err
	}

	p.nextHandle++
	handle := ports.HotkeyHandle(p.nextHandle)
	live := &liveHotkey{hk: hk, stop: make(chan struct{})}
	p.handles[handle] = live

	p.wg.Add(1)
	go p.forward(live, id)

	return handle, nil
}

// forward relays key-down events for one hotkey until it is unregistered
func (p *Provider) forward(live *liveHotkey, id uint32) {
	defer p.wg.Done()
	for {
		select {
		case <-live.stop:
			return
		case <-live.hk.Keydown():
			select {
			case p.events <- id:
			default:
				// Drop rather than block the OS delivery path
			}
		}
	}
}

// Unregister releases the OS hotkey behind handle
func (p *Provider) Unregister(handle ports.HotkeyHandle) error {
	p.mu.Lock()
	live, ok := p.handles[handle]
	if ok {
		delete(p.handles, handle)
	}
	p.mu.Unlock()

	if !ok {
		return ports.ErrUnknownHandle
	}

	close(live.stop)
	live.hk.Unregister()
	return nil
}

// Events returns the fired-registration channel
func (p *Provider) Events() <-chan uint32 {
	return p.events
}

// Close releases every live hotkey and closes the events channel
func (p *Provider) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	handles := p.handles
	p.handles = make(map[ports.HotkeyHandle]*liveHotkey)
	p.mu.Unlock()

	for _, live := range handles {
		close(live.stop)
		live.hk.Unregister()
	}
	p.wg.Wait()
	close(p.events)
	return nil
}

// carbonModifiers converts a Carbon modifier mask into the library's
// modifier list
func carbonModifiers(bits uint32) []hotkey.Modifier {
	m := domain.ModifiersFromCarbon(bits)
	var mods []hotkey.Modifier
	if m.Has(domain.ModControl) {
		mods = append(mods, hotkey.ModCtrl)
	}
	if m.Has(domain.ModShift) {
		mods = append(mods, hotkey.ModShift)
	}
	if m.Has(domain.ModOption) {
		mods = append(mods, hotkey.ModOption)
	}
	if m.Has(domain.ModCommand) {
		mods = append(mods, hotkey.ModCmd)
	}
	return mods
}

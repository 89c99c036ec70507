package hotkey

import (
	"fmt"
	"sync"

	"tecla/ports"
)

// Memory is an in-process hotkey provider. It performs no OS calls, which
// makes it the provider for tests and for `tecla run --dry-run`, where
// bindings are resolved and registered without claiming real hotkeys.
type Memory struct {
	mu         sync.Mutex
	closed     bool
	events     chan uint32
	failNext   error
	ids        map[ports.HotkeyHandle]uint32
	nextHandle uint64
}

// Verify interface compliance at compile time
var _ ports.HotkeyProvider = (*Memory)(nil)

// NewMemory creates an in-process provider
func NewMemory() *Memory {
	return &Memory{
		events: make(chan uint32, 16),
		ids:    make(map[ports.HotkeyHandle]uint32),
	}
}

// Register records the registration and returns a fresh handle
func (m *Memory) Register(keyCode int, modifierBits uint32, id uint32) (ports.HotkeyHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ports.ErrProviderClosed
	}
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return 0, err
	}

	m.nextHandle++
	handle := ports.HotkeyHandle(m.nextHandle)
	m.ids[handle] = id
	return handle, nil
}

// Unregister forgets the handle
func (m *Memory) Unregister(handle ports.HotkeyHandle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ids[handle]; !ok {
		return fmt.Errorf("%w: %d", ports.ErrUnknownHandle, handle)
	}
	delete(m.ids, handle)
	return nil
}

// Events returns the fired-registration channel
func (m *Memory) Events() <-chan uint32 {
	return m.events
}

// Close closes the events channel
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.events)
	return nil
}

// Fire simulates the OS delivering a fired-hotkey event for id
func (m *Memory) Fire(id uint32) {
	m.events <- id
}

// FailNextRegister makes the next Register call fail with err, simulating
// the OS refusing a registration
func (m *Memory) FailNextRegister(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = err
}

// Live returns the number of handles currently registered
func (m *Memory) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ids)
}

package registry

import (
	"errors"
	"fmt"
	"sync"

	"tecla/domain"
	"tecla/logging"
	"tecla/ports"
)

// Action runs when a registered shortcut fires
type Action func()

// Registration is an opaque handle for one successful claim on a shortcut,
// used to later release that specific claim.
type Registration struct {
	id       uint32
	shortcut domain.Shortcut
}

// Shortcut returns the shortcut this registration claims
func (r *Registration) Shortcut() domain.Shortcut {
	return r.shortcut
}

// entry is one row of the registration table
type entry struct {
	action Action
	handle ports.HotkeyHandle
	id     uint32
}

// Manager owns the mapping from shortcut values to live OS hotkey handles
// and caller actions. At most one registration is active per distinct
// shortcut value; every table entry corresponds to exactly one live OS
// handle. All mutation runs under a single mutex per manager instance.
type Manager struct {
	provider  ports.HotkeyProvider
	validator domain.Validator

	mu     sync.Mutex
	table  map[domain.Shortcut]entry
	nextID uint32

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewManager creates a Manager routing fired events from provider and
// validating registrations with validator. Call Start to begin dispatching
// and Close for teardown.
func NewManager(provider ports.HotkeyProvider, validator domain.Validator) *Manager {
	return &Manager{
		provider:  provider,
		validator: validator,
		table:     make(map[domain.Shortcut]entry),
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start begins routing fired-hotkey events to their actions
func (m *Manager) Start() {
	go m.dispatchLoop()
}

// Close stops event dispatch and releases every live registration
func (m *Manager) Close() error {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
	<-m.done
	return m.UnregisterAll()
}

// Register claims shortcut and arranges for action to run when it fires.
// It fails with ErrInvalidShortcut or ErrSystemReserved when the validity
// policy rejects the combination, ErrAlreadyRegistered when the value
// already has a live entry (no OS call is made), and ErrRegistrationFailed
// when the OS refuses the registration (table left unchanged).
func (m *Manager) Register(shortcut domain.Shortcut, action Action) (*Registration, error) {
	if action == nil {
		return nil, errors.New("nil action")
	}
	if err := m.validator.Validate(shortcut); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.table[shortcut]; taken {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, shortcut)
	}

	m.nextID++
	id := m.nextID

	handle, err := m.provider.Register(shortcut.KeyCode, shortcut.Modifiers.CarbonFlags(), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistrationFailed, err)
	}

	m.table[shortcut] = entry{action: action, handle: handle, id: id}
	logging.Logger.Debug("Registered global shortcut", "shortcut", shortcut.String(), "id", id)

	return &Registration{id: id, shortcut: shortcut}, nil
}

// Unregister releases the claim held by registration. Calling it twice, or
// after the shortcut was released another way, is not an error.
func (m *Manager) Unregister(registration *Registration) error {
	if registration == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.table[registration.shortcut]
	if !ok || e.id != registration.id {
		// Already released; the caller's intent is satisfied
		return nil
	}
	return m.releaseLocked(registration.shortcut, e)
}

// UnregisterShortcut releases whatever registration currently exists for
// the shortcut value, if any.
func (m *Manager) UnregisterShortcut(shortcut domain.Shortcut) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.table[shortcut]
	if !ok {
		return nil
	}
	return m.releaseLocked(shortcut, e)
}

// UnregisterAll releases every live registration. Used for teardown.
func (m *Manager) UnregisterAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for shortcut, e := range m.table {
		if err := m.releaseLocked(shortcut, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// releaseLocked releases the OS handle and removes the table entry. The OS
// handle is released before the entry disappears so no registration leaks.
// Callers must hold m.mu.
func (m *Manager) releaseLocked(shortcut domain.Shortcut, e entry) error {
	err := m.provider.Unregister(e.handle)
	delete(m.table, shortcut)
	logging.Logger.Debug("Unregistered global shortcut", "shortcut", shortcut.String(), "id", e.id)
	if err != nil {
		return fmt.Errorf("failed to release OS hotkey for %s: %w", shortcut, err)
	}
	return nil
}

// IsRegistered reports whether shortcut has a live registration
func (m *Manager) IsRegistered(shortcut domain.Shortcut) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.table[shortcut]
	return ok
}

// Registered returns the shortcuts with live registrations
func (m *Manager) Registered() []domain.Shortcut {
	m.mu.Lock()
	defer m.mu.Unlock()

	shortcuts := make([]domain.Shortcut, 0, len(m.table))
	for shortcut := range m.table {
		shortcuts = append(shortcuts, shortcut)
	}
	return shortcuts
}

// dispatchLoop consumes fired-hotkey events until Close or until the
// provider closes its channel
func (m *Manager) dispatchLoop() {
	defer close(m.done)
	for {
		select {
		case <-m.stopCh:
			return
		case id, ok := <-m.provider.Events():
			if !ok {
				return
			}
			m.dispatch(id)
		}
	}
}

// dispatch routes a fired id to its action. The table scan runs on a
// snapshot taken inside a bounded critical section; the action runs outside
// the lock so firing never blocks registration. A fire racing an
// unregistration may run the action once more or not at all.
func (m *Manager) dispatch(id uint32) {
	m.mu.Lock()
	actions := make(map[uint32]Action, len(m.table))
	for _, e := range m.table {
		actions[e.id] = e.action
	}
	m.mu.Unlock()

	action, ok := actions[id]
	if !ok {
		logging.Logger.Debug("Ignoring fire for released shortcut", "id", id)
		return
	}
	action()
}

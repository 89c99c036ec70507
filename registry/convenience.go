package registry

import (
	"tecla/domain"
)

// Claim pairs a shortcut with the action to run when it fires
type Claim struct {
	Action   Action
	Shortcut domain.Shortcut
}

// RegisterAll registers every claim in order. On the first failure it
// releases the registrations made so far and returns the error, so a bulk
// registration is all-or-nothing.
func (m *Manager) RegisterAll(claims []Claim) ([]*Registration, error) {
	registrations := make([]*Registration, 0, len(claims))
	for _, claim := range claims {
		registration, err := m.Register(claim.Shortcut, claim.Action)
		if err != nil {
			for _, done := range registrations {
				m.Unregister(done)
			}
			return nil, err
		}
		registrations = append(registrations, registration)
	}
	return registrations, nil
}

// WithShortcut registers shortcut for the duration of fn and releases it
// afterwards, whether or not fn returns an error.
func (m *Manager) WithShortcut(shortcut domain.Shortcut, action Action, fn func() error) error {
	registration, err := m.Register(shortcut, action)
	if err != nil {
		return err
	}
	defer m.Unregister(registration)
	return fn()
}

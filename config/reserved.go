package config

import (
	"tecla/domain"
	"tecla/logging"
)

// ReservedFunc builds the system-reserved predicate from the
// reserved_shortcuts settings list. The OS exposes no queryable table of
// reserved combinations, so by default nothing is reserved; users who know
// their system bindings list them here as shortcut specs ("cmd+space").
func (s *Settings) ReservedFunc() domain.ReservedFunc {
	if len(s.ReservedShortcuts) == 0 {
		return nil
	}

	reserved := make(map[domain.Shortcut]bool, len(s.ReservedShortcuts))
	for _, spec := range s.ReservedShortcuts {
		shortcut, err := domain.ParseShortcut(spec)
		if err != nil {
			logging.Logger.Warn("Ignoring invalid reserved shortcut", "spec", spec, "error", err)
			continue
		}
		reserved[shortcut] = true
	}
	if len(reserved) == 0 {
		return nil
	}

	return func(shortcut domain.Shortcut) bool {
		return reserved[shortcut]
	}
}

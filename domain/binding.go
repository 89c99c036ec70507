package domain

import "time"

// Binding is a named, persisted claim on a shortcut: when the daemon sees
// the shortcut fire it runs the command.
type Binding struct {
	Command     string
	Enabled     bool
	LastUpdated time.Time
	Name        string
	Shortcut    Shortcut
}

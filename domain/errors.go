package domain

import "errors"

var (
	ErrInvalidShortcut    = errors.New("shortcut not allowed")
	ErrSystemReserved     = errors.New("shortcut reserved by the system")
	ErrAlreadyRegistered  = errors.New("shortcut already registered")
	ErrRegistrationFailed = errors.New("system refused shortcut registration")
	ErrBindingExists      = errors.New("binding already exists")
	ErrBindingNotFound    = errors.New("binding not found")
)

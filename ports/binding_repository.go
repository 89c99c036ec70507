package ports

import (
	"context"

	"tecla/domain"
)

// BindingReader reads persisted bindings
type BindingReader interface {
	Get(ctx context.Context, name string) (*domain.Binding, error)
	List(ctx context.Context, includeDisabled bool) ([]domain.Binding, error)
}

// BindingWriter creates and deletes bindings
type BindingWriter interface {
	Add(ctx context.Context, binding domain.Binding) error
	Delete(ctx context.Context, name string) error
}

// BindingUpdater updates existing bindings
type BindingUpdater interface {
	SetEnabled(ctx context.Context, name string, enabled bool) error
	UpdateCommand(ctx context.Context, name, command string) error
	UpdateShortcut(ctx context.Context, name string, shortcut domain.Shortcut) error
}

// BindingRepository is the composite interface
type BindingRepository interface {
	BindingReader
	BindingWriter
	BindingUpdater
	Close() error
}

package storage

import (
	"context"

	"tecla/domain"
	"tecla/ports"
	bindingstore "tecla/storage"
)

// SQLiteRepository implements ports.BindingRepository by wrapping storage.Store
type SQLiteRepository struct {
	store *bindingstore.Store
}

// Verify interface compliance at compile time
var _ ports.BindingRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	store, err := bindingstore.NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	return &SQLiteRepository{store: store}, nil
}

// Close closes the underlying store
func (r *SQLiteRepository) Close() error {
	return r.store.Close()
}

// Get implements BindingReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, name string) (*domain.Binding, error) {
	return r.store.GetBinding(ctx, name)
}

// List implements BindingReader.List
func (r *SQLiteRepository) List(ctx context.Context, includeDisabled bool) ([]domain.Binding, error) {
	return r.store.ListBindings(ctx, includeDisabled)
}

// Add implements BindingWriter.Add
func (r *SQLiteRepository) Add(ctx context.Context, binding domain.Binding) error {
	return r.store.AddBinding(ctx, binding)
}

// Delete implements BindingWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	return r.store.DeleteBinding(ctx, name)
}

// SetEnabled implements BindingUpdater.SetEnabled
func (r *SQLiteRepository) SetEnabled(ctx context.Context, name string, enabled bool) error {
	return r.store.SetBindingEnabled(ctx, name, enabled)
}

// UpdateCommand implements BindingUpdater.UpdateCommand
func (r *SQLiteRepository) UpdateCommand(ctx context.Context, name, command string) error {
	return r.store.UpdateBindingCommand(ctx, name, command)
}

// UpdateShortcut implements BindingUpdater.UpdateShortcut
func (r *SQLiteRepository) UpdateShortcut(ctx context.Context, name string, shortcut domain.Shortcut) error {
	return r.store.UpdateBindingShortcut(ctx, name, shortcut)
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tecla/domain"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "bindings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testBinding(name string) domain.Binding {
	return domain.Binding{
		Command:  "say hello",
		Enabled:  true,
		Name:     name,
		Shortcut: domain.NewShortcut(domain.KeyN, domain.ModCommand|domain.ModShift),
	}
}

func TestAddAndGetBinding(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddBinding(ctx, testBinding("greet")))

	got, err := store.GetBinding(ctx, "greet")
	require.NoError(t, err)
	assert.Equal(t, "greet", got.Name)
	assert.Equal(t, "say hello", got.Command)
	assert.True(t, got.Enabled)
	assert.Equal(t, domain.NewShortcut(domain.KeyN, domain.ModCommand|domain.ModShift), got.Shortcut)
	assert.False(t, got.LastUpdated.IsZero())
}

func TestAddDuplicateBinding(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddBinding(ctx, testBinding("greet")))

	err := store.AddBinding(ctx, testBinding("greet"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBindingExists)
}

func TestGetMissingBinding(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetBinding(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBindingNotFound)
}

func TestDeleteBinding(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddBinding(ctx, testBinding("greet")))
	require.NoError(t, store.DeleteBinding(ctx, "greet"))

	_, err := store.GetBinding(ctx, "greet")
	assert.ErrorIs(t, err, domain.ErrBindingNotFound)

	err = store.DeleteBinding(ctx, "greet")
	assert.ErrorIs(t, err, domain.ErrBindingNotFound)
}

func TestListBindings(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	b1 := testBinding("beta")
	b2 := testBinding("alpha")
	b2.Shortcut = domain.NewShortcut(domain.KeyJ, domain.ModControl)
	b3 := testBinding("gamma")
	b3.Enabled = false

	require.NoError(t, store.AddBinding(ctx, b1))
	require.NoError(t, store.AddBinding(ctx, b2))
	require.NoError(t, store.AddBinding(ctx, b3))

	enabled, err := store.ListBindings(ctx, false)
	require.NoError(t, err)
	require.Len(t, enabled, 2)
	assert.Equal(t, "alpha", enabled[0].Name, "ordered by name")
	assert.Equal(t, "beta", enabled[1].Name)

	all, err := store.ListBindings(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateBindingShortcut(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddBinding(ctx, testBinding("greet")))

	updated := domain.NewShortcut(domain.KeyF6, 0)
	require.NoError(t, store.UpdateBindingShortcut(ctx, "greet", updated))

	got, err := store.GetBinding(ctx, "greet")
	require.NoError(t, err)
	assert.Equal(t, updated, got.Shortcut)

	err = store.UpdateBindingShortcut(ctx, "nope", updated)
	assert.ErrorIs(t, err, domain.ErrBindingNotFound)
}

func TestUpdateBindingCommand(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddBinding(ctx, testBinding("greet")))
	require.NoError(t, store.UpdateBindingCommand(ctx, "greet", "say goodbye"))

	got, err := store.GetBinding(ctx, "greet")
	require.NoError(t, err)
	assert.Equal(t, "say goodbye", got.Command)
}

func TestSetBindingEnabled(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddBinding(ctx, testBinding("greet")))
	require.NoError(t, store.SetBindingEnabled(ctx, "greet", false))

	enabled, err := store.ListBindings(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	require.NoError(t, store.SetBindingEnabled(ctx, "greet", true))
	enabled, err = store.ListBindings(ctx, false)
	require.NoError(t, err)
	assert.Len(t, enabled, 1)
}

func TestShortcutPersistsNormalized(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	binding := testBinding("raw")
	binding.Shortcut = domain.NewShortcut(domain.KeyN, domain.ModCommand|domain.ModCapsLock|domain.ModNumericPad)
	require.NoError(t, store.AddBinding(ctx, binding))

	got, err := store.GetBinding(ctx, "raw")
	require.NoError(t, err)
	assert.Equal(t, domain.NewShortcut(domain.KeyN, domain.ModCommand), got.Shortcut)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hotkeyadapter "tecla/adapters/hotkey"
	"tecla/domain"
	"tecla/registry"
)

// fakeRepo is an in-memory ports.BindingRepository for service tests
type fakeRepo struct {
	bindings map[string]domain.Binding
	addErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bindings: make(map[string]domain.Binding)}
}

func (r *fakeRepo) Get(ctx context.Context, name string) (*domain.Binding, error) {
	binding, ok := r.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBindingNotFound, name)
	}
	return &binding, nil
}

func (r *fakeRepo) List(ctx context.Context, includeDisabled bool) ([]domain.Binding, error) {
	var out []domain.Binding
	for _, binding := range r.bindings {
		if binding.Enabled || includeDisabled {
			out = append(out, binding)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) Add(ctx context.Context, binding domain.Binding) error {
	if r.addErr != nil {
		return r.addErr
	}
	if _, ok := r.bindings[binding.Name]; ok {
		return fmt.Errorf("%w: %s", domain.ErrBindingExists, binding.Name)
	}
	r.bindings[binding.Name] = binding
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, name string) error {
	if _, ok := r.bindings[name]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrBindingNotFound, name)
	}
	delete(r.bindings, name)
	return nil
}

func (r *fakeRepo) SetEnabled(ctx context.Context, name string, enabled bool) error {
	binding, ok := r.bindings[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrBindingNotFound, name)
	}
	binding.Enabled = enabled
	r.bindings[name] = binding
	return nil
}

func (r *fakeRepo) UpdateCommand(ctx context.Context, name, command string) error {
	binding, ok := r.bindings[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrBindingNotFound, name)
	}
	binding.Command = command
	r.bindings[name] = binding
	return nil
}

func (r *fakeRepo) UpdateShortcut(ctx context.Context, name string, shortcut domain.Shortcut) error {
	binding, ok := r.bindings[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrBindingNotFound, name)
	}
	binding.Shortcut = shortcut
	r.bindings[name] = binding
	return nil
}

func (r *fakeRepo) Close() error { return nil }

// recordingRunner captures commands the service fires
type recordingRunner struct {
	ran chan string
}

func (r *recordingRunner) Run(name, command string) error {
	r.ran <- command
	return nil
}

func newTestService() (*BindingService, *fakeRepo) {
	repo := newFakeRepo()
	service := NewBindingService(repo, domain.NewValidator(domain.DefaultValidationContext()))
	return service, repo
}

func TestCreateBinding(t *testing.T) {
	service, repo := newTestService()

	binding, err := service.CreateBinding(context.Background(), CreateBindingParams{
		Command:  "open -a Terminal",
		Name:     "terminal",
		Shortcut: domain.NewShortcut(domain.KeyT, domain.ModCommand|domain.ModShift),
	})
	require.NoError(t, err)
	assert.Equal(t, "terminal", binding.Name)
	assert.True(t, binding.Enabled)
	assert.Contains(t, repo.bindings, "terminal")
}

func TestCreateBindingValidation(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()
	valid := domain.NewShortcut(domain.KeyT, domain.ModCommand)

	_, err := service.CreateBinding(ctx, CreateBindingParams{Command: "x", Shortcut: valid})
	assert.Error(t, err, "name required")

	_, err = service.CreateBinding(ctx, CreateBindingParams{Name: "x", Shortcut: valid})
	assert.Error(t, err, "command required")

	_, err = service.CreateBinding(ctx, CreateBindingParams{
		Command:  "x",
		Name:     "x",
		Shortcut: domain.NewShortcut(domain.KeyT, 0),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidShortcut)

	assert.Empty(t, repo.bindings, "nothing persisted on failure")
}

func TestCreateBindingDisabled(t *testing.T) {
	service, _ := newTestService()

	binding, err := service.CreateBinding(context.Background(), CreateBindingParams{
		Command:  "x",
		Disabled: true,
		Name:     "off",
		Shortcut: domain.NewShortcut(domain.KeyT, domain.ModCommand),
	})
	require.NoError(t, err)
	assert.False(t, binding.Enabled)
}

func TestCreateBindingDuplicateName(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()
	params := CreateBindingParams{
		Command:  "x",
		Name:     "dup",
		Shortcut: domain.NewShortcut(domain.KeyT, domain.ModCommand),
	}

	_, err := service.CreateBinding(ctx, params)
	require.NoError(t, err)

	_, err = service.CreateBinding(ctx, params)
	assert.ErrorIs(t, err, domain.ErrBindingExists)
}

func TestReplaceBinding(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	_, err := service.CreateBinding(ctx, CreateBindingParams{
		Command:  "old",
		Name:     "job",
		Shortcut: domain.NewShortcut(domain.KeyT, domain.ModCommand),
	})
	require.NoError(t, err)

	binding, err := service.ReplaceBinding(ctx, CreateBindingParams{
		Command:  "new",
		Name:     "job",
		Shortcut: domain.NewShortcut(domain.KeyJ, domain.ModCommand),
	})
	require.NoError(t, err)
	assert.Equal(t, "new", binding.Command)
	assert.Len(t, repo.bindings, 1)

	// Replace of a missing binding degrades to create
	_, err = service.ReplaceBinding(ctx, CreateBindingParams{
		Command:  "x",
		Name:     "fresh",
		Shortcut: domain.NewShortcut(domain.KeyK, domain.ModCommand),
	})
	require.NoError(t, err)
}

func TestUpdateShortcutValidates(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreateBinding(ctx, CreateBindingParams{
		Command:  "x",
		Name:     "job",
		Shortcut: domain.NewShortcut(domain.KeyT, domain.ModCommand),
	})
	require.NoError(t, err)

	err = service.UpdateShortcut(ctx, "job", domain.NewShortcut(domain.KeyT, domain.ModShift))
	assert.ErrorIs(t, err, domain.ErrInvalidShortcut)

	require.NoError(t, service.UpdateShortcut(ctx, "job", domain.NewShortcut(domain.KeyF6, 0)))
	got, err := service.GetBinding(ctx, "job")
	require.NoError(t, err)
	assert.Equal(t, domain.NewShortcut(domain.KeyF6, 0), got.Shortcut)
}

func TestApplyBindings(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreateBinding(ctx, CreateBindingParams{
		Command:  "say one",
		Name:     "one",
		Shortcut: domain.NewShortcut(domain.KeyN, domain.ModCommand),
	})
	require.NoError(t, err)
	_, err = service.CreateBinding(ctx, CreateBindingParams{
		Command:  "say off",
		Disabled: true,
		Name:     "off",
		Shortcut: domain.NewShortcut(domain.KeyJ, domain.ModCommand),
	})
	require.NoError(t, err)

	provider := hotkeyadapter.NewMemory()
	manager := registry.NewManager(provider, domain.NewValidator(domain.DefaultValidationContext()))
	manager.Start()
	defer manager.Close()

	runner := &recordingRunner{ran: make(chan string, 1)}
	registrations, err := service.ApplyBindings(ctx, manager, runner)
	require.NoError(t, err)
	assert.Len(t, registrations, 1, "disabled bindings are not registered")
	assert.True(t, manager.IsRegistered(domain.NewShortcut(domain.KeyN, domain.ModCommand)))

	provider.Fire(1)
	assert.Equal(t, "say one", <-runner.ran)
}

func TestApplyBindingsRollsBackOnConflict(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	// Two bindings claiming the same shortcut value
	repo.bindings["a"] = domain.Binding{
		Command: "x", Enabled: true, Name: "a",
		Shortcut: domain.NewShortcut(domain.KeyN, domain.ModCommand),
	}
	repo.bindings["b"] = domain.Binding{
		Command: "y", Enabled: true, Name: "b",
		Shortcut: domain.NewShortcut(domain.KeyN, domain.ModCommand),
	}

	provider := hotkeyadapter.NewMemory()
	manager := registry.NewManager(provider, domain.NewValidator(domain.DefaultValidationContext()))
	manager.Start()
	defer manager.Close()

	runner := &recordingRunner{ran: make(chan string, 1)}
	_, err := service.ApplyBindings(ctx, manager, runner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAlreadyRegistered))
	assert.Empty(t, manager.Registered())
	assert.Equal(t, 0, provider.Live())
}

package application

import (
	"context"
	"fmt"

	"tecla/domain"
	"tecla/logging"
	"tecla/ports"
	"tecla/registry"
)

// BindingService orchestrates binding lifecycle operations: validation,
// persistence, and registration with a running manager.
type BindingService struct {
	repo      ports.BindingRepository
	validator domain.Validator
}

// NewBindingService creates a new BindingService
func NewBindingService(repo ports.BindingRepository, validator domain.Validator) *BindingService {
	return &BindingService{
		repo:      repo,
		validator: validator,
	}
}

// CreateBindingParams carries the inputs for CreateBinding
type CreateBindingParams struct {
	Command  string
	Disabled bool
	Name     string
	Shortcut domain.Shortcut
}

// CreateBinding validates the shortcut and persists a new binding
func (s *BindingService) CreateBinding(ctx context.Context, params CreateBindingParams) (*domain.Binding, error) {
	logging.Logger.Info("Creating binding",
		"name", params.Name,
		"shortcut", params.Shortcut.String(),
		"command", params.Command)

	if params.Name == "" {
		return nil, fmt.Errorf("binding name is required")
	}
	if params.Command == "" {
		return nil, fmt.Errorf("binding command is required")
	}
	if err := s.validator.Validate(params.Shortcut); err != nil {
		return nil, err
	}

	binding := domain.Binding{
		Command:  params.Command,
		Enabled:  !params.Disabled,
		Name:     params.Name,
		Shortcut: params.Shortcut,
	}
	if err := s.repo.Add(ctx, binding); err != nil {
		return nil, err
	}

	logging.Logger.Info("Binding created", "name", binding.Name)
	return &binding, nil
}

// ReplaceBinding deletes any existing binding with the same name and
// creates the new one. Used when the caller confirmed the overwrite.
func (s *BindingService) ReplaceBinding(ctx context.Context, params CreateBindingParams) (*domain.Binding, error) {
	if err := s.repo.Delete(ctx, params.Name); err != nil {
		// A missing binding is fine; replace degrades to create
		logging.Logger.Debug("No existing binding to replace", "name", params.Name, "error", err)
	}
	return s.CreateBinding(ctx, params)
}

// RemoveBinding deletes a binding by name
func (s *BindingService) RemoveBinding(ctx context.Context, name string) error {
	logging.Logger.Info("Removing binding", "name", name)
	return s.repo.Delete(ctx, name)
}

// GetBinding looks up one binding
func (s *BindingService) GetBinding(ctx context.Context, name string) (*domain.Binding, error) {
	return s.repo.Get(ctx, name)
}

// ListBindings returns all bindings, optionally including disabled ones
func (s *BindingService) ListBindings(ctx context.Context, includeDisabled bool) ([]domain.Binding, error) {
	return s.repo.List(ctx, includeDisabled)
}

// SetEnabled toggles a binding on or off
func (s *BindingService) SetEnabled(ctx context.Context, name string, enabled bool) error {
	logging.Logger.Info("Toggling binding", "name", name, "enabled", enabled)
	return s.repo.SetEnabled(ctx, name, enabled)
}

// UpdateShortcut validates and stores a new shortcut for a binding
func (s *BindingService) UpdateShortcut(ctx context.Context, name string, shortcut domain.Shortcut) error {
	if err := s.validator.Validate(shortcut); err != nil {
		return err
	}
	logging.Logger.Info("Updating binding shortcut", "name", name, "shortcut", shortcut.String())
	return s.repo.UpdateShortcut(ctx, name, shortcut)
}

// ApplyBindings registers every enabled binding with the manager, wiring
// each fire to the runner. Registration is all-or-nothing: a failure
// releases the shortcuts registered so far.
func (s *BindingService) ApplyBindings(ctx context.Context, manager *registry.Manager, runner ports.CommandRunner) ([]*registry.Registration, error) {
	bindings, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load bindings: %w", err)
	}

	claims := make([]registry.Claim, 0, len(bindings))
	for _, binding := range bindings {
		claims = append(claims, registry.Claim{
			Shortcut: binding.Shortcut,
			Action:   s.fireAction(binding, runner),
		})
	}

	registrations, err := manager.RegisterAll(claims)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Applied bindings", "count", len(registrations))
	return registrations, nil
}

// fireAction builds the action that runs a binding's command
func (s *BindingService) fireAction(binding domain.Binding, runner ports.CommandRunner) registry.Action {
	name := binding.Name
	command := binding.Command
	return func() {
		logging.Logger.Info("Shortcut fired", "binding", name)
		if err := runner.Run(name, command); err != nil {
			logging.Logger.Error("Failed to run binding command", "binding", name, "error", err)
		}
	}
}

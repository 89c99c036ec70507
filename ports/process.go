package ports

// CommandRunner launches a binding's shell command when its shortcut fires
type CommandRunner interface {
	// Run starts the command without waiting for it to finish
	Run(name, command string) error
}

package process

import (
	"os/exec"
	"runtime"

	"tecla/logging"
	"tecla/ports"
)

// ShellRunner runs binding commands through the user's shell
type ShellRunner struct{}

// Verify interface compliance at compile time
var _ ports.CommandRunner = (*ShellRunner)(nil)

// NewShellRunner creates a ShellRunner
func NewShellRunner() *ShellRunner {
	return &ShellRunner{}
}

// Run launches command in a shell without waiting for it; the exit status
// is logged when the process finishes.
func (r *ShellRunner) Run(name, command string) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", command)
	} else {
		cmd = exec.Command("sh", "-c", command)
	}

	if err := cmd.Start(); err != nil {
		logging.Logger.Error("Failed to start binding command",
			"binding", name,
			"command", command,
			"error", err)
		return err
	}

	logging.Logger.Info("Started binding command", "binding", name, "pid", cmd.Process.Pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Binding command exited with error",
				"binding", name,
				"error", err)
			return
		}
		logging.Logger.Debug("Binding command finished", "binding", name)
	}()

	return nil
}

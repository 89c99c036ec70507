package paths

import (
	"os"
	"path/filepath"
)

// GetTeclaHome returns TECLA_HOME or ~/.tecla default
func GetTeclaHome() string {
	teclaHome := os.Getenv("TECLA_HOME")
	if teclaHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tecla"
		}
		return filepath.Join(homeDir, ".tecla")
	}
	return ExpandPath(teclaHome)
}

// GetDBPath returns $TECLA_HOME/bindings.db
func GetDBPath() string {
	return filepath.Join(GetTeclaHome(), "bindings.db")
}

// GetSettingsPath returns $TECLA_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTeclaHome(), "settings.json")
}

// GetLockPath returns $TECLA_HOME/daemon.lock
func GetLockPath() string {
	return filepath.Join(GetTeclaHome(), "daemon.lock")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

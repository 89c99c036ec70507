package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"tecla/config"
	"tecla/domain"
	"tecla/logging"
	"tecla/paths"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DBPath      string           `help:"Path to SQLite bindings database (default $TECLA_HOME/bindings.db)" type:"path" env:"TECLA_DB_PATH"`
	Lenient     bool             `help:"Validate shortcuts with every restriction off" env:"TECLA_LENIENT"`

	Run      RunCmd      `cmd:"" help:"Start the daemon registering all enabled bindings (default)" default:"1"`
	Bind     BindCmd     `cmd:"bind" help:"Create a binding from a shortcut spec and a command"`
	Unbind   UnbindCmd   `cmd:"unbind" help:"Delete a binding"`
	List     ListCmd     `cmd:"list" help:"List bindings"`
	Bindings BindingsCmd `cmd:"bindings" help:"Browse and edit bindings in a TUI"`
	Validate ValidateCmd `cmd:"validate" help:"Check a shortcut spec against the validity policy"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the bindings browser over SSH"`

	// Internal field for settings (not a flag)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		// Apply DBPath setting; the flag's env tag already covers TECLA_DB_PATH
		if c.DBPath == "" && c.settings.DBPath != "" {
			c.DBPath = c.settings.DBPath
		}

		// Apply MaxLogFiles setting
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("TECLA_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TECLA_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		// Apply Lenient setting
		if !c.Lenient {
			if _, hasEnv := os.LookupEnv("TECLA_LENIENT"); !hasEnv {
				if c.settings.Lenient != nil && *c.settings.Lenient {
					c.Lenient = true
				}
			}
		}
	}

	if c.DBPath == "" {
		c.DBPath = paths.GetDBPath()
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes inherit
	// debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TECLA_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TECLA_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("TECLA_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}

// validationContext returns the context selected by flags and settings
func (c *CLI) validationContext() domain.ValidationContext {
	if c.Lenient {
		return domain.LenientValidationContext()
	}
	return domain.DefaultValidationContext()
}

// validator builds the validator used by every command, wiring in the
// user's reserved-shortcut list from settings
func (c *CLI) validator() domain.Validator {
	v := domain.NewValidator(c.validationContext())
	if c.settings != nil {
		v.Reserved = c.settings.ReservedFunc()
	}
	return v
}

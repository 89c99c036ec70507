// Package harness provides utilities for integration testing the tecla CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TECLA_HOME: Isolated per test (temp directory)
//   - TECLA_DEBUG: Disabled to reduce noise
package harness

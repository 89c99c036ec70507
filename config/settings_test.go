package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tecla/domain"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettingsFromPath(t *testing.T) {
	path := writeSettings(t, `{
		"db_path": "/tmp/test-bindings.db",
		"debug": true,
		"lenient": false,
		"max_log_files": 50,
		"ssh_host": "0.0.0.0",
		"ssh_port": "2345"
	}`)

	settings, err := LoadSettingsFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-bindings.db", settings.DBPath)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.Lenient)
	assert.False(t, *settings.Lenient)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 50, *settings.MaxLogFiles)
	assert.Equal(t, "0.0.0.0", settings.SSHHost)
	assert.Equal(t, "2345", settings.SSHPort)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettingsFromPath(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Empty(t, settings.DBPath)
	assert.Nil(t, settings.Debug)
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	path := writeSettings(t, `{not json`)
	_, err := LoadSettingsFromPath(path)
	assert.Error(t, err)
}

func TestStringArrayFormats(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []string
	}{
		{"array", `["cmd+space", "cmd+tab"]`, []string{"cmd+space", "cmd+tab"}},
		{"comma string", `"cmd+space, cmd+tab"`, []string{"cmd+space", "cmd+tab"}},
		{"single string", `"cmd+space"`, []string{"cmd+space"}},
		{"empty string", `""`, []string{}},
		{"empty array", `[]`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sa StringArray
			require.NoError(t, json.Unmarshal([]byte(tt.json), &sa))
			assert.Equal(t, StringArray(tt.want), sa)
		})
	}
}

func TestReservedFunc(t *testing.T) {
	settings := &Settings{ReservedShortcuts: StringArray{"cmd+space", "cmd+tab"}}
	reserved := settings.ReservedFunc()
	require.NotNil(t, reserved)

	assert.True(t, reserved(domain.NewShortcut(domain.KeySpace, domain.ModCommand)))
	assert.True(t, reserved(domain.NewShortcut(domain.KeyTab, domain.ModCommand)))
	assert.False(t, reserved(domain.NewShortcut(domain.KeyN, domain.ModCommand)))
}

func TestReservedFuncEmpty(t *testing.T) {
	assert.Nil(t, (&Settings{}).ReservedFunc())
}

func TestReservedFuncSkipsInvalidSpecs(t *testing.T) {
	settings := &Settings{ReservedShortcuts: StringArray{"not a key", "cmd+space"}}
	reserved := settings.ReservedFunc()
	require.NotNil(t, reserved)
	assert.True(t, reserved(domain.NewShortcut(domain.KeySpace, domain.ModCommand)))

	// Only invalid specs yields no predicate at all
	assert.Nil(t, (&Settings{ReservedShortcuts: StringArray{"not a key"}}).ReservedFunc())
}

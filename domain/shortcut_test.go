package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShortcutNormalizesModifiers(t *testing.T) {
	a := NewShortcut(KeyN, ModShift|ModCommand)
	b := NewShortcut(KeyN, ModShift|ModCommand|ModCapsLock|ModNumericPad)

	assert.Equal(t, a, b, "raw supersets reducing to the same canonical set compare equal")
}

func TestNoShortcutIsEmpty(t *testing.T) {
	assert.True(t, NoShortcut.IsEmpty())
	assert.Equal(t, "", NoShortcut.String())
	assert.False(t, NewShortcut(KeySpace, ModOption).IsEmpty())
}

func TestShortcutString(t *testing.T) {
	assert.Equal(t, "⇧⌘N", NewShortcut(KeyN, ModShift|ModCommand).String())
	assert.Equal(t, "F6", NewShortcut(KeyF6, 0).String())
	assert.Equal(t, "⌥Space", NewShortcut(KeySpace, ModOption).String())
}

func TestShortcutJSONRoundTrip(t *testing.T) {
	original := NewShortcut(KeyN, ModShift|ModCommand)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"keyCode":45,"modifierFlags":18}`, string(data))

	var decoded Shortcut
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestShortcutJSONRenormalizesOnDecode(t *testing.T) {
	var decoded Shortcut
	// Flags carrying caps-lock and numeric-pad bits on the wire
	require.NoError(t, json.Unmarshal([]byte(`{"keyCode":45,"modifierFlags":51}`), &decoded))
	assert.Equal(t, NewShortcut(KeyN, ModShift|ModCommand), decoded)
}

func TestEncodeRecord(t *testing.T) {
	record := NewShortcut(KeyN, ModCommand).EncodeRecord()
	assert.Equal(t, map[string]any{"keyCode": KeyN, "modifierFlags": uint(ModCommand)}, record)

	assert.Empty(t, NoShortcut.EncodeRecord())
}

func TestDecodeRecordToleratesBadInput(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
		want   Shortcut
	}{
		{"nil record", nil, NoShortcut},
		{"empty record", map[string]any{}, NoShortcut},
		{"missing key code", map[string]any{"modifierFlags": uint(ModCommand)}, NoShortcut},
		{"wrong value type", map[string]any{"keyCode": "45"}, NoShortcut},
		{"int values", map[string]any{"keyCode": 45, "modifierFlags": 18}, NewShortcut(KeyN, ModShift|ModCommand)},
		{"uint flags", map[string]any{"keyCode": 45, "modifierFlags": uint(18)}, NewShortcut(KeyN, ModShift|ModCommand)},
		{"json float values", map[string]any{"keyCode": float64(45), "modifierFlags": float64(18)}, NewShortcut(KeyN, ModShift|ModCommand)},
		{"missing flags", map[string]any{"keyCode": 45}, NewShortcut(KeyN, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeRecord(tt.record))
		})
	}
}

func TestEncodeDecodeRecordRoundTrip(t *testing.T) {
	original := NewShortcut(KeyF6, ModControl|ModOption)
	assert.Equal(t, original, DecodeRecord(original.EncodeRecord()))
	assert.Equal(t, NoShortcut, DecodeRecord(NoShortcut.EncodeRecord()))
}

func TestParseShortcut(t *testing.T) {
	tests := []struct {
		spec    string
		want    Shortcut
		wantErr bool
	}{
		{"cmd+shift+n", NewShortcut(KeyN, ModCommand|ModShift), false},
		{"ctrl+f5", NewShortcut(KeyF5, ModControl), false},
		{"opt+space", NewShortcut(KeySpace, ModOption), false},
		{"alt+esc", NewShortcut(KeyEscape, ModOption), false},
		{"f6", NewShortcut(KeyF6, 0), false},
		{"Cmd+Shift+N", NewShortcut(KeyN, ModCommand|ModShift), false},
		{"", NoShortcut, true},
		{"hyper+n", NoShortcut, true},
		{"cmd+nosuchkey", NoShortcut, true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseShortcut(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

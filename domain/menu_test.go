package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMenu() []MenuItem {
	return []MenuItem{
		{
			Title: "File",
			Items: []MenuItem{
				{Title: "New Window", KeyEquivalent: "n", Modifiers: ModCommand},
				{Title: "New Incognito Window", KeyEquivalent: "N", Modifiers: ModCommand},
				{Title: "Close Window", KeyEquivalent: "w", Modifiers: ModCommand | ModShift},
			},
		},
		{
			Title: "Edit",
			Items: []MenuItem{
				{Title: "Copy", KeyEquivalent: "c", Modifiers: ModCommand},
				{Title: "Paste and Match Style", KeyEquivalent: "v", Modifiers: ModCommand | ModOption | ModShift},
			},
		},
	}
}

func TestFindMenuConflictMatches(t *testing.T) {
	conflict, found := FindMenuConflict(sampleMenu(), NewShortcut(KeyC, ModCommand))
	require.True(t, found)
	assert.Equal(t, "Copy", conflict.Item)
}

func TestFindMenuConflictUppercaseImpliesShift(t *testing.T) {
	menu := sampleMenu()

	// ⇧⌘N matches the upper-case "N" equivalent whose mask only carries ⌘
	conflict, found := FindMenuConflict(menu, NewShortcut(KeyN, ModCommand|ModShift))
	require.True(t, found)
	assert.Equal(t, "New Incognito Window", conflict.Item)

	// ⌘N still matches the plain lower-case entry
	conflict, found = FindMenuConflict(menu, NewShortcut(KeyN, ModCommand))
	require.True(t, found)
	assert.Equal(t, "New Window", conflict.Item)
}

func TestFindMenuConflictExactModifierMatch(t *testing.T) {
	// ⌘W does not match Close Window, which needs ⇧⌘W
	_, found := FindMenuConflict(sampleMenu(), NewShortcut(KeyW, ModCommand))
	assert.False(t, found)

	conflict, found := FindMenuConflict(sampleMenu(), NewShortcut(KeyW, ModCommand|ModShift))
	require.True(t, found)
	assert.Equal(t, "Close Window", conflict.Item)
}

func TestFindMenuConflictSubmenusFirst(t *testing.T) {
	menu := []MenuItem{
		{
			Title:         "Outer",
			KeyEquivalent: "k",
			Modifiers:     ModCommand,
			Items: []MenuItem{
				{Title: "Inner", KeyEquivalent: "k", Modifiers: ModCommand},
			},
		},
	}

	conflict, found := FindMenuConflict(menu, NewShortcut(KeyK, ModCommand))
	require.True(t, found)
	assert.Equal(t, "Inner", conflict.Item)
}

func TestFindMenuConflictNonPrintableKey(t *testing.T) {
	// Function keys have no menu key equivalent and never conflict
	_, found := FindMenuConflict(sampleMenu(), NewShortcut(KeyF6, 0))
	assert.False(t, found)
}

func TestFindMenuConflictIgnoresEmptyEquivalents(t *testing.T) {
	menu := []MenuItem{
		{Title: "Separator-ish"},
		{Title: "Match", KeyEquivalent: "n", Modifiers: ModCommand},
	}
	conflict, found := FindMenuConflict(menu, NewShortcut(KeyN, ModCommand))
	require.True(t, found)
	assert.Equal(t, "Match", conflict.Item)
}

package domain

import (
	"fmt"
	"strings"
)

// MenuItem is one entry of an application menu tree, described by the data
// the conflict scan needs: its title, key equivalent, modifier mask, and
// submenu items.
type MenuItem struct {
	Title         string
	KeyEquivalent string
	Modifiers     Modifiers
	Items         []MenuItem
}

// MenuConflict names the menu item a shortcut collides with
type MenuConflict struct {
	Item string
}

func (c MenuConflict) String() string {
	return fmt.Sprintf("already used by menu item %q", c.Item)
}

// ServiceMenuConflict reports a collision with a Services menu entry.
// Services menu scanning needs live application data the library does not
// collect yet, so no code path produces this today; consumers can still
// switch on the type.
type ServiceMenuConflict struct {
	Item string
}

func (c ServiceMenuConflict) String() string {
	return fmt.Sprintf("already used by Services menu item %q", c.Item)
}

// FindMenuConflict walks a menu tree and reports the first item whose key
// equivalent matches the shortcut. Submenus are checked before the item
// itself and the first match wins. An upper-case key equivalent implicitly
// carries Shift, so Shift is added to the item's mask before comparing.
func FindMenuConflict(menu []MenuItem, s Shortcut) (MenuConflict, bool) {
	equivalent := KeyEquivalent(s.KeyCode)
	if equivalent == "" {
		return MenuConflict{}, false
	}
	mods := s.Modifiers.NormalizeWithFunction()

	for _, item := range menu {
		if len(item.Items) > 0 {
			if conflict, found := FindMenuConflict(item.Items, s); found {
				return conflict, true
			}
		}

		lowered := strings.ToLower(item.KeyEquivalent)
		if lowered == "" || lowered != equivalent {
			continue
		}

		itemMods := item.Modifiers.NormalizeWithFunction()
		if item.KeyEquivalent != lowered {
			// Upper-case key equivalent implies Shift
			itemMods |= ModShift
		}

		if itemMods == mods {
			return MenuConflict{Item: item.Title}, true
		}
	}

	return MenuConflict{}, false
}

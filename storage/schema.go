package storage

import (
	"time"

	"tecla/domain"
)

// Binding is the persisted form of a shortcut binding. The shortcut is
// stored as its serialized record fields (key code + modifier flags) so the
// row round-trips exactly through domain.Shortcut.
type Binding struct {
	Name          string `gorm:"primaryKey"`
	KeyCode       int    `gorm:"not null;default:-1"`
	ModifierFlags uint   `gorm:"not null;default:0"`
	Command       string `gorm:"not null;default:''"`
	Enabled       bool   `gorm:"not null;default:true;index:idx_enabled"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// toDomain converts a row to the domain entity, re-normalizing the stored
// modifier flags
func (b Binding) toDomain() domain.Binding {
	return domain.Binding{
		Command:     b.Command,
		Enabled:     b.Enabled,
		LastUpdated: b.UpdatedAt,
		Name:        b.Name,
		Shortcut:    domain.NewShortcut(b.KeyCode, domain.Modifiers(b.ModifierFlags)),
	}
}

// fromDomain converts a domain entity to its row form
func fromDomain(binding domain.Binding) Binding {
	return Binding{
		Name:          binding.Name,
		KeyCode:       binding.Shortcut.KeyCode,
		ModifierFlags: uint(binding.Shortcut.Modifiers),
		Command:       binding.Command,
		Enabled:       binding.Enabled,
	}
}

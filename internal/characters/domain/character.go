// Package domain holds the character entity and its field rules.
package domain

import (
	"strings"
	"time"
)

// Character is a stored game character.
type Character struct {
	ID        string
	Name      string
	Email     string
	Game      string
	Race      string
	Health    int
	Stamina   int
	Attack    int
	Defense   int
	Weapons   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateInput carries the raw fields of a creation request before
// normalization.
type CreateInput struct {
	Name    string
	Email   string
	Game    string
	Race    string
	Health  int
	Stamina int
	Attack  int
	Defense int
	Weapons []string
}

// NewCharacter normalizes a creation input into a storable character.
// Name and game are trimmed, email is trimmed and lower-cased, race is
// trimmed and may stay empty. Timestamps are stamped by the store.
func NewCharacter(input CreateInput) Character {
	weapons := make([]string, len(input.Weapons))
	copy(weapons, input.Weapons)

	return Character{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Game:    strings.TrimSpace(input.Game),
		Race:    strings.TrimSpace(input.Race),
		Health:  input.Health,
		Stamina: input.Stamina,
		Attack:  input.Attack,
		Defense: input.Defense,
		Weapons: weapons,
	}
}

// Patch describes a partial character update. Nil fields are absent and
// leave the stored value untouched; a nil Weapons slice means absent.
type Patch struct {
	Name    *string
	Email   *string
	Game    *string
	Race    *string
	Health  *int
	Stamina *int
	Attack  *int
	Defense *int
	Weapons []string
}

// isZero reports whether the patch carries no fields.
func (p Patch) isZero() bool {
	return p.Name == nil && p.Email == nil && p.Game == nil && p.Race == nil &&
		p.Health == nil && p.Stamina == nil && p.Attack == nil && p.Defense == nil &&
		p.Weapons == nil
}

// Normalize returns a copy of the patch with the same normalization rules
// applied as NewCharacter: trimmed strings and a lower-cased email.
func (p Patch) Normalize() Patch {
	out := p
	if p.Name != nil {
		v := strings.TrimSpace(*p.Name)
		out.Name = &v
	}
	if p.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*p.Email))
		out.Email = &v
	}
	if p.Game != nil {
		v := strings.TrimSpace(*p.Game)
		out.Game = &v
	}
	if p.Race != nil {
		v := strings.TrimSpace(*p.Race)
		out.Race = &v
	}
	if p.Weapons != nil {
		weapons := make([]string, len(p.Weapons))
		copy(weapons, p.Weapons)
		out.Weapons = weapons
	}
	return out
}

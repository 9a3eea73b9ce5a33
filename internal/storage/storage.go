// Package storage defines the persistence contracts for the characters
// service.
//
// It provides a high-level abstraction for storing characters and listing
// them by game or weapon. Implementations of these interfaces (e.g., using
// MongoDB) can be found in subpackages.
//
// # Error Types
//
// The package defines common error types used across storage implementations:
//   - ErrNotFound: Indicates a requested character is missing.
//   - ErrDuplicateEmail: Indicates a violation of the unique email index.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/zelda-characters/internal/characters/domain"
)

// ErrNotFound indicates a requested character is missing.
var ErrNotFound = errors.New("character not found")

// ErrDuplicateEmail indicates a violation of the unique email index.
var ErrDuplicateEmail = errors.New("email already exists")

// CharacterIterator walks a result set lazily so callers can stream items
// without materializing the full set. Close must always be called, including
// when iteration stops early.
type CharacterIterator interface {
	// Next advances to the next character. It returns false when the set is
	// exhausted, the context ends, or an error occurs; Err distinguishes.
	Next(ctx context.Context) bool
	// Character returns the current character after a successful Next.
	Character() domain.Character
	// Err reports the error that terminated iteration, if any.
	Err() error
	// Close releases the underlying cursor.
	Close(ctx context.Context) error
}

// CharacterStore persists character records.
type CharacterStore interface {
	// Insert stamps timestamps, stores the character, and returns it with
	// the store-assigned id. Returns ErrDuplicateEmail on email collision.
	Insert(ctx context.Context, character domain.Character) (domain.Character, error)
	// Get fetches a character by id. Returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (domain.Character, error)
	// Update applies the supplied patch fields, refreshes updated_at, and
	// returns the merged character. Returns ErrNotFound when the id does not
	// resolve and ErrDuplicateEmail on email collision.
	Update(ctx context.Context, id string, patch domain.Patch) (domain.Character, error)
	// Delete removes at most one character. Returns ErrNotFound when nothing
	// was removed.
	Delete(ctx context.Context, id string) error
	// ListByGame returns a lazy iterator over characters matching the game
	// exactly, capped at limit.
	ListByGame(ctx context.Context, game string, limit int) (CharacterIterator, error)
	// ListByWeapon returns all characters whose weapons contain weaponID,
	// eagerly materialized.
	ListByWeapon(ctx context.Context, weaponID string) ([]domain.Character, error)
}

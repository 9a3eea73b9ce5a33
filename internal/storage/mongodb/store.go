// Package mongodb provides a MongoDB-backed character store.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/zelda-characters/internal/characters/domain"
	"github.com/louisbranch/zelda-characters/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "characters"

// Store provides a MongoDB-backed character store.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
	clock      func() time.Time
}

// Open connects to MongoDB and binds the store to the characters collection
// of the provided database.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}
	if strings.TrimSpace(database) == "" {
		return nil, fmt.Errorf("mongo database is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	return &Store{
		client:     client,
		collection: client.Database(database).Collection(collectionName),
		clock:      time.Now,
	}, nil
}

// EnsureIndexes creates the unique email index and the game and weapons
// lookup indexes. It must complete before the server starts handling RPCs:
// email uniqueness is enforced only here, never re-checked in application
// logic.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "game", Value: 1}}},
		{Keys: bson.D{{Key: "weapons", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create character indexes: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Insert stamps timestamps and stores the character.
func (s *Store) Insert(ctx context.Context, character domain.Character) (domain.Character, error) {
	now := s.clock().UTC()
	character.CreatedAt = now
	character.UpdatedAt = now

	result, err := s.collection.InsertOne(ctx, docFromCharacter(character))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Character{}, storage.ErrDuplicateEmail
		}
		return domain.Character{}, fmt.Errorf("insert character: %w", err)
	}

	character.ID = idString(result.InsertedID)
	return character, nil
}

// Get fetches a character by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Character, error) {
	var doc characterDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": resolveID(id)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Character{}, storage.ErrNotFound
		}
		return domain.Character{}, fmt.Errorf("find character: %w", err)
	}
	return doc.toCharacter(), nil
}

// Update applies the patch fields and returns the merged character.
func (s *Store) Update(ctx context.Context, id string, patch domain.Patch) (domain.Character, error) {
	key := resolveID(id)

	// Existence first so an absent id maps to not-found rather than a no-op.
	if err := s.collection.FindOne(ctx, bson.M{"_id": key}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Character{}, storage.ErrNotFound
		}
		return domain.Character{}, fmt.Errorf("find character: %w", err)
	}

	set := bson.M{"updated_at": s.clock().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Game != nil {
		set["game"] = *patch.Game
	}
	if patch.Race != nil {
		set["race"] = *patch.Race
	}
	if patch.Health != nil {
		set["health"] = *patch.Health
	}
	if patch.Stamina != nil {
		set["stamina"] = *patch.Stamina
	}
	if patch.Attack != nil {
		set["attack"] = *patch.Attack
	}
	if patch.Defense != nil {
		set["defense"] = *patch.Defense
	}
	if patch.Weapons != nil {
		set["weapons"] = patch.Weapons
	}

	if _, err := s.collection.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": set}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Character{}, storage.ErrDuplicateEmail
		}
		return domain.Character{}, fmt.Errorf("update character: %w", err)
	}

	var doc characterDoc
	if err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		return domain.Character{}, fmt.Errorf("reload character: %w", err)
	}
	return doc.toCharacter(), nil
}

// Delete removes at most one character.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": resolveID(id)})
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	if result.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListByGame returns a lazy cursor-backed iterator over characters of a game.
func (s *Store) ListByGame(ctx context.Context, game string, limit int) (storage.CharacterIterator, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"game": game}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("find characters by game: %w", err)
	}
	return &characterCursor{cursor: cursor}, nil
}

// ListByWeapon returns all characters carrying the weapon id. The fan-out is
// typically small, so the result is materialized eagerly.
func (s *Store) ListByWeapon(ctx context.Context, weaponID string) ([]domain.Character, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"weapons": weaponID})
	if err != nil {
		return nil, fmt.Errorf("find characters by weapon: %w", err)
	}

	var docs []characterDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode characters: %w", err)
	}

	characters := make([]domain.Character, 0, len(docs))
	for _, doc := range docs {
		characters = append(characters, doc.toCharacter())
	}
	return characters, nil
}

// characterCursor adapts a Mongo cursor to storage.CharacterIterator.
type characterCursor struct {
	cursor  *mongo.Cursor
	current domain.Character
	err     error
}

// Next advances the cursor and decodes the next document.
func (c *characterCursor) Next(ctx context.Context) bool {
	if c.err != nil {
		return false
	}
	if !c.cursor.Next(ctx) {
		c.err = c.cursor.Err()
		return false
	}

	var doc characterDoc
	if err := c.cursor.Decode(&doc); err != nil {
		c.err = fmt.Errorf("decode character: %w", err)
		return false
	}
	c.current = doc.toCharacter()
	return true
}

// Character returns the current character.
func (c *characterCursor) Character() domain.Character {
	return c.current
}

// Err reports the error that terminated iteration, if any.
func (c *characterCursor) Err() error {
	return c.err
}

// Close releases the underlying Mongo cursor.
func (c *characterCursor) Close(ctx context.Context) error {
	return c.cursor.Close(ctx)
}

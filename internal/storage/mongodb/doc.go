package mongodb

import (
	"fmt"
	"time"

	"github.com/louisbranch/zelda-characters/internal/characters/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// characterDoc is the stored document shape. The _id is either a
// store-assigned ObjectID or an opaque string key.
type characterDoc struct {
	ID        any       `bson:"_id,omitempty"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Game      string    `bson:"game"`
	Race      string    `bson:"race"`
	Health    int       `bson:"health"`
	Stamina   int       `bson:"stamina"`
	Attack    int       `bson:"attack"`
	Defense   int       `bson:"defense"`
	Weapons   []string  `bson:"weapons"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// resolveID maps a request id to its stored _id form once, at the gateway
// boundary: canonical 24-hex ids become ObjectIDs, anything else is used as
// an opaque string key.
func resolveID(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

// idString renders a stored _id back to its wire form.
func idString(raw any) string {
	switch v := raw.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// docFromCharacter maps the domain entity to its stored shape. An empty id
// is omitted so Mongo assigns an ObjectID; weapons are stored as an empty
// array rather than null.
func docFromCharacter(character domain.Character) characterDoc {
	doc := characterDoc{
		Name:      character.Name,
		Email:     character.Email,
		Game:      character.Game,
		Race:      character.Race,
		Health:    character.Health,
		Stamina:   character.Stamina,
		Attack:    character.Attack,
		Defense:   character.Defense,
		Weapons:   character.Weapons,
		CreatedAt: character.CreatedAt,
		UpdatedAt: character.UpdatedAt,
	}
	if character.ID != "" {
		doc.ID = resolveID(character.ID)
	}
	if doc.Weapons == nil {
		doc.Weapons = []string{}
	}
	return doc
}

// toCharacter maps a stored document back to the domain entity.
func (d characterDoc) toCharacter() domain.Character {
	return domain.Character{
		ID:        idString(d.ID),
		Name:      d.Name,
		Email:     d.Email,
		Game:      d.Game,
		Race:      d.Race,
		Health:    d.Health,
		Stamina:   d.Stamina,
		Attack:    d.Attack,
		Defense:   d.Defense,
		Weapons:   d.Weapons,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

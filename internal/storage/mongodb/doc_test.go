package mongodb

import (
	"reflect"
	"testing"
	"time"

	"github.com/louisbranch/zelda-characters/internal/characters/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveIDObjectID(t *testing.T) {
	hex := "507f1f77bcf86cd799439011"

	resolved := resolveID(hex)
	oid, ok := resolved.(primitive.ObjectID)
	if !ok {
		t.Fatalf("expected ObjectID, got %T", resolved)
	}
	if oid.Hex() != hex {
		t.Fatalf("expected %s, got %s", hex, oid.Hex())
	}
}

func TestResolveIDOpaqueString(t *testing.T) {
	tests := []string{
		"abc123",
		"not-a-hex-id",
		"507f1f77bcf86cd79943901",   // 23 chars
		"507f1f77bcf86cd7994390111", // 25 chars
		"zzzf1f77bcf86cd799439011",  // non-hex
	}
	for _, id := range tests {
		if resolved, ok := resolveID(id).(string); !ok || resolved != id {
			t.Fatalf("expected %q to pass through, got %v", id, resolveID(id))
		}
	}
}

func TestIDString(t *testing.T) {
	oid := primitive.NewObjectID()
	if got := idString(oid); got != oid.Hex() {
		t.Fatalf("expected %s, got %s", oid.Hex(), got)
	}
	if got := idString("plain-key"); got != "plain-key" {
		t.Fatalf("expected plain-key, got %s", got)
	}
}

func TestDocRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	character := domain.Character{
		ID:        "507f1f77bcf86cd799439011",
		Name:      "Link",
		Email:     "link@hyrule.com",
		Game:      "Breath of the Wild",
		Race:      "Hylian",
		Health:    100,
		Stamina:   80,
		Attack:    60,
		Defense:   40,
		Weapons:   []string{"master-sword", "bow"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := docFromCharacter(character).toCharacter()
	if !reflect.DeepEqual(got, character) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, character)
	}
}

func TestDocFromCharacterOmitsEmptyID(t *testing.T) {
	doc := docFromCharacter(domain.Character{Name: "Zelda"})
	if doc.ID != nil {
		t.Fatalf("expected nil id, got %v", doc.ID)
	}
}

func TestDocFromCharacterNilWeapons(t *testing.T) {
	doc := docFromCharacter(domain.Character{Name: "Zelda"})
	if doc.Weapons == nil {
		t.Fatal("expected empty weapons slice, got nil")
	}
	if len(doc.Weapons) != 0 {
		t.Fatalf("expected no weapons, got %v", doc.Weapons)
	}
}

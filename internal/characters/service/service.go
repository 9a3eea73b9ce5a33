// Package service implements the CharacterService gRPC API on top of a
// character store.
package service

import (
	"time"

	pb "github.com/louisbranch/zelda-characters/api/gen/go/characters/v1"
	"github.com/louisbranch/zelda-characters/internal/characters/domain"
	"github.com/louisbranch/zelda-characters/internal/platform/grpc/pagination"
	"github.com/louisbranch/zelda-characters/internal/storage"
)

// Streaming list limits. A zero limit on the wire selects the default; the
// ceiling is applied silently.
const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

var listLimits = pagination.LimitConfig{Default: defaultListLimit, Max: maxListLimit}

// CharacterService implements pb.CharacterServiceServer.
type CharacterService struct {
	pb.UnimplementedCharacterServiceServer

	store storage.CharacterStore
}

// NewCharacterService creates the service with its backing store.
func NewCharacterService(store storage.CharacterStore) *CharacterService {
	return &CharacterService{store: store}
}

func characterToProto(character domain.Character) *pb.CharacterResponse {
	return &pb.CharacterResponse{
		Id:        character.ID,
		Name:      character.Name,
		Email:     character.Email,
		Game:      character.Game,
		Race:      character.Race,
		Health:    int32(character.Health),
		Stamina:   int32(character.Stamina),
		Attack:    int32(character.Attack),
		Defense:   int32(character.Defense),
		Weapons:   character.Weapons,
		CreatedAt: character.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: character.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func createInputFromProto(req *pb.CreateCharacterRequest) domain.CreateInput {
	return domain.CreateInput{
		Name:    req.GetName(),
		Email:   req.GetEmail(),
		Game:    req.GetGame(),
		Race:    req.GetRace(),
		Health:  int(req.GetHealth()),
		Stamina: int(req.GetStamina()),
		Attack:  int(req.GetAttack()),
		Defense: int(req.GetDefense()),
		Weapons: req.GetWeapons(),
	}
}

func patchFromProto(req *pb.UpdateCharacterRequest) domain.Patch {
	patch := domain.Patch{
		Name:    req.Name,
		Email:   req.Email,
		Game:    req.Game,
		Race:    req.Race,
		Weapons: req.Weapons,
	}
	if req.Health != nil {
		v := int(*req.Health)
		patch.Health = &v
	}
	if req.Stamina != nil {
		v := int(*req.Stamina)
		patch.Stamina = &v
	}
	if req.Attack != nil {
		v := int(*req.Attack)
		patch.Attack = &v
	}
	if req.Defense != nil {
		v := int(*req.Defense)
		patch.Defense = &v
	}
	return patch
}

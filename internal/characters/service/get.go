package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	pb "github.com/louisbranch/zelda-characters/api/gen/go/characters/v1"
	apperrors "github.com/louisbranch/zelda-characters/internal/errors"
	"github.com/louisbranch/zelda-characters/internal/storage"
)

// GetCharacter returns a single character by id.
func (s *CharacterService) GetCharacter(ctx context.Context, req *pb.GetCharacterRequest) (*pb.CharacterResponse, error) {
	id := req.GetId()
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeValidation, "Character ID is required"))
	}

	character, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.HandleError(apperrors.New(apperrors.CodeNotFound,
				fmt.Sprintf("Character with ID %s not found", id)))
		}
		log.Printf("get character %s: %v", id, err)
		return nil, apperrors.HandleError(apperrors.Wrap(apperrors.CodeStorage,
			fmt.Sprintf("Failed to fetch character: %v", err), err))
	}

	return characterToProto(character), nil
}

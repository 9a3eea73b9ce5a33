package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	pb "github.com/louisbranch/zelda-characters/api/gen/go/characters/v1"
	"github.com/louisbranch/zelda-characters/internal/characters/domain"
	apperrors "github.com/louisbranch/zelda-characters/internal/errors"
	"github.com/louisbranch/zelda-characters/internal/storage"
)

// UpdateCharacter applies a partial update. Absent fields leave stored
// values untouched; present fields must pass the same rules as creation.
func (s *CharacterService) UpdateCharacter(ctx context.Context, req *pb.UpdateCharacterRequest) (*pb.CharacterResponse, error) {
	id := req.GetId()
	patch := patchFromProto(req)

	if err := domain.ValidateUpdate(id, patch); err != nil {
		return nil, apperrors.HandleError(err)
	}

	character, err := s.store.Update(ctx, id, patch.Normalize())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, apperrors.HandleError(apperrors.New(apperrors.CodeNotFound,
				fmt.Sprintf("Character with ID %s not found", id)))
		case errors.Is(err, storage.ErrDuplicateEmail):
			return nil, apperrors.HandleError(apperrors.New(apperrors.CodeDuplicateEmail,
				fmt.Sprintf("Email %s is already in use", req.GetEmail())))
		default:
			log.Printf("update character %s: %v", id, err)
			return nil, apperrors.HandleError(apperrors.Wrap(apperrors.CodeStorage,
				fmt.Sprintf("Failed to update character: %v", err), err))
		}
	}

	return characterToProto(character), nil
}

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

// DeleteCharacter removes a character permanently. The gRPC status is the
// canonical outcome signal; the response body is only sent on success.
func (s *CharacterService) DeleteCharacter(ctx context.Context, req *pb.DeleteCharacterRequest) (*pb.DeleteResponse, error) {
	id := req.GetId()
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeValidation, "Character ID is required"))
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.HandleError(apperrors.New(apperrors.CodeNotFound,
				fmt.Sprintf("Character with ID %s not found", id)))
		}
		log.Printf("delete character %s: %v", id, err)
		return nil, apperrors.HandleError(apperrors.Wrap(apperrors.CodeStorage,
			fmt.Sprintf("Failed to delete character: %v", err), err))
	}

	return &pb.DeleteResponse{
		Success: true,
		Message: fmt.Sprintf("Character %s deleted successfully", id),
	}, nil
}

package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	pb "github.com/louisbranch/zelda-characters/api/gen/go/characters/v1"
	"github.com/louisbranch/zelda-characters/internal/characters/domain"
	apperrors "github.com/louisbranch/zelda-characters/internal/errors"
	"github.com/louisbranch/zelda-characters/internal/platform/grpc/pagination"
	"google.golang.org/grpc"
)

// ListCharactersByGame streams characters matching a game, one message per
// match, as the store cursor advances.
func (s *CharacterService) ListCharactersByGame(req *pb.ListCharactersRequest, stream grpc.ServerStreamingServer[pb.CharacterResponse]) error {
	// The filter is matched verbatim; stored games are trimmed at creation,
	// so a padded filter finds nothing.
	game := req.GetGame()
	if err := domain.ValidateRequiredField(game, "Game", 1); err != nil {
		return apperrors.HandleError(err)
	}

	ctx := stream.Context()
	limit := pagination.ClampLimit(req.GetLimit(), listLimits)

	it, err := s.store.ListByGame(ctx, game, limit)
	if err != nil {
		log.Printf("list characters by game %s: %v", game, err)
		return apperrors.HandleError(apperrors.Wrap(apperrors.CodeStorage,
			fmt.Sprintf("Failed to list characters: %v", err), err))
	}
	defer it.Close(ctx)

	for it.Next(ctx) {
		if err := stream.Send(characterToProto(it.Character())); err != nil {
			// Client went away; the transport error is already the status.
			return err
		}
	}
	if err := it.Err(); err != nil {
		log.Printf("list characters by game %s: %v", game, err)
		return apperrors.HandleError(apperrors.Wrap(apperrors.CodeStorage,
			fmt.Sprintf("Failed to list characters: %v", err), err))
	}
	return nil
}

// ListCharactersByWeapon returns all characters carrying a weapon id.
func (s *CharacterService) ListCharactersByWeapon(ctx context.Context, req *pb.WeaponFilterRequest) (*pb.CharacterListResponse, error) {
	weaponID := strings.TrimSpace(req.GetWeaponId())
	if weaponID == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeValidation, "Weapon ID is required"))
	}

	characters, err := s.store.ListByWeapon(ctx, weaponID)
	if err != nil {
		log.Printf("list characters by weapon %s: %v", weaponID, err)
		return nil, apperrors.HandleError(apperrors.Wrap(apperrors.CodeStorage,
			fmt.Sprintf("Failed to list characters: %v", err), err))
	}

	resp := &pb.CharacterListResponse{
		Characters: make([]*pb.CharacterResponse, 0, len(characters)),
	}
	for _, character := range characters {
		resp.Characters = append(resp.Characters, characterToProto(character))
	}
	return resp, nil
}

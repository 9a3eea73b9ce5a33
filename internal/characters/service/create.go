package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	pb "github.com/louisbranch/zelda-characters/api/gen/go/characters/v1"
	"github.com/louisbranch/zelda-characters/internal/characters/domain"
	apperrors "github.com/louisbranch/zelda-characters/internal/errors"
	"github.com/louisbranch/zelda-characters/internal/storage"
	"google.golang.org/grpc"
)

// CreateCharacter validates and stores a new character.
func (s *CharacterService) CreateCharacter(ctx context.Context, req *pb.CreateCharacterRequest) (*pb.CharacterResponse, error) {
	input := createInputFromProto(req)

	if err := domain.ValidateCreate(input); err != nil {
		return nil, apperrors.HandleError(err)
	}

	character, err := s.store.Insert(ctx, domain.NewCharacter(input))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, apperrors.HandleError(apperrors.New(apperrors.CodeDuplicateEmail,
				fmt.Sprintf("Character with email %s already exists", input.Email)))
		}
		log.Printf("insert character: %v", err)
		return nil, apperrors.HandleError(apperrors.Wrap(apperrors.CodeStorage,
			fmt.Sprintf("Failed to create character: %v", err), err))
	}

	return characterToProto(character), nil
}

// CreateCharactersBatch ingests a client stream of creation requests. Each
// item is validated and inserted independently; failures are collected into
// the summary instead of aborting the stream.
func (s *CharacterService) CreateCharactersBatch(stream grpc.ClientStreamingServer[pb.CreateCharacterRequest, pb.BatchResponse]) error {
	ctx := stream.Context()
	summary := &pb.BatchResponse{}

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return stream.SendAndClose(summary)
		}
		if err != nil {
			return err
		}

		input := createInputFromProto(req)
		label := input.Name
		if label == "" {
			label = "Unknown"
		}

		if err := domain.ValidateCreate(input); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", label, err.Error()))
			continue
		}

		character := domain.NewCharacter(input)
		inserted, err := s.store.Insert(ctx, character)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateEmail) {
				summary.Errors = append(summary.Errors,
					fmt.Sprintf("%s: Email %s already exists", label, character.Email))
				continue
			}
			log.Printf("batch insert character %s: %v", label, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", label, err))
			continue
		}

		summary.CreatedCount++
		summary.CreatedIds = append(summary.CreatedIds, inserted.ID)
	}
}

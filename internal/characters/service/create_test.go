package service

import (
	"context"
	"errors"
	"testing"

	pb "github.com/louisbranch/zelda-characters/api/gen/go/characters/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCreateCharacter(t *testing.T) {
	svc := NewCharacterService(newFakeStore())

	req := validCreateRequest()
	req.Name = "  Link  "
	req.Email = "LINK@Hyrule.COM"

	resp, err := svc.CreateCharacter(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetId() == "" {
		t.Fatal("expected assigned id")
	}
	if resp.GetName() != "Link" {
		t.Fatalf("expected trimmed name, got %q", resp.GetName())
	}
	if resp.GetEmail() != "link@hyrule.com" {
		t.Fatalf("expected normalized email, got %q", resp.GetEmail())
	}
	if resp.GetCreatedAt() == "" || resp.GetUpdatedAt() == "" {
		t.Fatal("expected stamped timestamps")
	}
}

func TestCreateCharacterValidation(t *testing.T) {
	svc := NewCharacterService(newFakeStore())

	tests := []struct {
		name    string
		mutate  func(*pb.CreateCharacterRequest)
		wantMsg string
	}{
		{
			name:    "missing name",
			mutate:  func(r *pb.CreateCharacterRequest) { r.Name = "" },
			wantMsg: "Name is required",
		},
		{
			name:    "short name",
			mutate:  func(r *pb.CreateCharacterRequest) { r.Name = "L" },
			wantMsg: "Name must be at least 2 characters",
		},
		{
			name:    "bad email",
			mutate:  func(r *pb.CreateCharacterRequest) { r.Email = "nope" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "padded email",
			mutate:  func(r *pb.CreateCharacterRequest) { r.Email = " link@hyrule.com " },
			wantMsg: "Invalid email format",
		},
		{
			name:    "missing game",
			mutate:  func(r *pb.CreateCharacterRequest) { r.Game = "" },
			wantMsg: "Game is required",
		},
		{
			name:    "health out of range",
			mutate:  func(r *pb.CreateCharacterRequest) { r.Health = 1000 },
			wantMsg: "Health must be between 1 and 999",
		},
		{
			name:    "zero defense",
			mutate:  func(r *pb.CreateCharacterRequest) { r.Defense = 0 },
			wantMsg: "Defense must be between 1 and 999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.CreateCharacter(context.Background(), req)
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("expected InvalidArgument, got %v", err)
			}
			if status.Convert(err).Message() != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, status.Convert(err).Message())
			}
		})
	}
}

func TestCreateCharacterDuplicateEmail(t *testing.T) {
	svc := NewCharacterService(newFakeStore())
	mustCreate(svc, validCreateRequest())

	dup := validCreateRequest()
	dup.Name = "Dark Link"

	_, err := svc.CreateCharacter(context.Background(), dup)
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
	if status.Convert(err).Message() != "Character with email link@hyrule.com already exists" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCreateCharacterStoreFault(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("write concern failed")
	svc := NewCharacterService(store)

	_, err := svc.CreateCharacter(context.Background(), validCreateRequest())
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestCreateCharactersBatch(t *testing.T) {
	store := newFakeStore()
	svc := NewCharacterService(store)

	zelda := validCreateRequest()
	zelda.Name = "Zelda"
	zelda.Email = "zelda@hyrule.com"

	ganon := validCreateRequest()
	ganon.Name = "Ganondorf"
	ganon.Email = "ganon@gerudo.com"

	invalid := validCreateRequest()
	invalid.Name = ""
	invalid.Email = "nameless@hyrule.com"

	duplicate := validCreateRequest()
	duplicate.Name = "Dark Link"

	stream := &batchStream{reqs: []*pb.CreateCharacterRequest{
		validCreateRequest(), zelda, ganon, invalid, duplicate,
	}}

	if err := svc.CreateCharactersBatch(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stream.summary == nil {
		t.Fatal("expected summary response")
	}
	if stream.summary.GetCreatedCount() != 3 {
		t.Fatalf("expected 3 created, got %d", stream.summary.GetCreatedCount())
	}
	if len(stream.summary.GetCreatedIds()) != 3 {
		t.Fatalf("expected 3 ids, got %v", stream.summary.GetCreatedIds())
	}
	if len(stream.summary.GetErrors()) != 2 {
		t.Fatalf("expected 2 errors, got %v", stream.summary.GetErrors())
	}
	if stream.summary.GetErrors()[0] != "Unknown: Name is required" {
		t.Fatalf("unexpected validation entry: %q", stream.summary.GetErrors()[0])
	}
	if stream.summary.GetErrors()[1] != "Dark Link: Email link@hyrule.com already exists" {
		t.Fatalf("unexpected duplicate entry: %q", stream.summary.GetErrors()[1])
	}
	if len(store.characters) != 3 {
		t.Fatalf("expected 3 stored characters, got %d", len(store.characters))
	}
}

func TestCreateCharactersBatchEmptyStream(t *testing.T) {
	svc := NewCharacterService(newFakeStore())
	stream := &batchStream{}

	if err := svc.CreateCharactersBatch(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stream.summary.GetCreatedCount() != 0 || len(stream.summary.GetErrors()) != 0 {
		t.Fatalf("expected empty summary, got %+v", stream.summary)
	}
}

func TestCreateCharactersBatchStoreFaultContinues(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("socket closed")
	svc := NewCharacterService(store)

	stream := &batchStream{reqs: []*pb.CreateCharacterRequest{validCreateRequest()}}
	if err := svc.CreateCharactersBatch(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stream.summary.GetCreatedCount() != 0 {
		t.Fatalf("expected no creations, got %d", stream.summary.GetCreatedCount())
	}
	if len(stream.summary.GetErrors()) != 1 {
		t.Fatalf("expected 1 error entry, got %v", stream.summary.GetErrors())
	}
}

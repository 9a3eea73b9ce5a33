package service

import (
	"context"
	"errors"
	"testing"

	pb "github.com/louisbranch/zelda-characters/api/gen/go/characters/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGetCharacter(t *testing.T) {
	store := newFakeStore()
	svc := NewCharacterService(store)
	created := mustCreate(svc, validCreateRequest())

	resp, err := svc.GetCharacter(context.Background(), &pb.GetCharacterRequest{Id: created.GetId()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetName() != "Link" {
		t.Fatalf("expected Link, got %q", resp.GetName())
	}
	if resp.GetEmail() != "link@hyrule.com" {
		t.Fatalf("expected normalized email, got %q", resp.GetEmail())
	}
	if resp.GetCreatedAt() != "2024-05-01T12:00:00Z" {
		t.Fatalf("expected RFC 3339 created_at, got %q", resp.GetCreatedAt())
	}
}

func TestGetCharacterMissingID(t *testing.T) {
	svc := NewCharacterService(newFakeStore())

	_, err := svc.GetCharacter(context.Background(), &pb.GetCharacterRequest{Id: "  "})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if status.Convert(err).Message() != "Character ID is required" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestGetCharacterNotFound(t *testing.T) {
	svc := NewCharacterService(newFakeStore())

	_, err := svc.GetCharacter(context.Background(), &pb.GetCharacterRequest{Id: "ghost"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if status.Convert(err).Message() != "Character with ID ghost not found" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestGetCharacterStoreFault(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection reset")
	svc := NewCharacterService(store)

	_, err := svc.GetCharacter(context.Background(), &pb.GetCharacterRequest{Id: "id-1"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

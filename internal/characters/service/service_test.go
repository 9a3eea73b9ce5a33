package service

import (
	"context"
	"fmt"
	"io"
	"time"

	pb "github.com/louisbranch/zelda-characters/api/gen/go/characters/v1"
	"github.com/louisbranch/zelda-characters/internal/characters/domain"
	"github.com/louisbranch/zelda-characters/internal/storage"
	"google.golang.org/grpc"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// fakeStore is an in-memory storage.CharacterStore with injectable faults
// and a fixed clock.
type fakeStore struct {
	characters map[string]domain.Character
	nextID     int

	lastGame  string
	lastLimit int
	lastIter  *sliceIterator

	insertErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error
	iterErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{characters: make(map[string]domain.Character)}
}

func (f *fakeStore) Insert(_ context.Context, character domain.Character) (domain.Character, error) {
	if f.insertErr != nil {
		return domain.Character{}, f.insertErr
	}
	for _, existing := range f.characters {
		if existing.Email == character.Email {
			return domain.Character{}, storage.ErrDuplicateEmail
		}
	}
	f.nextID++
	character.ID = fmt.Sprintf("id-%d", f.nextID)
	character.CreatedAt = fixedTime
	character.UpdatedAt = fixedTime
	f.characters[character.ID] = character
	return character, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (domain.Character, error) {
	if f.getErr != nil {
		return domain.Character{}, f.getErr
	}
	character, ok := f.characters[id]
	if !ok {
		return domain.Character{}, storage.ErrNotFound
	}
	return character, nil
}

func (f *fakeStore) Update(_ context.Context, id string, patch domain.Patch) (domain.Character, error) {
	if f.updateErr != nil {
		return domain.Character{}, f.updateErr
	}
	character, ok := f.characters[id]
	if !ok {
		return domain.Character{}, storage.ErrNotFound
	}
	if patch.Email != nil {
		for otherID, existing := range f.characters {
			if otherID != id && existing.Email == *patch.Email {
				return domain.Character{}, storage.ErrDuplicateEmail
			}
		}
		character.Email = *patch.Email
	}
	if patch.Name != nil {
		character.Name = *patch.Name
	}
	if patch.Game != nil {
		character.Game = *patch.Game
	}
	if patch.Race != nil {
		character.Race = *patch.Race
	}
	if patch.Health != nil {
		character.Health = *patch.Health
	}
	if patch.Stamina != nil {
		character.Stamina = *patch.Stamina
	}
	if patch.Attack != nil {
		character.Attack = *patch.Attack
	}
	if patch.Defense != nil {
		character.Defense = *patch.Defense
	}
	if patch.Weapons != nil {
		character.Weapons = patch.Weapons
	}
	character.UpdatedAt = fixedTime.Add(time.Hour)
	f.characters[id] = character
	return character, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.characters[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.characters, id)
	return nil
}

func (f *fakeStore) ListByGame(_ context.Context, game string, limit int) (storage.CharacterIterator, error) {
	f.lastGame = game
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	var items []domain.Character
	for _, character := range f.characters {
		if character.Game == game && len(items) < limit {
			items = append(items, character)
		}
	}
	f.lastIter = &sliceIterator{items: items, failWith: f.iterErr}
	return f.lastIter, nil
}

func (f *fakeStore) ListByWeapon(_ context.Context, weaponID string) ([]domain.Character, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var items []domain.Character
	for _, character := range f.characters {
		for _, weapon := range character.Weapons {
			if weapon == weaponID {
				items = append(items, character)
				break
			}
		}
	}
	return items, nil
}

// sliceIterator walks a fixed slice, optionally failing after exhaustion.
type sliceIterator struct {
	items    []domain.Character
	idx      int
	failWith error
	err      error
	closed   bool
}

func (it *sliceIterator) Next(context.Context) bool {
	if it.idx >= len(it.items) {
		it.err = it.failWith
		return false
	}
	it.idx++
	return true
}

func (it *sliceIterator) Character() domain.Character {
	return it.items[it.idx-1]
}

func (it *sliceIterator) Err() error {
	return it.err
}

func (it *sliceIterator) Close(context.Context) error {
	it.closed = true
	return nil
}

func validCreateRequest() *pb.CreateCharacterRequest {
	return &pb.CreateCharacterRequest{
		Name:    "Link",
		Email:   "link@hyrule.com",
		Game:    "Breath of the Wild",
		Race:    "Hylian",
		Health:  100,
		Stamina: 80,
		Attack:  60,
		Defense: 40,
		Weapons: []string{"master-sword"},
	}
}

func mustCreate(s *CharacterService, req *pb.CreateCharacterRequest) *pb.CharacterResponse {
	resp, err := s.CreateCharacter(context.Background(), req)
	if err != nil {
		panic(fmt.Sprintf("seed character: %v", err))
	}
	return resp
}

// batchStream feeds canned requests to CreateCharactersBatch and captures
// the summary.
type batchStream struct {
	grpc.ServerStream
	ctx     context.Context
	reqs    []*pb.CreateCharacterRequest
	summary *pb.BatchResponse
}

func (s *batchStream) Context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

func (s *batchStream) Recv() (*pb.CreateCharacterRequest, error) {
	if len(s.reqs) == 0 {
		return nil, io.EOF
	}
	req := s.reqs[0]
	s.reqs = s.reqs[1:]
	return req, nil
}

func (s *batchStream) SendAndClose(summary *pb.BatchResponse) error {
	s.summary = summary
	return nil
}

// listStream captures server-streamed responses. The onSend hook runs before
// each message is recorded and can reject it.
type listStream struct {
	grpc.ServerStream
	ctx    context.Context
	sent   []*pb.CharacterResponse
	onSend func(*pb.CharacterResponse) error
}

func (s *listStream) Context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

func (s *listStream) Send(resp *pb.CharacterResponse) error {
	if s.onSend != nil {
		if err := s.onSend(resp); err != nil {
			return err
		}
	}
	s.sent = append(s.sent, resp)
	return nil
}

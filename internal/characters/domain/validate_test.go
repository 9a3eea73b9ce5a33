package domain

import (
	"strings"
	"testing"

	apperrors "github.com/louisbranch/zelda-characters/internal/errors"
)

func validInput() CreateInput {
	return CreateInput{
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

func TestValidateCreateValid(t *testing.T) {
	if err := ValidateCreate(validInput()); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidateCreateFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateInput)
		wantMsg string
	}{
		{
			name:    "empty name",
			mutate:  func(in *CreateInput) { in.Name = "" },
			wantMsg: "Name is required",
		},
		{
			name:    "whitespace name",
			mutate:  func(in *CreateInput) { in.Name = "   " },
			wantMsg: "Name is required",
		},
		{
			name:    "short name",
			mutate:  func(in *CreateInput) { in.Name = "L" },
			wantMsg: "Name must be at least 2 characters",
		},
		{
			name:    "empty email",
			mutate:  func(in *CreateInput) { in.Email = "" },
			wantMsg: "Email is required",
		},
		{
			name:    "malformed email",
			mutate:  func(in *CreateInput) { in.Email = "link@hyrule" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "missing local part",
			mutate:  func(in *CreateInput) { in.Email = "@hyrule.com" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "empty game",
			mutate:  func(in *CreateInput) { in.Game = "  " },
			wantMsg: "Game is required",
		},
		{
			name:    "health zero",
			mutate:  func(in *CreateInput) { in.Health = 0 },
			wantMsg: "Health must be between 1 and 999",
		},
		{
			name:    "health negative",
			mutate:  func(in *CreateInput) { in.Health = -10 },
			wantMsg: "Health must be between 1 and 999",
		},
		{
			name:    "stamina above max",
			mutate:  func(in *CreateInput) { in.Stamina = 1000 },
			wantMsg: "Stamina must be between 1 and 999",
		},
		{
			name:    "attack zero",
			mutate:  func(in *CreateInput) { in.Attack = 0 },
			wantMsg: "Attack must be between 1 and 999",
		},
		{
			name:    "defense above max",
			mutate:  func(in *CreateInput) { in.Defense = 5000 },
			wantMsg: "Defense must be between 1 and 999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			err := ValidateCreate(input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !apperrors.IsCode(err, apperrors.CodeValidation) {
				t.Fatalf("expected validation code, got %v", apperrors.GetCode(err))
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidateCreateStatBoundaries(t *testing.T) {
	for _, value := range []int{1, 999} {
		input := validInput()
		input.Health = value
		input.Stamina = value
		input.Attack = value
		input.Defense = value
		if err := ValidateCreate(input); err != nil {
			t.Fatalf("expected %d to be accepted, got %v", value, err)
		}
	}
}

func TestValidateCreateFirstFailureWins(t *testing.T) {
	input := validInput()
	input.Name = ""
	input.Email = "broken"

	err := ValidateCreate(input)
	if err == nil || err.Error() != "Name is required" {
		t.Fatalf("expected name failure first, got %v", err)
	}
}

func TestValidateUpdateRequiresID(t *testing.T) {
	err := ValidateUpdate("   ", Patch{})
	if err == nil || err.Error() != "Character ID is required" {
		t.Fatalf("expected id failure, got %v", err)
	}
}

func TestValidateUpdateSkipsAbsentFields(t *testing.T) {
	if err := ValidateUpdate("abc123", Patch{}); err != nil {
		t.Fatalf("expected empty patch to be valid, got %v", err)
	}

	attack := 50
	if err := ValidateUpdate("abc123", Patch{Attack: &attack}); err != nil {
		t.Fatalf("expected single-field patch to be valid, got %v", err)
	}
}

func TestValidateUpdatePresentFieldsChecked(t *testing.T) {
	shortName := "L"
	badEmail := "nope"
	emptyGame := " "
	zeroHealth := 0
	hugeAttack := 1000

	tests := []struct {
		name    string
		patch   Patch
		wantMsg string
	}{
		{name: "short name", patch: Patch{Name: &shortName}, wantMsg: "Name must be at least 2 characters"},
		{name: "bad email", patch: Patch{Email: &badEmail}, wantMsg: "Invalid email format"},
		{name: "empty game", patch: Patch{Game: &emptyGame}, wantMsg: "Game is required"},
		{name: "present zero health", patch: Patch{Health: &zeroHealth}, wantMsg: "Health must be between 1 and 999"},
		{name: "attack above max", patch: Patch{Attack: &hugeAttack}, wantMsg: "Attack must be between 1 and 999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdate("abc123", tt.patch)
			if err == nil || err.Error() != tt.wantMsg {
				t.Fatalf("expected %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestNewCharacterNormalizes(t *testing.T) {
	input := validInput()
	input.Name = "  Link  "
	input.Email = " LINK@Hyrule.COM "
	input.Game = " Breath of the Wild "
	input.Race = "  Hylian "

	character := NewCharacter(input)
	if character.Name != "Link" {
		t.Fatalf("expected trimmed name, got %q", character.Name)
	}
	if character.Email != "link@hyrule.com" {
		t.Fatalf("expected lower-cased email, got %q", character.Email)
	}
	if character.Game != "Breath of the Wild" {
		t.Fatalf("expected trimmed game, got %q", character.Game)
	}
	if character.Race != "Hylian" {
		t.Fatalf("expected trimmed race, got %q", character.Race)
	}
}

func TestNewCharacterCopiesWeapons(t *testing.T) {
	input := validInput()
	character := NewCharacter(input)

	input.Weapons[0] = "mutated"
	if character.Weapons[0] != "master-sword" {
		t.Fatal("expected weapons slice to be copied")
	}
}

func TestPatchNormalize(t *testing.T) {
	name := "  Zelda "
	email := " ZELDA@Hyrule.COM "
	race := " Hylian  "

	normalized := Patch{Name: &name, Email: &email, Race: &race}.Normalize()
	if *normalized.Name != "Zelda" {
		t.Fatalf("expected trimmed name, got %q", *normalized.Name)
	}
	if *normalized.Email != "zelda@hyrule.com" {
		t.Fatalf("expected normalized email, got %q", *normalized.Email)
	}
	if *normalized.Race != "Hylian" {
		t.Fatalf("expected trimmed race, got %q", *normalized.Race)
	}
	if name != "  Zelda " {
		t.Fatal("expected original values to be untouched")
	}
}

func TestPatchIsZero(t *testing.T) {
	if !(Patch{}).isZero() {
		t.Fatal("expected empty patch to be zero")
	}
	game := "TOTK"
	if (Patch{Game: &game}).isZero() {
		t.Fatal("expected patch with game to be non-zero")
	}
	if (Patch{Weapons: []string{}}).isZero() {
		t.Fatal("expected patch with weapons to be non-zero")
	}
}

func TestValidateEmailAcceptsCommonShapes(t *testing.T) {
	for _, email := range []string{
		"a@b.co",
		"first.last@example.com",
		"user+tag@sub.domain.org",
		"user_99%x@mail-host.net",
	} {
		if err := ValidateEmail(email); err != nil {
			t.Fatalf("expected %q to validate, got %v", email, err)
		}
	}
	for _, email := range []string{
		"plain",
		"a@b",
		"a@b.c",
		" link@hyrule.com ",
		"link@hyrule.com\n",
		strings.Repeat(" ", 3),
	} {
		if err := ValidateEmail(email); err == nil {
			t.Fatalf("expected %q to fail", email)
		}
	}
}

package application

import (
	"context"
	"errors"
	"testing"

	"pressboard/contexts/identity/user-service/adapters/memory"
	domainerrors "pressboard/contexts/identity/user-service/domain/errors"
	"pressboard/contexts/identity/user-service/ports"
)

func newService() Service {
	store := memory.NewStore(nil)
	return Service{Repo: store, Clock: store, IDGen: store}
}

func TestRegisterUserNormalizesEmailAndDefaults(t *testing.T) {
	service := newService()

	user, err := service.RegisterUser(context.Background(), RegisterUserInput{
		Email:     "  Mira@Example.COM ",
		FirstName: "Mira",
		LastName:  "Lebedeva",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "mira@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if len(user.Languages) != 1 || user.Languages[0] != "RU" {
		t.Fatalf("expected default languages [RU], got %v", user.Languages)
	}
}

func TestRegisterUserRejectsBadEmail(t *testing.T) {
	service := newService()

	_, err := service.RegisterUser(context.Background(), RegisterUserInput{
		Email:     "not-an-email",
		FirstName: "Mira",
		LastName:  "Lebedeva",
	})
	if !errors.Is(err, domainerrors.ErrInvalidUserInput) {
		t.Fatalf("expected ErrInvalidUserInput, got %v", err)
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, _ = service.RegisterUser(ctx, RegisterUserInput{Email: "mira@example.com", FirstName: "Mira", LastName: "Lebedeva"})
	_, err := service.RegisterUser(ctx, RegisterUserInput{Email: "mira@example.com", FirstName: "Other", LastName: "Person"})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected duplicate email rejection, got %v", err)
	}
}

func TestUpdateProfileOnlySelf(t *testing.T) {
	service := newService()
	ctx := context.Background()

	user, _ := service.RegisterUser(ctx, RegisterUserInput{Email: "mira@example.com", FirstName: "Mira", LastName: "Lebedeva"})

	bio := "covers fintech"
	_, err := service.UpdateProfile(ctx, "someone-else", user.UserID, ports.UserUpdate{Bio: &bio})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := service.UpdateProfile(ctx, user.UserID, user.UserID, ports.UserUpdate{
		Bio:    &bio,
		Topics: []string{"finance", "IT"},
	})
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if updated.Bio != "covers fintech" || len(updated.Topics) != 2 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Email != "mira@example.com" {
		t.Fatalf("email must not change on profile update")
	}
}

func TestListUsersSearch(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, _ = service.RegisterUser(ctx, RegisterUserInput{Email: "mira@example.com", FirstName: "Mira", LastName: "Lebedeva"})
	_, _ = service.RegisterUser(ctx, RegisterUserInput{Email: "pavel@example.com", FirstName: "Pavel", LastName: "Orlov"})

	items, err := service.ListUsers(ctx, "orlov")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].FirstName != "Pavel" {
		t.Fatalf("search failed: %+v", items)
	}

	items, _ = service.ListUsers(ctx, "")
	if len(items) != 2 || items[0].LastName != "Lebedeva" {
		t.Fatalf("wrong order: %+v", items)
	}
}

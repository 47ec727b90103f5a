package application

import (
	"context"
	"errors"
	"testing"

	"pressboard/contexts/editorial/client-service/adapters/memory"
	domainerrors "pressboard/contexts/editorial/client-service/domain/errors"
	"pressboard/contexts/editorial/client-service/ports"
)

func newService(seed []ports.Client) (Service, *memory.Store) {
	store := memory.NewStore(seed)
	return Service{Repo: store, Clock: store, IDGen: store}, store
}

func TestCreateClientRequiresName(t *testing.T) {
	service, _ := newService(nil)

	_, err := service.CreateClient(context.Background(), CreateClientInput{FirstName: "  ", LastName: "Petrova"})
	if !errors.Is(err, domainerrors.ErrInvalidClientInput) {
		t.Fatalf("expected ErrInvalidClientInput, got %v", err)
	}
}

func TestCreateAndGetClient(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	created, err := service.CreateClient(ctx, CreateClientInput{
		FirstName: "Anna",
		LastName:  "Petrova",
		Company:   "Northwind Capital",
		Email:     "anna@northwind.example",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ClientID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("id or timestamp missing: %+v", created)
	}

	got, err := service.GetClient(ctx, created.ClientID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Company != "Northwind Capital" {
		t.Fatalf("wrong client: %+v", got)
	}
}

func TestUpdateClientPartialFields(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	created, _ := service.CreateClient(ctx, CreateClientInput{FirstName: "Anna", LastName: "Petrova", Phone: "+100"})

	company := "Fjord Media"
	updated, err := service.UpdateClient(ctx, created.ClientID, ports.ClientUpdate{Company: &company})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Company != "Fjord Media" {
		t.Fatalf("company not applied: %+v", updated)
	}
	if updated.Phone != "+100" || updated.FirstName != "Anna" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("updated_at went backwards")
	}
}

func TestUpdateCannotBlankName(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	created, _ := service.CreateClient(ctx, CreateClientInput{FirstName: "Anna", LastName: "Petrova"})

	blank := "   "
	_, err := service.UpdateClient(ctx, created.ClientID, ports.ClientUpdate{LastName: &blank})
	if !errors.Is(err, domainerrors.ErrInvalidClientInput) {
		t.Fatalf("expected ErrInvalidClientInput, got %v", err)
	}
}

func TestListClientsSearchAndOrder(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	_, _ = service.CreateClient(ctx, CreateClientInput{FirstName: "Boris", LastName: "Ivanov", Company: "Delta Bank"})
	_, _ = service.CreateClient(ctx, CreateClientInput{FirstName: "Anna", LastName: "Petrova", Company: "Fjord Media"})
	_, _ = service.CreateClient(ctx, CreateClientInput{FirstName: "Olga", LastName: "Petrova", Company: "Northwind"})

	items, err := service.ListClients(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(items))
	}
	if items[0].LastName != "Ivanov" || items[1].FirstName != "Anna" || items[2].FirstName != "Olga" {
		t.Fatalf("wrong order: %+v", items)
	}

	items, _ = service.ListClients(ctx, "fjord")
	if len(items) != 1 || items[0].Company != "Fjord Media" {
		t.Fatalf("search failed: %+v", items)
	}
}

func TestDeleteClient(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	created, _ := service.CreateClient(ctx, CreateClientInput{FirstName: "Anna", LastName: "Petrova"})
	if err := service.DeleteClient(ctx, created.ClientID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := service.GetClient(ctx, created.ClientID); !errors.Is(err, domainerrors.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if err := service.DeleteClient(ctx, created.ClientID); !errors.Is(err, domainerrors.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound on second delete, got %v", err)
	}
}

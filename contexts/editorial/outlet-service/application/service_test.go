package application

import (
	"context"
	"errors"
	"testing"

	"pressboard/contexts/editorial/outlet-service/adapters/memory"
	domainerrors "pressboard/contexts/editorial/outlet-service/domain/errors"
	"pressboard/contexts/editorial/outlet-service/ports"
)

func newService() Service {
	store := memory.NewStore(nil)
	return Service{Repo: store, Clock: store, IDGen: store}
}

func TestCreateOutletDefaultsLanguage(t *testing.T) {
	service := newService()

	outlet, err := service.CreateOutlet(context.Background(), CreateOutletInput{Name: "The Ledger"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if outlet.Language != "RU" {
		t.Fatalf("expected default language RU, got %q", outlet.Language)
	}
	if outlet.Contacts == nil {
		t.Fatalf("contacts should never be nil")
	}
}

func TestCreateOutletRequiresName(t *testing.T) {
	service := newService()

	_, err := service.CreateOutlet(context.Background(), CreateOutletInput{Name: "  "})
	if !errors.Is(err, domainerrors.ErrInvalidOutletInput) {
		t.Fatalf("expected ErrInvalidOutletInput, got %v", err)
	}
}

func TestListOutletsByCategoryAndLanguage(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, _ = service.CreateOutlet(ctx, CreateOutletInput{Name: "Biz Daily", Category: "business", Language: "RU"})
	_, _ = service.CreateOutlet(ctx, CreateOutletInput{Name: "Tech Wire", Category: "IT", Language: "EN"})
	_, _ = service.CreateOutlet(ctx, CreateOutletInput{Name: "Area Voice", Category: "regional", Language: "RU"})

	items, err := service.ListOutlets(ctx, ports.OutletFilter{Language: "RU"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Area Voice" || items[1].Name != "Biz Daily" {
		t.Fatalf("wrong result: %+v", items)
	}

	items, _ = service.ListOutlets(ctx, ports.OutletFilter{Category: "IT"})
	if len(items) != 1 || items[0].Name != "Tech Wire" {
		t.Fatalf("category filter failed: %+v", items)
	}

	items, _ = service.ListOutlets(ctx, ports.OutletFilter{Search: "wire"})
	if len(items) != 1 || items[0].Name != "Tech Wire" {
		t.Fatalf("search failed: %+v", items)
	}
}

func TestUpdateOutletReplacesContacts(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, _ := service.CreateOutlet(ctx, CreateOutletInput{
		Name:     "Biz Daily",
		Contacts: map[string]string{"editor": "old@bizdaily.example"},
	})

	updated, err := service.UpdateOutlet(ctx, created.OutletID, ports.OutletUpdate{
		Contacts: map[string]string{"editor": "new@bizdaily.example", "pitch": "pitch@bizdaily.example"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Contacts["editor"] != "new@bizdaily.example" || len(updated.Contacts) != 2 {
		t.Fatalf("contacts not replaced: %+v", updated.Contacts)
	}
	if updated.Name != "Biz Daily" {
		t.Fatalf("name changed unexpectedly")
	}
}

func TestDeleteOutletMissing(t *testing.T) {
	service := newService()

	err := service.DeleteOutlet(context.Background(), "nope")
	if !errors.Is(err, domainerrors.ErrOutletNotFound) {
		t.Fatalf("expected ErrOutletNotFound, got %v", err)
	}
}

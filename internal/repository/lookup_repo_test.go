package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/storefrontlabs/catalog-backend/internal/models"
)

func TestLookupGetByName(t *testing.T) {
	mgr := newTestManager(t)
	repo := NewBrandRepository(mgr)

	created, err := repo.Create(context.Background(), &models.Brand{Name: "northwind"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetByName(context.Background(), "northwind")
	if err != nil {
		t.Fatalf("get by name failed: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("expected brand %d back, got %+v", created.ID, got)
	}

	absent, err := repo.GetByName(context.Background(), "southwind")
	if err != nil {
		t.Fatalf("get by name failed: %v", err)
	}
	if absent != nil {
		t.Fatalf("expected absence for unknown name, got %+v", absent)
	}
}

func TestLookupListPaginates(t *testing.T) {
	mgr := newTestManager(t)
	repo := NewColorRepository(mgr)

	for i := 0; i < 25; i++ {
		if _, err := repo.Create(context.Background(), &models.Color{Name: fmt.Sprintf("shade-%02d", i)}); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	first, err := repo.List(context.Background(), 0, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(first) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(first))
	}

	rest, err := repo.List(context.Background(), 20, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rest) != 5 {
		t.Fatalf("expected 5 remaining rows, got %d", len(rest))
	}
	if rest[0].ID <= first[len(first)-1].ID {
		t.Fatalf("second page overlaps first page")
	}
}

package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

func TestMaterialBasics(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	material := &core.Material{
		OwnerId: 7,
		Title:   "Algebra Basics",
		Subject: "math",
	}

	added, err := stores.Materials.AddMaterial(ctx, material)
	if err != nil {
		t.Fatalf("Failed to add material: %v", err)
	}
	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be set")
	}

	retrieved, err := stores.Materials.GetMaterial(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get material: %v", err)
	}
	if retrieved.Title != "Algebra Basics" {
		t.Fatalf("Expected 'Algebra Basics', got '%s'", retrieved.Title)
	}
}

func TestMaterialIDDerivedFromOwnerAndTitle(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	first, err := stores.Materials.AddMaterial(ctx, &core.Material{OwnerId: 1, Title: "Notes"})
	if err != nil {
		t.Fatalf("Failed to add material: %v", err)
	}
	second, err := stores.Materials.AddMaterial(ctx, &core.Material{OwnerId: 1, Title: "Notes"})
	if err != nil {
		t.Fatalf("Failed to add material again: %v", err)
	}
	if first.Id != second.Id {
		t.Fatalf("Expected same ID for same owner+title, got %d and %d", first.Id, second.Id)
	}

	other, err := stores.Materials.AddMaterial(ctx, &core.Material{OwnerId: 2, Title: "Notes"})
	if err != nil {
		t.Fatalf("Failed to add material: %v", err)
	}
	if other.Id == first.Id {
		t.Fatal("Expected different ID for different owner")
	}
}

func TestMaterialOwnerListing(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	for _, m := range []*core.Material{
		{OwnerId: 10, Title: "Fractions"},
		{OwnerId: 10, Title: "Decimals"},
		{OwnerId: 11, Title: "Cells"},
	} {
		if _, err := stores.Materials.AddMaterial(ctx, m); err != nil {
			t.Fatalf("Failed to add material: %v", err)
		}
	}

	mine, err := stores.Materials.ListMaterialsByOwner(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to list materials: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("Expected 2 materials for owner 10, got %d", len(mine))
	}

	all, err := stores.Materials.ListMaterials(ctx)
	if err != nil {
		t.Fatalf("Failed to list all materials: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 materials total, got %d", len(all))
	}
}

func TestMaterialUpdateAndDelete(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	added, err := stores.Materials.AddMaterial(ctx, &core.Material{OwnerId: 3, Title: "Geometry"})
	if err != nil {
		t.Fatalf("Failed to add material: %v", err)
	}

	added.Processed = true
	added.PageCount = 12
	if _, err := stores.Materials.UpdateMaterial(ctx, added); err != nil {
		t.Fatalf("Failed to update material: %v", err)
	}

	retrieved, err := stores.Materials.GetMaterial(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get material: %v", err)
	}
	if !retrieved.Processed || retrieved.PageCount != 12 {
		t.Fatalf("Update not applied: %+v", retrieved)
	}
	if retrieved.UpdatedAt.Before(retrieved.CreatedAt) {
		t.Fatal("Expected UpdatedAt >= CreatedAt")
	}

	if err := stores.Materials.DeleteMaterial(ctx, added.Id); err != nil {
		t.Fatalf("Failed to delete material: %v", err)
	}

	if _, err := stores.Materials.GetMaterial(ctx, added.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	mine, err := stores.Materials.ListMaterialsByOwner(ctx, 3)
	if err != nil {
		t.Fatalf("Failed to list materials: %v", err)
	}
	if len(mine) != 0 {
		t.Fatalf("Expected owner index cleaned up, got %d entries", len(mine))
	}
}

func TestMaterialNotFound(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	if _, err := stores.Materials.GetMaterial(ctx, 999); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if _, err := stores.Materials.UpdateMaterial(ctx, &core.Material{Id: 999, OwnerId: 1, Title: "x"}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on update, got %v", err)
	}
	if err := stores.Materials.DeleteMaterial(ctx, 999); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on delete, got %v", err)
	}
}

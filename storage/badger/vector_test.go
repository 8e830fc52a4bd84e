package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

func TestVectorCollectionLifecycle(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	vs := stores.Vectors

	if err := vs.EnsureCollection(ctx, "material-1"); err != nil {
		t.Fatalf("Failed to ensure collection: %v", err)
	}
	// Idempotent
	if err := vs.EnsureCollection(ctx, "material-1"); err != nil {
		t.Fatalf("Failed to re-ensure collection: %v", err)
	}
	if err := vs.EnsureCollection(ctx, "material-2"); err != nil {
		t.Fatalf("Failed to ensure second collection: %v", err)
	}

	cols, err := vs.Collections(ctx)
	if err != nil {
		t.Fatalf("Failed to list collections: %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("Expected 2 collections, got %d", len(cols))
	}

	if err := vs.DropCollection(ctx, "material-1"); err != nil {
		t.Fatalf("Failed to drop collection: %v", err)
	}
	cols, err = vs.Collections(ctx)
	if err != nil {
		t.Fatalf("Failed to list collections: %v", err)
	}
	if len(cols) != 1 || cols[0] != "material-2" {
		t.Fatalf("Expected only material-2 left, got %v", cols)
	}

	if err := vs.DropCollection(ctx, "material-1"); !errors.Is(err, storage.ErrUnknownCollection) {
		t.Fatalf("Expected ErrUnknownCollection, got %v", err)
	}
}

func TestVectorRecordSeqPreservedOnOverwrite(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	vs := stores.Vectors

	if err := vs.EnsureCollection(ctx, "material-3"); err != nil {
		t.Fatalf("Failed to ensure collection: %v", err)
	}

	first := &core.VectorRecord{Id: 100, MaterialId: 3, Vector: []float32{1, 0}, Text: "v1"}
	if err := vs.PutRecord(ctx, "material-3", first); err != nil {
		t.Fatalf("Failed to put record: %v", err)
	}

	other := &core.VectorRecord{Id: 101, MaterialId: 3, Vector: []float32{0, 1}, Text: "other"}
	if err := vs.PutRecord(ctx, "material-3", other); err != nil {
		t.Fatalf("Failed to put second record: %v", err)
	}

	// Overwrite the first record; its Seq must not change.
	replacement := &core.VectorRecord{Id: 100, MaterialId: 3, Vector: []float32{0.5, 0.5}, Text: "v2"}
	if err := vs.PutRecord(ctx, "material-3", replacement); err != nil {
		t.Fatalf("Failed to overwrite record: %v", err)
	}
	if replacement.Seq != first.Seq {
		t.Fatalf("Expected Seq %d preserved, got %d", first.Seq, replacement.Seq)
	}

	count, err := vs.CountRecords(ctx, "material-3")
	if err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if count != 2 {
		t.Fatalf("Expected 2 records, got %d", count)
	}

	var texts []string
	err = vs.ScanRecords(ctx, "material-3", func(rec *core.VectorRecord) error {
		if rec.Id == 100 {
			texts = append(texts, rec.Text)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to scan records: %v", err)
	}
	if len(texts) != 1 || texts[0] != "v2" {
		t.Fatalf("Expected overwritten text 'v2', got %v", texts)
	}
}

func TestVectorUnknownCollection(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	record := &core.VectorRecord{Id: 1, Vector: []float32{1}}

	if err := stores.Vectors.PutRecord(ctx, "nope", record); !errors.Is(err, storage.ErrUnknownCollection) {
		t.Fatalf("Expected ErrUnknownCollection on put, got %v", err)
	}
	if err := stores.Vectors.ScanRecords(ctx, "nope", func(*core.VectorRecord) error { return nil }); !errors.Is(err, storage.ErrUnknownCollection) {
		t.Fatalf("Expected ErrUnknownCollection on scan, got %v", err)
	}
}

package badger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// MaterialRepository implements storage.MaterialRepository for BadgerDB.
type MaterialRepository struct {
	backend *Backend
}

var _ storage.MaterialRepository = (*MaterialRepository)(nil)

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(backend *Backend) (storage.MaterialRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}
	return &MaterialRepository{backend: backend}, nil
}

// Close is a no-op; materials hold no sequences.
func (r *MaterialRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *MaterialRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddMaterial stores a new material.
func (r *MaterialRepository) AddMaterial(ctx context.Context, material *core.Material) (*core.Material, error) {
	if err := core.ValidateMaterial(material); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if material.Id == 0 {
			material.Id = core.IDFromContent(fmt.Sprintf("%d:%s", material.OwnerId, material.Title))
		}
		if material.CreatedAt.IsZero() {
			material.CreatedAt = time.Now().UTC()
		}
		material.UpdatedAt = material.CreatedAt

		key := makeMaterialKey(material.Id)
		if err := tx.Set(key, storage.MarshalMaterial(material)); err != nil {
			return err
		}

		ownerKey := makeMaterialOwnerKey(material.OwnerId, material.Id)
		if err := tx.Set(ownerKey, storage.MarshalID(material.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return material, err
}

// UpdateMaterial updates an existing material.
func (r *MaterialRepository) UpdateMaterial(ctx context.Context, material *core.Material) (*core.Material, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeMaterialKey(material.Id)

		old, err := readMaterial(tx, key)
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		material.UpdatedAt = time.Now().UTC()
		if err := tx.Set(key, storage.MarshalMaterial(material)); err != nil {
			return err
		}

		// Owner index moves if ownership changed
		if old.OwnerId != material.OwnerId {
			if err := tx.Delete(makeMaterialOwnerKey(old.OwnerId, old.Id)); err != nil {
				return err
			}
			if err := tx.Set(makeMaterialOwnerKey(material.OwnerId, material.Id), storage.MarshalID(material.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return material, err
}

// GetMaterial retrieves a material by ID.
func (r *MaterialRepository) GetMaterial(ctx context.Context, id core.ID) (*core.Material, error) {
	var result *core.Material
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readMaterial(tx, makeMaterialKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListMaterials retrieves all known materials.
func (r *MaterialRepository) ListMaterials(ctx context.Context) ([]*core.Material, error) {
	var results []*core.Material
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(materialPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var material *core.Material
			err := iter.Item().Value(func(val []byte) error {
				var err error
				material, err = storage.UnmarshalMaterial(val)
				return err
			})
			if err != nil {
				return err
			}
			if material != nil {
				results = append(results, material)
			}
		}
		return nil
	}, false)
	return results, err
}

// ListMaterialsByOwner retrieves all materials uploaded by one owner.
func (r *MaterialRepository) ListMaterialsByOwner(ctx context.Context, ownerID core.ID) ([]*core.Material, error) {
	var results []*core.Material
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialMaterialOwnerKey(ownerID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			var materialID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				materialID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			material, err := readMaterial(tx, makeMaterialKey(materialID))
			if err != nil {
				return err
			}
			if material != nil {
				results = append(results, material)
			}
		}
		return nil
	}, false)
	return results, err
}

// DeleteMaterial removes a material by ID.
func (r *MaterialRepository) DeleteMaterial(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeMaterialKey(id)

		material, err := readMaterial(tx, key)
		if err != nil {
			return err
		}
		if material == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(makeMaterialOwnerKey(material.OwnerId, material.Id)); err != nil {
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readMaterial reads a material from the transaction.
func readMaterial(tx *badger.Txn, key []byte) (*core.Material, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var material *core.Material
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		material, unmarshalErr = storage.UnmarshalMaterial(val)
		return unmarshalErr
	})
	return material, err
}

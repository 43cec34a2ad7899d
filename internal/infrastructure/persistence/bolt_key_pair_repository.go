package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"
	"github.com/MGTheTrain/crypto-interop/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"

	bolt "go.etcd.io/bbolt"
)

// KeyPairBucket holds one JSON encoded KeyPairModel per key pair ID
var KeyPairBucket = []byte("key_pairs")

type boltKeyPairRepository struct {
	db     *bolt.DB
	logger logger.Logger
}

// OpenBoltDB opens or creates a bolt database file and its key pair bucket
func OpenBoltDB(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(KeyPairBucket); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", KeyPairBucket, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// NewBoltKeyPairRepository creates a KeyPairRepository on an embedded bolt database
func NewBoltKeyPairRepository(db *bolt.DB, logger logger.Logger) (keys.KeyPairRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &boltKeyPairRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *boltKeyPairRepository) Create(ctx context.Context, keyPair *keys.KeyPairMeta) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := keyPair.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyPairModel{}
	model.FromDomain(keyPair)

	value, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to encode key pair: %w", err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(KeyPairBucket)
		if bucket.Get([]byte(model.ID)) != nil {
			return fmt.Errorf("key pair with ID %s: %w", model.ID, keys.ErrKeyPairExists)
		}
		return bucket.Put([]byte(model.ID), value)
	})
	if err != nil {
		return fmt.Errorf("failed to create key pair: %w", err)
	}

	r.logger.Info("Created key pair with id ", keyPair.ID)
	return nil
}

func (r *boltKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query == nil {
		query = keys.NewKeyPairQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var matches []*keys.KeyPairMeta
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(KeyPairBucket).ForEach(func(_, value []byte) error {
			var model models.KeyPairModel
			if err := json.Unmarshal(value, &model); err != nil {
				return fmt.Errorf("failed to decode key pair: %w", err)
			}
			if query.UserID != "" && model.UserID != query.UserID {
				return nil
			}
			if query.KeySize != 0 && model.KeySize != query.KeySize {
				return nil
			}
			matches = append(matches, model.ToDomain())
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key pairs: %w", err)
	}

	sortKeyPairs(matches, query.SortBy, query.SortOrder)

	return page(matches, query.Offset, query.Limit), nil
}

// sortKeyPairs orders by sortBy, ties broken by ID so paging is stable
func sortKeyPairs(list []*keys.KeyPairMeta, sortBy, sortOrder string) {
	compare := func(a, b *keys.KeyPairMeta) int {
		switch sortBy {
		case "key_size":
			if a.KeySize != b.KeySize {
				if a.KeySize < b.KeySize {
					return -1
				}
				return 1
			}
		case "date_time_created":
			if !a.DateTimeCreated.Equal(b.DateTimeCreated) {
				if a.DateTimeCreated.Before(b.DateTimeCreated) {
					return -1
				}
				return 1
			}
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	}

	sort.SliceStable(list, func(i, j int) bool {
		c := compare(list[i], list[j])
		if sortOrder == "desc" {
			return c > 0
		}
		return c < 0
	})
}

func page(list []*keys.KeyPairMeta, offset, limit int) []*keys.KeyPairMeta {
	if offset >= len(list) {
		return []*keys.KeyPairMeta{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func (r *boltKeyPairRepository) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var model *models.KeyPairModel
	err := r.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(KeyPairBucket).Get([]byte(keyPairID))
		if value == nil {
			return nil
		}
		model = &models.KeyPairModel{}
		return json.Unmarshal(value, model)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key pair: %w", err)
	}
	if model == nil {
		return nil, fmt.Errorf("key pair with ID %s: %w", keyPairID, keys.ErrKeyPairNotFound)
	}
	return model.ToDomain(), nil
}

func (r *boltKeyPairRepository) DeleteByID(ctx context.Context, keyPairID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	found := false
	err := r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(KeyPairBucket)
		if bucket.Get([]byte(keyPairID)) == nil {
			return nil
		}
		found = true
		return bucket.Delete([]byte(keyPairID))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}
	if !found {
		return fmt.Errorf("key pair with ID %s: %w", keyPairID, keys.ErrKeyPairNotFound)
	}

	r.logger.Info("Deleted key pair with id ", keyPairID)
	return nil
}

package repositories

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// PreferencesBucket is the bolt bucket holding favorites and history.
const PreferencesBucket = "preferences"

// OpenBolt opens (or creates) the bolt file at path and ensures the
// preferences bucket exists.
func OpenBolt(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open bolt %s: %v", models.ErrPersistence, path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(PreferencesBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create bucket: %v", models.ErrPersistence, err)
	}

	return db, nil
}

// BoltKVRepository stores preference documents in a local bolt file.
type BoltKVRepository struct {
	db *bolt.DB
}

func NewBoltKVRepository(db *bolt.DB) *BoltKVRepository {
	return &BoltKVRepository{db: db}
}

// Get returns the value stored under key and whether it was present.
func (r *BoltKVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(PreferencesBucket))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			// bolt memory is only valid inside the transaction
			value = append([]byte(nil), v...)
		}
		return nil
	})

	logger.Log.Debugw("bolt get", "key", key, "found", value != nil, "error", err)

	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %v", models.ErrPersistence, key, err)
	}
	return value, value != nil, nil
}

// Set overwrites the value stored under key.
func (r *BoltKVRepository) Set(ctx context.Context, key string, value []byte) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(PreferencesBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})

	logger.Log.Debugw("bolt set", "key", key, "size", len(value), "error", err)

	if err != nil {
		return fmt.Errorf("%w: set %s: %v", models.ErrPersistence, key, err)
	}
	return nil
}

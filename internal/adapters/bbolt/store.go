// Package bbolt implements the ports.BaselineStore interface using bbolt
// (embedded B+ tree). One top-level bucket maps protocol name to a
// JSON-serialized name list. Writes are transactional — a crash mid-write
// cannot corrupt previously committed baselines.
package bbolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketBaselines = []byte("baselines")

// Store implements ports.BaselineStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBaseline persists the baseline name set for a protocol.
// Overwrites any prior baseline for this protocol.
func (s *Store) SaveBaseline(protocol string, names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("marshal baseline: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketBaselines)
		if err != nil {
			return err
		}
		return b.Put([]byte(protocol), data)
	})
}

// LoadBaseline retrieves the baseline for a protocol.
// Returns nil, nil if no baseline exists.
func (s *Store) LoadBaseline(protocol string) ([]string, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketBaselines)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(protocol)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("unmarshal baseline %q: %w", protocol, err)
	}
	return names, nil
}

// DeleteBaseline removes the baseline for a protocol.
// Idempotent: deleting a nonexistent baseline is not an error.
func (s *Store) DeleteBaseline(protocol string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketBaselines)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(protocol))
	})
}

// Protocols lists every protocol that has a stored baseline, sorted.
func (s *Store) Protocols() ([]string, error) {
	var out []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketBaselines)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

package persist

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNoSnapshot is returned by (*Store).Load when no snapshot exists
// under the given name.
var ErrNoSnapshot = errors.New("no such snapshot")

var bucketSnapshots = []byte("snapshots")

// Store keeps encoded snapshots in a bolt database on disk.
type Store struct {
	db *bolt.DB
}

// OpenStore opens (creating if needed) the snapshot database at path.
func OpenStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save encodes and writes a snapshot under name, replacing any
// earlier one.
func (s *Store) Save(name string, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		return b.Put([]byte(name), data)
	})
}

// Load reads and decodes the snapshot stored under name.
func (s *Store) Load(name string) (Snapshot, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoSnapshot
		}
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Delete removes the snapshot stored under name. Deleting a missing
// name is not an error.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		return b.Delete([]byte(name))
	})
}

// Names lists all stored snapshot names in key order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		return b.ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

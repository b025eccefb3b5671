package kvstore

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketName = []byte("feedshop")
	ledgerKey  = []byte("ledger")
)

// Store is a thin wrapper over a local bbolt file holding the whole ledger
// as one JSON document under a single key.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Load returns the stored document, or nil when nothing has been saved yet.
func (s *Store) Load() ([]byte, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get(ledgerKey)
		if v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return raw, nil
}

func (s *Store) Save(doc []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(ledgerKey, doc)
	})
	if err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"reel/internal/domain"
)

var bucketDocuments = []byte("documents")

// BoltStore implements domain.DocumentStore using BoltDB, with an in-memory
// cache promoted on access so hot-path reads never touch disk.
type BoltStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache and closed flag

	cache  map[string]string
	closed bool
}

// NewBoltStore opens (or creates) the database under dataDir. An empty
// dataDir selects memory-only mode with no persistence.
func NewBoltStore(dataDir string) (*BoltStore, error) {
	if dataDir == "" {
		return &BoltStore{cache: make(map[string]string)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "reel.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDocuments)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, cache: make(map[string]string)}, nil
}

func (s *BoltStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *BoltStore) Get(key string) (string, bool, error) {
	// Check memory cache first
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return "", false, domain.ErrStoreClosed
	}
	if value, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return value, true, nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return "", false, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketDocuments).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	if data == nil {
		return "", false, nil
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = string(data)
	s.mu.Unlock()

	return string(data), true, nil
}

func (s *BoltStore) Set(key, value string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	s.cache[key] = value
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDocuments).Put([]byte(key), []byte(value))
	})
}

func (s *BoltStore) Delete(key string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDocuments).Delete([]byte(key))
	})
}

package store

import (
	"sync"
	"time"
)

// MemoryStore implements BlobStore with an in-process map. It is safe for
// concurrent use and is the default when no database is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]*Blob
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]*Blob)}
}

// SaveBlob stores a copy of the ciphertext under the given ID.
func (s *MemoryStore) SaveBlob(id string, ciphertext []byte) error {
	data := make([]byte, len(ciphertext))
	copy(data, ciphertext)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[id] = &Blob{ID: id, Ciphertext: data, CreatedAt: time.Now()}
	return nil
}

// LoadBlob fetches a stored ciphertext by ID.
func (s *MemoryStore) LoadBlob(id string) (*Blob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	data := make([]byte, len(blob.Ciphertext))
	copy(data, blob.Ciphertext)
	return &Blob{ID: blob.ID, Ciphertext: data, CreatedAt: blob.CreatedAt}, nil
}

// DeleteBlob removes a stored ciphertext. Deleting an unknown ID is a
// no-op.
func (s *MemoryStore) DeleteBlob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, id)
	return nil
}

package store

import (
	"errors"
	"time"
)

// ErrNotFound reports a lookup of a blob ID that was never saved or was
// deleted.
var ErrNotFound = errors.New("store: blob not found")

// Blob is a stored ciphertext with its metadata.
type Blob struct {
	ID         string
	Ciphertext []byte
	CreatedAt  time.Time
}

// BlobStore persists ciphertext blobs by ID. Saving an existing ID
// overwrites the previous ciphertext.
type BlobStore interface {
	SaveBlob(id string, ciphertext []byte) error
	LoadBlob(id string) (*Blob, error)
	DeleteBlob(id string) error
}

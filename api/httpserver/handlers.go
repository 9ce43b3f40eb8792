package httpserver

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kruug/gridaes/cipher"
	"github.com/kruug/gridaes/codec"
	"github.com/kruug/gridaes/store"
)

// CipherRequest is the payload for the stateless transform endpoints and
// vault writes. Data is base64-encoded by encoding/json.
type CipherRequest struct {
	// Key is the hex-encoded 16-byte master key.
	Key string `json:"key"`

	// Data is the payload to transform.
	Data []byte `json:"data"`
}

// KeyRequest carries only a key, for vault reads.
type KeyRequest struct {
	Key string `json:"key"`
}

// CipherResponse carries the transformed payload.
type CipherResponse struct {
	Data []byte `json:"data"`
}

// CipherHandler serves the transform and vault endpoints.
type CipherHandler struct {
	blobs   store.BlobStore
	workers int
	log     *slog.Logger
}

// NewCipherHandler creates a handler backed by the given blob store.
// workers controls codec parallelism per request; values below 2 keep each
// request sequential.
func NewCipherHandler(blobs store.BlobStore, workers int, log *slog.Logger) *CipherHandler {
	return &CipherHandler{blobs: blobs, workers: workers, log: log}
}

// RegisterRoutes registers routes with the provided router.
func (h *CipherHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/encrypt", h.handleEncrypt)
	r.Post("/api/v1/decrypt", h.handleDecrypt)
	r.Put("/api/v1/vault/{id}", h.handleVaultPut)
	r.Post("/api/v1/vault/{id}/open", h.handleVaultOpen)
	r.Delete("/api/v1/vault/{id}", h.handleVaultDelete)
}

// newCodec parses a hex key and builds a codec for it.
func (h *CipherHandler) newCodec(hexKey string) (*codec.Codec, error) {
	keyBytes, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid key hex: %w", err)
	}
	key, err := cipher.NewKey(keyBytes)
	if err != nil {
		return nil, err
	}
	return codec.New(cipher.ExpandKey(key), codec.WithWorkers(h.workers))
}

func (h *CipherHandler) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	var req CipherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.newCodec(req.Key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	encoded, err := c.Encode(codec.NewPlainMessage(req.Data))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, &CipherResponse{Data: encoded.Bytes()})
}

func (h *CipherHandler) handleDecrypt(w http.ResponseWriter, r *http.Request) {
	var req CipherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.newCodec(req.Key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	decoded, err := c.Decode(codec.NewCipherMessage(req.Data))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, &CipherResponse{Data: decoded.Bytes()})
}

func (h *CipherHandler) handleVaultPut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req CipherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.newCodec(req.Key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	encoded, err := c.Encode(codec.NewPlainMessage(req.Data))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.blobs.SaveBlob(id, encoded.Bytes()); err != nil {
		h.log.Error("Saving blob failed", "id", id, "err", err)
		http.Error(w, "storing blob failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CipherHandler) handleVaultOpen(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.newCodec(req.Key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	blob, err := h.blobs.LoadBlob(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "blob not found", http.StatusNotFound)
			return
		}
		h.log.Error("Loading blob failed", "id", id, "err", err)
		http.Error(w, "loading blob failed", http.StatusInternalServerError)
		return
	}

	decoded, err := c.Decode(codec.NewCipherMessage(blob.Ciphertext))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, &CipherResponse{Data: decoded.Bytes()})
}

func (h *CipherHandler) handleVaultDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.blobs.DeleteBlob(id); err != nil {
		h.log.Error("Deleting blob failed", "id", id, "err", err)
		http.Error(w, "deleting blob failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CipherHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Writing response failed", "err", err)
	}
}

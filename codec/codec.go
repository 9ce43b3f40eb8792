package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kruug/gridaes/cipher"
)

var (
	// ErrEmptyMessage reports an encode of a zero-length message, for which
	// the padding sentinel is undefined.
	ErrEmptyMessage = errors.New("codec: cannot encode an empty message")

	// ErrCipherLength reports a decode input that is not a positive
	// multiple of the block size.
	ErrCipherLength = errors.New("codec: ciphertext length must be a positive multiple of 16")
)

// Codec encodes and decodes messages with a fixed key schedule.
type Codec struct {
	keys    cipher.KeySchedule
	workers int
}

// Option configures a Codec.
type Option func(*Codec)

// WithWorkers sets the number of goroutines used to transform blocks.
// Values below 2 keep the codec sequential. Output is identical either way.
func WithWorkers(n int) Option {
	return func(c *Codec) {
		c.workers = n
	}
}

// New creates a Codec for the given key schedule. The schedule must hold at
// least two round keys.
func New(keys cipher.KeySchedule, opts ...Option) (*Codec, error) {
	if len(keys) < 2 {
		return nil, cipher.ErrShortSchedule
	}
	c := &Codec{keys: keys, workers: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Encode pads the message and encrypts it block by block.
//
// The sentinel is the last plaintext byte XOR 0x01 and the pad length is
// 32 - (len mod 16), so at least 17 sentinel bytes are always appended and
// the padded length is always block-aligned.
func (c *Codec) Encode(m PlainMessage) (CipherMessage, error) {
	if len(m) == 0 {
		return nil, ErrEmptyMessage
	}

	sentinel := m[len(m)-1] ^ 0x01
	padLen := 2*cipher.BlockSize - len(m)%cipher.BlockSize
	padded := make([]byte, 0, len(m)+padLen)
	padded = append(padded, m...)
	for i := 0; i < padLen; i++ {
		padded = append(padded, sentinel)
	}
	// The pad length above guarantees alignment; top up with the sentinel
	// if a short tail ever appears anyway.
	for rem := len(padded) % cipher.BlockSize; rem != 0; rem = len(padded) % cipher.BlockSize {
		padded = append(padded, sentinel)
	}

	out := make([]byte, len(padded))
	err := c.forEachBlock(len(padded)/cipher.BlockSize, func(i int) error {
		block, err := cipher.NewPlainBlock(padded[i*cipher.BlockSize : (i+1)*cipher.BlockSize])
		if err != nil {
			return err
		}
		encrypted, err := block.Encrypt(c.keys)
		if err != nil {
			return err
		}
		copy(out[i*cipher.BlockSize:], encrypted[:])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return CipherMessage(out), nil
}

// Decode decrypts the message block by block and strips the trailing run of
// sentinel bytes, where the sentinel is the last decrypted byte. If every
// decrypted byte equals the sentinel nothing is stripped.
func (c *Codec) Decode(m CipherMessage) (PlainMessage, error) {
	if len(m) == 0 || len(m)%cipher.BlockSize != 0 {
		return nil, fmt.Errorf("%w, got %d", ErrCipherLength, len(m))
	}

	out := make([]byte, len(m))
	err := c.forEachBlock(len(m)/cipher.BlockSize, func(i int) error {
		block, err := cipher.NewCipherBlock(m[i*cipher.BlockSize : (i+1)*cipher.BlockSize])
		if err != nil {
			return err
		}
		decrypted, err := block.Decrypt(c.keys)
		if err != nil {
			return err
		}
		copy(out[i*cipher.BlockSize:], decrypted[:])
		return nil
	})
	if err != nil {
		return nil, err
	}

	sentinel := out[len(out)-1]
	run := 0
	for i := len(out) - 1; i >= 0 && out[i] == sentinel; i-- {
		run++
	}
	if run == len(out) {
		run = 0
	}
	return PlainMessage(out[:len(out)-run]), nil
}

// forEachBlock runs fn for block indices 0..n-1, either inline or sharded
// across the configured workers. Each worker owns a disjoint set of
// indices, so writes never overlap.
func (c *Codec) forEachBlock(n int, fn func(i int) error) error {
	workers := c.workers
	if workers > n {
		workers = n
	}
	if workers < 2 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				if err := fn(i); err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Encode is a convenience wrapper encoding a single message sequentially.
func Encode(m PlainMessage, keys cipher.KeySchedule) (CipherMessage, error) {
	c, err := New(keys)
	if err != nil {
		return nil, err
	}
	return c.Encode(m)
}

// Decode is a convenience wrapper decoding a single message sequentially.
func Decode(m CipherMessage, keys cipher.KeySchedule) (PlainMessage, error) {
	c, err := New(keys)
	if err != nil {
		return nil, err
	}
	return c.Decode(m)
}

package codec

// PlainMessage is an arbitrary-length plaintext byte sequence. Only
// PlainMessages can be encoded; a decode never produces anything else.
type PlainMessage []byte

// CipherMessage is an encoded byte sequence, always a multiple of the block
// size. Only CipherMessages can be decoded; an encode never produces
// anything else.
type CipherMessage []byte

// NewPlainMessage creates a PlainMessage from a byte slice. The input is
// copied to keep the message immutable.
func NewPlainMessage(data []byte) PlainMessage {
	m := make([]byte, len(data))
	copy(m, data)
	return PlainMessage(m)
}

// NewCipherMessage creates a CipherMessage from a byte slice. The input is
// copied to keep the message immutable.
func NewCipherMessage(data []byte) CipherMessage {
	m := make([]byte, len(data))
	copy(m, data)
	return CipherMessage(m)
}

// Bytes returns the message contents as a fresh byte slice.
func (m PlainMessage) Bytes() []byte {
	out := make([]byte, len(m))
	copy(out, m)
	return out
}

// Bytes returns the message contents as a fresh byte slice.
func (m CipherMessage) Bytes() []byte {
	out := make([]byte, len(m))
	copy(out, m)
	return out
}

// Package cipher implements the pre-login key-blob handshake and the keyed
// XOR stream cipher applied to every byte exchanged after it.
package cipher

import (
	"crypto/sha1"
	"encoding/binary"
)

// tableSize is the length of the expanded keystream table. 4096 is large
// enough that short handshakes (the bulk of this protocol's traffic) never
// wrap around mid-packet, while staying cheap to derive up front.
const tableSize = 4096

// Stream is one direction's keyed XOR stream cipher state. The same
// state both encrypts and decrypts: XOR is its own inverse.
type Stream struct {
	table []byte
	pos   int
}

// newStream expands a 20-byte SHA-1 seed into a tableSize keystream by
// hashing the seed concatenated with a big-endian block counter, chaining
// blocks of pure SHA-1 output — a streaming KDF, not a recognized stream
// cipher in its own right.
func newStream(seed [sha1.Size]byte) *Stream {
	table := make([]byte, 0, tableSize)
	var counter [4]byte
	for i := uint32(0); len(table) < tableSize; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		h := sha1.New()
		h.Write(seed[:])
		h.Write(counter[:])
		table = h.Sum(table)
	}
	return &Stream{table: table[:tableSize]}
}

// XOR encrypts or decrypts data in place.
func (s *Stream) XOR(data []byte) {
	for i := range data {
		data[i] ^= s.table[s.pos%len(s.table)]
		s.pos++
	}
}

package cipher

import (
	"crypto/rand"
	"crypto/sha1"
	"fmt"
	"io"
)

// BlobSize is the fixed size of each exchanged key blob.
const BlobSize = 128

// Magic is the 4-byte value the server sends before exchanging key blobs.
var Magic = [4]byte{0x01, 0x00, 0x00, 0x00}

// HandshakeError wraps an IO or protocol failure during the pre-cipher
// handshake; the session treats any non-nil handshake error as fatal for
// the connection.
type HandshakeError struct {
	Step string
	Err  error
}

func (e *HandshakeError) Error() string { return fmt.Sprintf("cipher: handshake %s: %v", e.Step, e.Err) }
func (e *HandshakeError) Unwrap() error { return e.Err }

// ServerHandshake runs the server side of the pre-cipher exchange: send
// magic, read C1, send a fresh S1, read C2, send a fresh S2, then derive
// both directions' stream state from (C1, S1, C2, S2). ServerHandshake sets
// no deadlines itself: whatever deadline the caller put on rw covers the
// whole exchange, and it is not refreshed between the individual steps.
func ServerHandshake(rw io.ReadWriter) (inbound, outbound *Stream, err error) {
	if _, err := rw.Write(Magic[:]); err != nil {
		return nil, nil, &HandshakeError{Step: "send magic", Err: err}
	}

	c1 := make([]byte, BlobSize)
	if _, err := io.ReadFull(rw, c1); err != nil {
		return nil, nil, &HandshakeError{Step: "read C1", Err: err}
	}

	s1, err := randomBlob()
	if err != nil {
		return nil, nil, &HandshakeError{Step: "generate S1", Err: err}
	}
	if _, err := rw.Write(s1); err != nil {
		return nil, nil, &HandshakeError{Step: "send S1", Err: err}
	}

	c2 := make([]byte, BlobSize)
	if _, err := io.ReadFull(rw, c2); err != nil {
		return nil, nil, &HandshakeError{Step: "read C2", Err: err}
	}

	s2, err := randomBlob()
	if err != nil {
		return nil, nil, &HandshakeError{Step: "generate S2", Err: err}
	}
	if _, err := rw.Write(s2); err != nil {
		return nil, nil, &HandshakeError{Step: "send S2", Err: err}
	}

	inbound, outbound = DeriveKeys(c1, s1, c2, s2)
	return inbound, outbound, nil
}

func randomBlob() ([]byte, error) {
	b := make([]byte, BlobSize)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeriveKeys derives the server's inbound (client→server) and outbound
// (server→client) stream states from the four exchanged blobs. The two
// directions hash the blobs in opposite order so a passive observer who
// only sees one direction's plaintext cannot derive the other's key
// without both orderings.
func DeriveKeys(c1, s1, c2, s2 []byte) (inbound, outbound *Stream) {
	inboundSeed := sha1.Sum(concat(c1, s1, c2, s2))
	outboundSeed := sha1.Sum(concat(s2, c2, s1, c1))
	return newStream(inboundSeed), newStream(outboundSeed)
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

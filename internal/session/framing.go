// Package session implements the per-connection game session state
// machine: handshake, framing, cipher application, and packet/event
// translation in both directions.
package session

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/netherkeep/gameserver/internal/cipher"
)

// maxFrameLength is the spec's fatal-malformed-length ceiling.
const maxFrameLength = 0x8000

// ErrMalformedLength is returned when a frame header's total_length is
// outside [4, maxFrameLength].
type ErrMalformedLength struct{ Length uint16 }

func (e *ErrMalformedLength) Error() string {
	return fmt.Sprintf("session: malformed frame length %d", e.Length)
}

// readFrame reads one encrypted frame header + body from r, decrypting
// through stream as bytes arrive, and returns the opcode code and body.
func readFrame(r io.Reader, stream *cipher.Stream) (opcodeCode uint16, body []byte, err error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, err
	}
	stream.XOR(header[:])

	totalLength := binary.LittleEndian.Uint16(header[:2])
	opcodeCode = binary.LittleEndian.Uint16(header[2:])
	if totalLength < 4 || totalLength > maxFrameLength {
		return 0, nil, &ErrMalformedLength{Length: totalLength}
	}

	body = make([]byte, totalLength-4)
	if len(body) > 0 {
		if _, err := io.ReadFull(r, body); err != nil {
			return 0, nil, err
		}
		stream.XOR(body)
	}
	return opcodeCode, body, nil
}

// writeFrame encrypts and writes one frame: header and body are enciphered
// together so the stream cipher's position advances continuously across
// the boundary, matching how readFrame consumes it.
func writeFrame(w io.Writer, stream *cipher.Stream, opcodeCode uint16, body []byte) error {
	totalLength := uint16(4 + len(body))
	frame := make([]byte, 4, 4+len(body))
	binary.LittleEndian.PutUint16(frame[:2], totalLength)
	binary.LittleEndian.PutUint16(frame[2:4], opcodeCode)
	frame = append(frame, body...)
	stream.XOR(frame)
	_, err := w.Write(frame)
	return err
}

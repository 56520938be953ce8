package wire

import (
	"encoding/binary"
	"math"
)

// patch records a header slot whose absolute-offset value can only be
// computed once the total inline region length is known, at Finish.
type patch struct {
	target     *[]byte
	at         int
	payloadOff int
	absent     bool
}

// Encoder lays out a packet body: scalars and variable-length headers are
// appended to inline in field-declaration order, payloads for strings,
// byte buffers and sequence elements are appended to payload, and header
// offset slots are backfilled once the final inline length is known.
type Encoder struct {
	inline  []byte
	payload []byte
	patches []patch
	err     error
}

// Err returns the first error recorded by a Write call, if any — currently
// only WriteString, for a string holding a non-BMP rune.
func (e *Encoder) Err() error { return e.err }

func (e *Encoder) WriteU8(v uint8)   { e.inline = append(e.inline, v) }
func (e *Encoder) WriteI8(v int8)    { e.WriteU8(uint8(v)) }
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.WriteU8(1)
	} else {
		e.WriteU8(0)
	}
}

func (e *Encoder) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.inline = append(e.inline, b[:]...)
}
func (e *Encoder) WriteI16(v int16) { e.WriteU16(uint16(v)) }

func (e *Encoder) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.inline = append(e.inline, b[:]...)
}
func (e *Encoder) WriteI32(v int32)   { e.WriteU32(uint32(v)) }
func (e *Encoder) WriteEnum(v uint32) { e.WriteU32(v) }

func (e *Encoder) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.inline = append(e.inline, b[:]...)
}
func (e *Encoder) WriteI64(v int64) { e.WriteU64(uint64(v)) }

func (e *Encoder) WriteF32(v float32) { e.WriteU32(math.Float32bits(v)) }
func (e *Encoder) WriteF64(v float64) { e.WriteU64(math.Float64bits(v)) }

// WriteString appends a UCS-2LE, null-terminated string payload and a
// patched offset header. An empty string still occupies a payload slot
// (just the terminator) rather than being marked absent, matching the
// encoder's "always materialize what was set" stance; absence is reserved
// for fields the schema itself omits.
//
// A string holding a rune outside the Basic Multilingual Plane cannot be
// represented and is recorded on Err rather than returned here, since
// Packet.Encode has no error return to propagate it through; EncodeBody
// checks Err after Encode runs and turns it into a real error.
func (e *Encoder) WriteString(s string) {
	encoded, err := encodeUCS2(s)
	if err != nil && e.err == nil {
		e.err = err
	}
	at := len(e.inline)
	e.inline = append(e.inline, 0, 0)
	payloadOff := len(e.payload)
	e.payload = append(e.payload, encoded...)
	e.payload = append(e.payload, 0, 0)
	e.patches = append(e.patches, patch{target: &e.inline, at: at, payloadOff: payloadOff})
}

// WriteBytes appends a raw byte-buffer payload with a {offset, length}
// header; length is known immediately, offset is patched at Finish.
func (e *Encoder) WriteBytes(b []byte) {
	at := len(e.inline)
	e.inline = append(e.inline, 0, 0)
	e.WriteU16(uint16(len(b)))
	payloadOff := len(e.payload)
	e.payload = append(e.payload, b...)
	e.patches = append(e.patches, patch{target: &e.inline, at: at, payloadOff: payloadOff})
}

// WriteSeq appends a linked-list sequence: a {count, first_offset} header
// and, per element, a 4-byte {self_offset, next_offset} prologue followed
// by the element's own inline-only encoding. Elements must not use
// WriteString/WriteBytes/WriteSeq themselves — the format only allows
// sequences of fixed (scalar-only) element schemas.
func WriteSeq[T any](e *Encoder, items []T, encodeElem func(inline *[]byte, item T)) {
	e.WriteU16(uint16(len(items)))
	at := len(e.inline)
	e.inline = append(e.inline, 0, 0)
	if len(items) == 0 {
		e.patches = append(e.patches, patch{target: &e.inline, at: at, absent: true})
		return
	}

	elemBytes := make([][]byte, len(items))
	for i, it := range items {
		encodeElem(&elemBytes[i], it)
	}
	elemStart := make([]int, len(items))
	elemStart[0] = len(e.payload)
	for i := 1; i < len(items); i++ {
		elemStart[i] = elemStart[i-1] + 4 + len(elemBytes[i-1])
	}
	e.patches = append(e.patches, patch{target: &e.inline, at: at, payloadOff: elemStart[0]})

	for i := range items {
		selfAt := len(e.payload)
		e.payload = append(e.payload, 0, 0, 0, 0)
		e.patches = append(e.patches, patch{target: &e.payload, at: selfAt, payloadOff: elemStart[i]})
		if i < len(items)-1 {
			e.patches = append(e.patches, patch{target: &e.payload, at: selfAt + 2, payloadOff: elemStart[i+1]})
		} else {
			e.patches = append(e.patches, patch{target: &e.payload, at: selfAt + 2, absent: true})
		}
		e.payload = append(e.payload, elemBytes[i]...)
	}
}

// Finish lays inline bytes followed by the payload region and backfills
// every patched offset header, then returns the complete packet body.
func (e *Encoder) Finish() []byte {
	inlineLen := len(e.inline)
	for _, p := range e.patches {
		var v uint16
		if !p.absent {
			v = uint16(4 + inlineLen + p.payloadOff)
		}
		binary.LittleEndian.PutUint16((*p.target)[p.at:], v)
	}
	body := make([]byte, 0, len(e.inline)+len(e.payload))
	body = append(body, e.inline...)
	body = append(body, e.payload...)
	return body
}

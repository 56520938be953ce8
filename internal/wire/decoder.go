package wire

import (
	"encoding/binary"
	"math"
)

// Decoder walks a packet body (the bytes after the 4-byte frame header) in
// field-declaration order. Every position it reports is relative to the
// start of the total framed packet, matching the offset convention headers
// use: absolute offset 0 means "absent", absolute offset N addresses
// body[N-4].
type Decoder struct {
	body []byte
	pos  int
}

// NewDecoder wraps a packet body for sequential field decoding.
func NewDecoder(body []byte) *Decoder {
	return &Decoder{body: body}
}

// Pos reports the current cursor as an absolute packet position.
func (d *Decoder) Pos() int { return d.pos + 4 }

func (d *Decoder) need(n int) error {
	if d.pos+n > len(d.body) {
		return newErr(KindOffsetOutsideData, d.Pos(), "short read")
	}
	return nil
}

// Remaining reports how many unconsumed bytes remain in the body. No
// decode path in this package checks it; DecodeBody does not reject
// trailing bytes.
func (d *Decoder) Remaining() int { return len(d.body) - d.pos }

func (d *Decoder) ReadU8() (uint8, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	v := d.body[d.pos]
	d.pos++
	return v, nil
}

func (d *Decoder) ReadI8() (int8, error) {
	v, err := d.ReadU8()
	return int8(v), err
}

func (d *Decoder) ReadU16() (uint16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(d.body[d.pos:])
	d.pos += 2
	return v, nil
}

func (d *Decoder) ReadI16() (int16, error) {
	v, err := d.ReadU16()
	return int16(v), err
}

func (d *Decoder) ReadU32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(d.body[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *Decoder) ReadI32() (int32, error) {
	v, err := d.ReadU32()
	return int32(v), err
}

func (d *Decoder) ReadU64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(d.body[d.pos:])
	d.pos += 8
	return v, nil
}

func (d *Decoder) ReadI64() (int64, error) {
	v, err := d.ReadU64()
	return int64(v), err
}

func (d *Decoder) ReadF32() (float32, error) {
	v, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (d *Decoder) ReadF64() (float64, error) {
	v, err := d.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBool enforces that the wire byte is exactly 0 or 1.
func (d *Decoder) ReadBool() (bool, error) {
	pos := d.Pos()
	v, err := d.ReadU8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, newErr(KindInvalidBoolEncoding, pos, "")
	}
}

// ReadEnum reads a u32 discriminant and validates it via valid, which
// reports whether the caller's enum type recognizes the value.
func (d *Decoder) ReadEnum(valid func(uint32) bool) (uint32, error) {
	pos := d.Pos()
	v, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	if !valid(v) {
		return 0, newErr(KindUnknownEnum, pos, "")
	}
	return v, nil
}

// resolveOffset translates an absolute header offset into a body index.
// offset 0 reports absent=true; any other offset is validated to land
// inside the body.
func (d *Decoder) resolveOffset(offset uint16) (bodyPos int, absent bool, err error) {
	if offset == 0 {
		return 0, true, nil
	}
	bodyPos = int(offset) - 4
	if bodyPos < 0 || bodyPos >= len(d.body) {
		return 0, false, newErr(KindOffsetOutsideData, d.Pos(), "offset out of range")
	}
	return bodyPos, false, nil
}

// ReadString decodes a header-referenced UCS-2LE, null-terminated string.
// An absent header (offset 0) decodes to "".
func (d *Decoder) ReadString() (string, error) {
	offset, err := d.ReadU16()
	if err != nil {
		return "", err
	}
	bodyPos, absent, err := d.resolveOffset(offset)
	if err != nil {
		return "", err
	}
	if absent {
		return "", nil
	}
	start := bodyPos
	p := bodyPos
	for {
		if p+2 > len(d.body) {
			return "", newErr(KindStringNotNullTerminated, p+4, "")
		}
		u := binary.LittleEndian.Uint16(d.body[p:])
		p += 2
		if u == 0 {
			break
		}
	}
	return decodeUCS2(d.body[start : p-2])
}

// ReadBytes decodes a header-referenced raw byte buffer.
func (d *Decoder) ReadBytes() ([]byte, error) {
	offset, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	length, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	bodyPos, absent, err := d.resolveOffset(offset)
	if err != nil {
		return nil, err
	}
	if absent {
		return nil, nil
	}
	pos := d.Pos()
	if bodyPos+int(length) > len(d.body) {
		return nil, newErr(KindBytesTooBig, pos, "")
	}
	out := make([]byte, length)
	copy(out, d.body[bodyPos:bodyPos+int(length)])
	return out, nil
}

// ReadSeq decodes a header-referenced linked-list sequence: a u16 count and
// u16 first_offset header, followed by count elements each prefixed with a
// 4-byte {self_offset, next_offset} prologue. The decoder restores the body
// cursor to immediately after the header once the last element is read.
func ReadSeq[T any](d *Decoder, decodeElem func(d *Decoder) (T, error)) ([]T, error) {
	count, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	firstOffset, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	savedPos := d.pos
	if count == 0 {
		return nil, nil
	}
	out := make([]T, 0, count)
	expected := firstOffset
	for i := uint16(0); i < count; i++ {
		bodyPos, absent, err := d.resolveOffset(expected)
		if err != nil {
			return nil, err
		}
		if absent {
			return nil, newErr(KindInvalidSeqEntry, d.Pos(), "unexpected absent element")
		}
		d.pos = bodyPos
		self, err := d.ReadU16()
		if err != nil {
			return nil, err
		}
		if self != expected {
			return nil, newErr(KindInvalidSeqEntry, d.Pos(), "self_offset mismatch")
		}
		next, err := d.ReadU16()
		if err != nil {
			return nil, err
		}
		elem, err := decodeElem(d)
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
		expected = next
	}
	d.pos = savedPos
	return out, nil
}

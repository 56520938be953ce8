package wire

import (
	"bytes"
	"errors"
	"testing"
)

// primitives exercises every scalar writer/reader pair against a single
// fixed struct, independent of any packet schema.
type primitives struct {
	a uint8
	b int8
	c float32
	d float64
}

func (p *primitives) Encode(e *Encoder) {
	e.WriteU8(p.a)
	e.WriteI8(p.b)
	e.WriteF32(p.c)
	e.WriteF64(p.d)
}

func (p *primitives) Decode(d *Decoder) error {
	var err error
	if p.a, err = d.ReadU8(); err != nil {
		return err
	}
	if p.b, err = d.ReadI8(); err != nil {
		return err
	}
	if p.c, err = d.ReadF32(); err != nil {
		return err
	}
	if p.d, err = d.ReadF64(); err != nil {
		return err
	}
	return nil
}

// TestPrimitiveRoundTrip checks encode(decode(x)) == x and matches the
// fixed byte vector {a:18, b:-13, c:2.2, d:1.0} encodes to.
func TestPrimitiveRoundTrip(t *testing.T) {
	p := &primitives{a: 18, b: -13, c: 2.2, d: 1.0}
	got, err := EncodeBody(p)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	want := []byte{0x12, 0xf3, 0xcd, 0xcc, 0x0c, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f}
	if !bytes.Equal(got, want) {
		t.Fatalf("encode mismatch:\n got  % x\n want % x", got, want)
	}

	round := &primitives{}
	if err := DecodeBody(round, got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *round != *p {
		t.Fatalf("round trip mismatch: got %+v, want %+v", round, p)
	}
}

// TestStringRoundTrip checks decode(encode(s)) == s for an empty and for
// populated string fields, through the offset/patch machinery.
func TestStringRoundTrip(t *testing.T) {
	cases := []string{"", "TestPlayer", "unicode日本語"}
	for _, s := range cases {
		e := &Encoder{}
		e.WriteString(s)
		body := e.Finish()

		d := NewDecoder(body)
		got, err := d.ReadString()
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if got != s {
			t.Fatalf("round trip mismatch: got %q, want %q", got, s)
		}
	}
}

// TestWriteStringRejectsNonBMPRune checks a supplementary-plane rune (here
// an emoji, U+1F600, well above the U+FFFF BMP ceiling) is rejected rather
// than silently encoded as a UTF-16 surrogate pair.
func TestWriteStringRejectsNonBMPRune(t *testing.T) {
	e := &Encoder{}
	e.WriteString("hello \U0001F600")
	if e.Err() == nil {
		t.Fatalf("expected a non-BMP rune to produce an Encoder error")
	}
	var nonBMP *ErrNonBMPRune
	if !errors.As(e.Err(), &nonBMP) {
		t.Fatalf("Err() = %v, want *ErrNonBMPRune", e.Err())
	}
	if nonBMP.Rune != '\U0001F600' {
		t.Fatalf("Rune = %U, want %U", nonBMP.Rune, '\U0001F600')
	}
}

// TestBytesRoundTrip checks a raw byte-buffer field through the same
// offset+length header machinery strings use.
func TestBytesRoundTrip(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	e := &Encoder{}
	e.WriteBytes(want)
	body := e.Finish()

	d := NewDecoder(body)
	got, err := d.ReadBytes()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("round trip mismatch: got % x, want % x", got, want)
	}
}

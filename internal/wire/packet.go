package wire

// Packet is satisfied by every generated (hand-written) packet schema type.
// Encode/Decode only ever touch inline scalars and the Encoder/Decoder
// Read/Write helpers — no reflection is involved, per the schema-driven
// codec design.
type Packet interface {
	Encode(e *Encoder)
	Decode(d *Decoder) error
}

// EncodeBody runs a packet's Encode and returns the finished body bytes
// (everything after the 4-byte frame header). An error surfaces a field
// that Encode recorded on the Encoder but had no return path for, such as
// a string containing a non-BMP rune.
func EncodeBody(p Packet) ([]byte, error) {
	e := &Encoder{}
	p.Encode(e)
	if err := e.Err(); err != nil {
		return nil, err
	}
	return e.Finish(), nil
}

// DecodeBody runs a packet's Decode against a body buffer.
func DecodeBody(p Packet, body []byte) error {
	return p.Decode(NewDecoder(body))
}

package protocol

import "github.com/netherkeep/gameserver/internal/wire"

// SPing is a server-to-client ping; CPong answers it. The pair runs in the
// opposite direction from the rest of the handshake (server-initiated,
// client-answered). Only the schema lives here: no system in this core
// sends SPing on a timer.
type SPing struct {
	Sequence uint32
}

func (p *SPing) Encode(e *wire.Encoder) { e.WriteU32(p.Sequence) }

func (p *SPing) Decode(d *wire.Decoder) error {
	v, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.Sequence = v
	return nil
}

// CPong answers an SPing with the same sequence number.
type CPong struct {
	Sequence uint32
}

func (p *CPong) Encode(e *wire.Encoder) { e.WriteU32(p.Sequence) }

func (p *CPong) Decode(d *wire.Decoder) error {
	v, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.Sequence = v
	return nil
}

package protocol

import "github.com/netherkeep/gameserver/internal/wire"

// CSetVisibleRange requests the client's desired AOI radius; decoded and
// routed to Global, with no gameplay effect in this core.
type CSetVisibleRange struct {
	Range uint32
}

func (p *CSetVisibleRange) Encode(e *wire.Encoder) { e.WriteU32(p.Range) }

func (p *CSetVisibleRange) Decode(d *wire.Decoder) error {
	v, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.Range = v
	return nil
}

package protocol

import "github.com/netherkeep/gameserver/internal/wire"

// SLoadingScreenControlInfo is the first packet pushed during post-init,
// once a connection is both verified and version_checked.
type SLoadingScreenControlInfo struct {
	CustomScreenEnabled bool
}

func (p *SLoadingScreenControlInfo) Encode(e *wire.Encoder) { e.WriteBool(p.CustomScreenEnabled) }

func (p *SLoadingScreenControlInfo) Decode(d *wire.Decoder) error {
	v, err := d.ReadBool()
	if err != nil {
		return err
	}
	p.CustomScreenEnabled = v
	return nil
}

// SRemainPlayTime reports a playtime-limit countdown; the core's account
// backend is an external collaborator, so a deployment without one should
// send RemainingMinutes == 0 (unlimited).
type SRemainPlayTime struct {
	RemainingMinutes uint32
}

func (p *SRemainPlayTime) Encode(e *wire.Encoder) { e.WriteU32(p.RemainingMinutes) }

func (p *SRemainPlayTime) Decode(d *wire.Decoder) error {
	v, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.RemainingMinutes = v
	return nil
}

// SLoginAccountInfo carries display-only account metadata used by the
// client's character-select screen.
type SLoginAccountInfo struct {
	AccountName string
	Privilege   uint32
}

func (p *SLoginAccountInfo) Encode(e *wire.Encoder) {
	e.WriteString(p.AccountName)
	e.WriteU32(p.Privilege)
}

func (p *SLoginAccountInfo) Decode(d *wire.Decoder) error {
	name, err := d.ReadString()
	if err != nil {
		return err
	}
	priv, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.AccountName = name
	p.Privilege = priv
	return nil
}

package protocol

import "github.com/netherkeep/gameserver/internal/wire"

// CLoginArbiter presents a login ticket obtained from an external login
// server, to be redeemed against the account backend.
type CLoginArbiter struct {
	MasterAccountName string
	Ticket             []byte
	Region             uint32
}

func (p *CLoginArbiter) Encode(e *wire.Encoder) {
	e.WriteString(p.MasterAccountName)
	e.WriteBytes(p.Ticket)
	e.WriteU32(p.Region)
}

func (p *CLoginArbiter) Decode(d *wire.Decoder) error {
	name, err := d.ReadString()
	if err != nil {
		return err
	}
	ticket, err := d.ReadBytes()
	if err != nil {
		return err
	}
	region, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.MasterAccountName = name
	p.Ticket = ticket
	p.Region = region
	return nil
}

// SLoginArbiter answers a CLoginArbiter.
type SLoginArbiter struct {
	Success      bool
	LoginQueue   bool
	Status       int32
	Unk1         uint32
	Region       uint32
	PvpDisabled  bool
	Unk2         uint32
	Unk3         uint32
}

func (p *SLoginArbiter) Encode(e *wire.Encoder) {
	e.WriteBool(p.Success)
	e.WriteBool(p.LoginQueue)
	e.WriteI32(p.Status)
	e.WriteU32(p.Unk1)
	e.WriteU32(p.Region)
	e.WriteBool(p.PvpDisabled)
	e.WriteU32(p.Unk2)
	e.WriteU32(p.Unk3)
}

func (p *SLoginArbiter) Decode(d *wire.Decoder) error {
	var err error
	if p.Success, err = d.ReadBool(); err != nil {
		return err
	}
	if p.LoginQueue, err = d.ReadBool(); err != nil {
		return err
	}
	if p.Status, err = d.ReadI32(); err != nil {
		return err
	}
	if p.Unk1, err = d.ReadU32(); err != nil {
		return err
	}
	if p.Region, err = d.ReadU32(); err != nil {
		return err
	}
	if p.PvpDisabled, err = d.ReadBool(); err != nil {
		return err
	}
	if p.Unk2, err = d.ReadU32(); err != nil {
		return err
	}
	if p.Unk3, err = d.ReadU32(); err != nil {
		return err
	}
	return nil
}

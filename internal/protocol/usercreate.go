package protocol

import "github.com/netherkeep/gameserver/internal/wire"

// CCanCreateUser asks whether a new character slot may be used at all
// (account-level gate, independent of a specific name).
type CCanCreateUser struct {
	AccountSlot uint32
}

func (p *CCanCreateUser) Encode(e *wire.Encoder) { e.WriteU32(p.AccountSlot) }

func (p *CCanCreateUser) Decode(d *wire.Decoder) error {
	v, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.AccountSlot = v
	return nil
}

// SCanCreateUser answers a CCanCreateUser.
type SCanCreateUser struct {
	Ok bool
}

func (p *SCanCreateUser) Encode(e *wire.Encoder) { e.WriteBool(p.Ok) }

func (p *SCanCreateUser) Decode(d *wire.Decoder) error {
	v, err := d.ReadBool()
	if err != nil {
		return err
	}
	p.Ok = v
	return nil
}

// CCheckUserName asks whether a character name is available.
type CCheckUserName struct {
	Name string
}

func (p *CCheckUserName) Encode(e *wire.Encoder) { e.WriteString(p.Name) }

func (p *CCheckUserName) Decode(d *wire.Decoder) error {
	v, err := d.ReadString()
	if err != nil {
		return err
	}
	p.Name = v
	return nil
}

// SCheckUserName answers a CCheckUserName.
type SCheckUserName struct {
	Available bool
}

func (p *SCheckUserName) Encode(e *wire.Encoder) { e.WriteBool(p.Available) }

func (p *SCheckUserName) Decode(d *wire.Decoder) error {
	v, err := d.ReadBool()
	if err != nil {
		return err
	}
	p.Available = v
	return nil
}

// CCreateUser requests character creation.
type CCreateUser struct {
	Name    string
	ClassID uint32
}

func (p *CCreateUser) Encode(e *wire.Encoder) {
	e.WriteString(p.Name)
	e.WriteU32(p.ClassID)
}

func (p *CCreateUser) Decode(d *wire.Decoder) error {
	name, err := d.ReadString()
	if err != nil {
		return err
	}
	class, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.Name = name
	p.ClassID = class
	return nil
}

// SCreateUser answers a CCreateUser.
type SCreateUser struct {
	Ok          bool
	CharacterID uint32
}

func (p *SCreateUser) Encode(e *wire.Encoder) {
	e.WriteBool(p.Ok)
	e.WriteU32(p.CharacterID)
}

func (p *SCreateUser) Decode(d *wire.Decoder) error {
	ok, err := d.ReadBool()
	if err != nil {
		return err
	}
	cid, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.Ok = ok
	p.CharacterID = cid
	return nil
}

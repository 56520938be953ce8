package protocol

import "github.com/netherkeep/gameserver/internal/wire"

// CGetUserList requests the character roster for the given account slot.
type CGetUserList struct {
	AccountSlot uint32
}

func (p *CGetUserList) Encode(e *wire.Encoder) { e.WriteU32(p.AccountSlot) }

func (p *CGetUserList) Decode(d *wire.Decoder) error {
	v, err := d.ReadU32()
	if err != nil {
		return err
	}
	p.AccountSlot = v
	return nil
}

// UserSlotEntry is a fixed, scalar-only roster entry.
type UserSlotEntry struct {
	SlotIndex   uint32
	CharacterID uint32
}

func encodeUserSlotEntry(buf *[]byte, v UserSlotEntry) {
	*buf = append(*buf,
		byte(v.SlotIndex), byte(v.SlotIndex>>8), byte(v.SlotIndex>>16), byte(v.SlotIndex>>24),
		byte(v.CharacterID), byte(v.CharacterID>>8), byte(v.CharacterID>>16), byte(v.CharacterID>>24),
	)
}

func decodeUserSlotEntry(d *wire.Decoder) (UserSlotEntry, error) {
	idx, err := d.ReadU32()
	if err != nil {
		return UserSlotEntry{}, err
	}
	cid, err := d.ReadU32()
	if err != nil {
		return UserSlotEntry{}, err
	}
	return UserSlotEntry{SlotIndex: idx, CharacterID: cid}, nil
}

// SGetUserList answers a CGetUserList with the roster slots in use.
type SGetUserList struct {
	Slots []UserSlotEntry
}

func (p *SGetUserList) Encode(e *wire.Encoder) {
	wire.WriteSeq(e, p.Slots, encodeUserSlotEntry)
}

func (p *SGetUserList) Decode(d *wire.Decoder) error {
	v, err := wire.ReadSeq(d, decodeUserSlotEntry)
	if err != nil {
		return err
	}
	p.Slots = v
	return nil
}

// Package protocol holds the hand-written wire schema for every packet the
// core exchanges during connection registration and the login handshake.
// Each type implements wire.Packet directly; there is no reflection.
package protocol

import "github.com/netherkeep/gameserver/internal/wire"

// VersionEntry is the fixed, scalar-only element type of CCheckVersion's
// version sequence. Sequence elements may only contain inline fields.
type VersionEntry struct {
	Index uint32
	Value uint32
}

func encodeVersionEntry(buf *[]byte, v VersionEntry) {
	*buf = append(*buf,
		byte(v.Index), byte(v.Index>>8), byte(v.Index>>16), byte(v.Index>>24),
		byte(v.Value), byte(v.Value>>8), byte(v.Value>>16), byte(v.Value>>24),
	)
}

func decodeVersionEntry(d *wire.Decoder) (VersionEntry, error) {
	idx, err := d.ReadU32()
	if err != nil {
		return VersionEntry{}, err
	}
	val, err := d.ReadU32()
	if err != nil {
		return VersionEntry{}, err
	}
	return VersionEntry{Index: idx, Value: val}, nil
}

// CCheckVersion is the client's build-version announcement: a sequence of
// (index, value) build identifiers. The connection-manager system rejects
// anything other than exactly two entries.
type CCheckVersion struct {
	Version []VersionEntry
}

func (p *CCheckVersion) Encode(e *wire.Encoder) {
	wire.WriteSeq(e, p.Version, encodeVersionEntry)
}

func (p *CCheckVersion) Decode(d *wire.Decoder) error {
	v, err := wire.ReadSeq(d, decodeVersionEntry)
	if err != nil {
		return err
	}
	p.Version = v
	return nil
}

// SCheckVersion answers a CCheckVersion.
type SCheckVersion struct {
	Ok bool
}

func (p *SCheckVersion) Encode(e *wire.Encoder) { e.WriteBool(p.Ok) }

func (p *SCheckVersion) Decode(d *wire.Decoder) error {
	v, err := d.ReadBool()
	if err != nil {
		return err
	}
	p.Ok = v
	return nil
}

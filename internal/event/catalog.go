package event

import (
	"fmt"

	"github.com/netherkeep/gameserver/internal/ecs"
	"github.com/netherkeep/gameserver/internal/opcode"
	"github.com/netherkeep/gameserver/internal/protocol"
	"github.com/netherkeep/gameserver/internal/wire"
)

// ErrNoEventMapping is returned by FromWire when an opcode name has no
// Request variant registered in the catalog below.
type ErrNoEventMapping struct{ Name opcode.Name }

func (e *ErrNoEventMapping) Error() string {
	return fmt.Sprintf("event: no Request variant for opcode %q", e.Name)
}

// catalog is the single source of truth from which every inbound opcode
// name is dispatched to its Request event constructor; FromWire is the only
// mapping derived from it. Each event's target and opcode name are not
// entries here: they are methods (EventTarget, OpcodeName) declared on the
// event type itself in packet_events.go and system_events.go.
var catalog = map[opcode.Name]func(connID ecs.EntityID, body []byte) (Event, error){
	opcode.CCheckVersion: func(connID ecs.EntityID, body []byte) (Event, error) {
		p := &protocol.CCheckVersion{}
		if err := wire.DecodeBody(p, body); err != nil {
			return nil, err
		}
		return &RequestCheckVersion{ConnID: connID, Packet: p}, nil
	},
	opcode.CLoginArbiter: func(connID ecs.EntityID, body []byte) (Event, error) {
		p := &protocol.CLoginArbiter{}
		if err := wire.DecodeBody(p, body); err != nil {
			return nil, err
		}
		return &RequestLoginArbiter{ConnID: connID, Packet: p}, nil
	},
	opcode.CSetVisibleRange: func(connID ecs.EntityID, body []byte) (Event, error) {
		p := &protocol.CSetVisibleRange{}
		if err := wire.DecodeBody(p, body); err != nil {
			return nil, err
		}
		return &RequestSetVisibleRange{ConnID: connID, Packet: p}, nil
	},
	opcode.CGetUserList: func(connID ecs.EntityID, body []byte) (Event, error) {
		p := &protocol.CGetUserList{}
		if err := wire.DecodeBody(p, body); err != nil {
			return nil, err
		}
		return &RequestGetUserList{ConnID: connID, Packet: p}, nil
	},
	opcode.CPong: func(connID ecs.EntityID, body []byte) (Event, error) {
		p := &protocol.CPong{}
		if err := wire.DecodeBody(p, body); err != nil {
			return nil, err
		}
		return &RequestPong{ConnID: connID, Packet: p}, nil
	},
	opcode.CCanCreateUser: func(connID ecs.EntityID, body []byte) (Event, error) {
		p := &protocol.CCanCreateUser{}
		if err := wire.DecodeBody(p, body); err != nil {
			return nil, err
		}
		return &RequestCanCreateUser{ConnID: connID, Packet: p}, nil
	},
	opcode.CCheckUserName: func(connID ecs.EntityID, body []byte) (Event, error) {
		p := &protocol.CCheckUserName{}
		if err := wire.DecodeBody(p, body); err != nil {
			return nil, err
		}
		return &RequestCheckUserName{ConnID: connID, Packet: p}, nil
	},
	opcode.CCreateUser: func(connID ecs.EntityID, body []byte) (Event, error) {
		p := &protocol.CCreateUser{}
		if err := wire.DecodeBody(p, body); err != nil {
			return nil, err
		}
		return &RequestCreateUser{ConnID: connID, Packet: p}, nil
	},
}

// FromWire constructs the Request event corresponding to an inbound
// opcode, dispatching to the codec for its packet body.
func FromWire(connID ecs.EntityID, name opcode.Name, body []byte) (Event, error) {
	ctor, ok := catalog[name]
	if !ok {
		return nil, &ErrNoEventMapping{Name: name}
	}
	return ctor(connID, body)
}

// ToWire is the inverse for any Response (or server-pushed) packet event:
// it never needs a catalog lookup because PacketEvent already carries its
// own opcode name and packet. The error return surfaces an encode-time
// rejection, such as a string field holding a non-BMP rune.
func ToWire(e PacketEvent) (opcode.Name, []byte, error) {
	body, err := wire.EncodeBody(e.WirePacket())
	return e.OpcodeName(), body, err
}

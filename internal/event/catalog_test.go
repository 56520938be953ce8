package event

import (
	"testing"

	"github.com/netherkeep/gameserver/internal/ecs"
	"github.com/netherkeep/gameserver/internal/opcode"
	"github.com/netherkeep/gameserver/internal/protocol"
	"github.com/netherkeep/gameserver/internal/wire"
)

// TestFromWireRoundTrip checks that an opcode's catalog entry decodes a
// packet body into the matching Request event, carrying the connection id
// FromWire was called with.
func TestFromWireRoundTrip(t *testing.T) {
	connID := ecs.EntityID(5)
	body, err := wire.EncodeBody(&protocol.CPong{Sequence: 99})
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}

	ev, err := FromWire(connID, opcode.CPong, body)
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	req, ok := ev.(*RequestPong)
	if !ok {
		t.Fatalf("got %T, want *RequestPong", ev)
	}
	if req.ConnID != connID {
		t.Fatalf("ConnID = %d, want %d", req.ConnID, connID)
	}
	if req.Packet.Sequence != 99 {
		t.Fatalf("Sequence = %d, want 99", req.Packet.Sequence)
	}
}

// TestFromWireUnknownOpcode checks the no-mapping error path.
func TestFromWireUnknownOpcode(t *testing.T) {
	_, err := FromWire(0, opcode.Name("NOT_A_REQUEST_OPCODE"), nil)
	if err == nil {
		t.Fatalf("expected an error for an unmapped opcode")
	}
}

// TestToWireUsesOwnOpcode checks ToWire needs no catalog lookup: the event
// itself names its opcode and encodes its own packet.
func TestToWireUsesOwnOpcode(t *testing.T) {
	resp := &ResponsePing{ConnID: 1, Packet: &protocol.SPing{Sequence: 7}}
	name, body, err := ToWire(resp)
	if err != nil {
		t.Fatalf("ToWire: %v", err)
	}
	if name != opcode.SPing {
		t.Fatalf("opcode name = %q, want %q", name, opcode.SPing)
	}

	got := &protocol.SPing{}
	if err := wire.DecodeBody(got, body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Sequence != 7 {
		t.Fatalf("Sequence = %d, want 7", got.Sequence)
	}
}

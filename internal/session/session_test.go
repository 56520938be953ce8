package session

import (
	"bytes"
	"context"
	"io"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/netherkeep/gameserver/internal/cipher"
	"github.com/netherkeep/gameserver/internal/ecs"
	"github.com/netherkeep/gameserver/internal/event"
	"github.com/netherkeep/gameserver/internal/opcode"
	"github.com/netherkeep/gameserver/internal/protocol"
	"github.com/netherkeep/gameserver/internal/wire"
	"github.com/netherkeep/gameserver/internal/world"
)

// clientHandshake drives the client side of cipher.ServerHandshake over
// conn and returns the derived client-side streams.
func clientHandshake(t *testing.T, conn net.Conn) (inbound, outbound *cipher.Stream) {
	t.Helper()
	var magic [4]byte
	if _, err := io.ReadFull(conn, magic[:]); err != nil {
		t.Fatalf("read magic: %v", err)
	}

	c1 := bytes.Repeat([]byte{0xaa}, cipher.BlobSize)
	if _, err := conn.Write(c1); err != nil {
		t.Fatalf("write C1: %v", err)
	}
	s1 := make([]byte, cipher.BlobSize)
	if _, err := io.ReadFull(conn, s1); err != nil {
		t.Fatalf("read S1: %v", err)
	}
	c2 := bytes.Repeat([]byte{0xbb}, cipher.BlobSize)
	if _, err := conn.Write(c2); err != nil {
		t.Fatalf("write C2: %v", err)
	}
	s2 := make([]byte, cipher.BlobSize)
	if _, err := io.ReadFull(conn, s2); err != nil {
		t.Fatalf("read S2: %v", err)
	}

	return cipher.DeriveKeys(c1, s1, c2, s2)
}

// registeringRouter fulfills RequestRegisterConnection synchronously with
// a fixed id and forwards every later event onto got, for inspection.
type registeringRouter struct {
	connID ecs.EntityID
	got    chan event.Event
}

func (r *registeringRouter) route(ctx context.Context, e event.Event) error {
	if reg, ok := e.(event.RequestRegisterConnection); ok {
		reg.ResponseChannel <- event.ResponseRegisterConnection{ConnID: r.connID}
		return nil
	}
	select {
	case r.got <- e:
	case <-ctx.Done():
	}
	return nil
}

func newTestSession(t *testing.T) (sess *Session, client net.Conn, router *registeringRouter) {
	t.Helper()
	serverConn, clientConn := net.Pipe()
	t.Cleanup(func() { clientConn.Close() })

	opcodes := opcode.NewFromNames(opcode.DefaultNames)
	registry := world.NewConnectionRegistry()
	router = &registeringRouter{connID: ecs.EntityID(11), got: make(chan event.Event, 4)}
	cfg := Config{
		HandshakeTimeout:        time.Second,
		IdleTimeout:             0,
		ResponseChannelCapacity: 8,
	}
	sess = New(serverConn, opcodes, router.route, registry, cfg, zap.NewNop())
	return sess, clientConn, router
}

// TestSessionLifecycleReachesRunning drives the handshake and registration
// steps and checks the state machine lands on Running with its connection
// id recorded.
func TestSessionLifecycleReachesRunning(t *testing.T) {
	sess, client, router := newTestSession(t)
	_ = router

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		sess.Start(ctx)
		close(done)
	}()

	clientHandshake(t, client)

	deadline := time.After(time.Second)
	for sess.State() != StateRunning {
		select {
		case <-deadline:
			t.Fatalf("session never reached Running, stuck at %s", sess.State())
		case <-time.After(time.Millisecond):
		}
	}
	if sess.connID != router.connID {
		t.Fatalf("connID = %d, want %d", sess.connID, router.connID)
	}

	cancel()
	<-done
	if sess.State() != StateClosed {
		t.Fatalf("state after Start returns = %s, want Closed", sess.State())
	}
}

// TestSessionRoutesInboundPacket checks a framed, enciphered client packet
// decodes into the matching Request event and reaches the router.
func TestSessionRoutesInboundPacket(t *testing.T) {
	sess, client, router := newTestSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		sess.Start(ctx)
		close(done)
	}()

	clientInbound, _ := clientHandshake(t, client)

	body, err := wire.EncodeBody(&protocol.CPong{Sequence: 42})
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	code, err := opcode.NewFromNames(opcode.DefaultNames).NameToCode(opcode.CPong)
	if err != nil {
		t.Fatalf("NameToCode: %v", err)
	}
	// The client encrypts its own outgoing traffic with "inbound": both ends
	// call DeriveKeys with the same four blobs, so the session's inbound
	// stream (used server-side to decrypt client->server traffic) carries
	// the identical keystream as the client's own inbound.
	if err := writeFrame(client, clientInbound, code, body); err != nil {
		t.Fatalf("writeFrame: %v", err)
	}

	select {
	case e := <-router.got:
		req, ok := e.(*event.RequestPong)
		if !ok {
			t.Fatalf("got %T, want *event.RequestPong", e)
		}
		if req.Packet.Sequence != 42 {
			t.Fatalf("Sequence = %d, want 42", req.Packet.Sequence)
		}
	case <-time.After(time.Second):
		t.Fatalf("router never received the routed event")
	}

	cancel()
	<-done
}

// TestSessionWritesOutboundResponse checks an event pushed onto the
// session's response channel is framed, enciphered, and written to the
// socket in a form the client can decode.
func TestSessionWritesOutboundResponse(t *testing.T) {
	sess, client, _ := newTestSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		sess.Start(ctx)
		close(done)
	}()

	_, clientOutbound := clientHandshake(t, client)

	deadline := time.After(time.Second)
	for sess.State() != StateRunning {
		select {
		case <-deadline:
			t.Fatalf("session never reached Running")
		case <-time.After(time.Millisecond):
		}
	}

	sess.responseCh <- &event.ResponsePing{ConnID: sess.connID, Packet: &protocol.SPing{Sequence: 5}}

	// The session encrypts outgoing traffic with its own outbound stream;
	// the client decrypts it with its outbound, same-named and
	// keystream-identical since both derived from the same four blobs.
	code, body, err := readFrame(client, clientOutbound)
	if err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	wantCode, _ := opcode.NewFromNames(opcode.DefaultNames).NameToCode(opcode.SPing)
	if code != wantCode {
		t.Fatalf("code = %d, want %d", code, wantCode)
	}
	got := &protocol.SPing{}
	if err := wire.DecodeBody(got, body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Sequence != 5 {
		t.Fatalf("Sequence = %d, want 5", got.Sequence)
	}

	cancel()
	<-done
}

// TestSessionDropConnectionClosesWriteLoop checks a ResponseDropConnection
// on the response channel terminates the session instead of being written
// to the wire.
func TestSessionDropConnectionClosesWriteLoop(t *testing.T) {
	sess, client, _ := newTestSession(t)
	defer client.Close()

	ctx := context.Background()
	done := make(chan struct{})
	go func() {
		sess.Start(ctx)
		close(done)
	}()

	clientHandshake(t, client)

	deadline := time.After(time.Second)
	for sess.State() != StateRunning {
		select {
		case <-deadline:
			t.Fatalf("session never reached Running")
		case <-time.After(time.Millisecond):
		}
	}

	sess.responseCh <- event.ResponseDropConnection{ConnID: sess.connID}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("ResponseDropConnection did not terminate the session")
	}
}

package session

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/netherkeep/gameserver/internal/cipher"
	"github.com/netherkeep/gameserver/internal/ecs"
	"github.com/netherkeep/gameserver/internal/event"
	"github.com/netherkeep/gameserver/internal/opcode"
	"github.com/netherkeep/gameserver/internal/world"
)

// State is one of the session's five lifecycle states.
type State int32

const (
	StateHandshake State = iota
	StateRegistering
	StateRunning
	StateDraining
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "Handshake"
	case StateRegistering:
		return "Registering"
	case StateRunning:
		return "Running"
	case StateDraining:
		return "Draining"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Router delivers an inbound Request event to its target world, applying
// backpressure (blocking on ctx) when that world's queue is full.
type Router func(ctx context.Context, e event.Event) error

// Config holds the per-session tunables the spec exposes through the
// external configuration surface.
type Config struct {
	HandshakeTimeout        time.Duration
	IdleTimeout             time.Duration
	ResponseChannelCapacity int
}

// Session is a per-connection cooperative task: it owns the socket and
// mediates between wire bytes and Events.
type Session struct {
	conn     net.Conn
	opcodes  *opcode.Table
	route    Router
	registry *world.ConnectionRegistry
	cfg      Config
	log      *zap.Logger

	state atomic.Int32

	inbound  *cipher.Stream
	outbound *cipher.Stream

	responseCh chan event.Event
	connID     ecs.EntityID
}

// New constructs a session around an already-accepted connection. Start
// drives it through its full lifecycle.
func New(conn net.Conn, opcodes *opcode.Table, route Router, registry *world.ConnectionRegistry, cfg Config, log *zap.Logger) *Session {
	s := &Session{
		conn:     conn,
		opcodes:  opcodes,
		route:    route,
		registry: registry,
		cfg:      cfg,
		log:      log.With(zap.String("remote", conn.RemoteAddr().String())),
	}
	s.state.Store(int32(StateHandshake))
	return s
}

func (s *Session) State() State { return State(s.state.Load()) }

// Start runs the session's full state machine to completion. It returns
// once the session reaches Closed.
func (s *Session) Start(ctx context.Context) {
	defer s.conn.Close()

	if err := s.handshake(); err != nil {
		s.log.Debug("handshake failed", zap.Error(err))
		s.state.Store(int32(StateClosed))
		return
	}

	if err := s.register(ctx); err != nil {
		s.log.Debug("registration failed", zap.Error(err))
		s.state.Store(int32(StateClosed))
		return
	}

	s.run(ctx)
	s.drainTeardown()
}

func (s *Session) handshake() error {
	s.conn.SetDeadline(time.Now().Add(s.cfg.HandshakeTimeout))
	defer s.conn.SetDeadline(time.Time{})

	inbound, outbound, err := cipher.ServerHandshake(s.conn)
	if err != nil {
		return err
	}
	s.inbound = inbound
	s.outbound = outbound
	return nil
}

func (s *Session) register(ctx context.Context) error {
	s.state.Store(int32(StateRegistering))
	s.responseCh = make(chan event.Event, s.cfg.ResponseChannelCapacity)

	if err := s.route(ctx, event.RequestRegisterConnection{ResponseChannel: s.responseCh}); err != nil {
		return err
	}

	select {
	case ev, ok := <-s.responseCh:
		if !ok {
			return errChannelClosed
		}
		resp, ok := ev.(event.ResponseRegisterConnection)
		if !ok {
			return errChannelClosed
		}
		s.connID = resp.ConnID
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) run(ctx context.Context) {
	s.state.Store(int32(StateRunning))
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Once either loop cancels (or the parent ctx ends), close the socket so
	// a readLoop blocked in a socket read returns and run can finish.
	go func() {
		<-runCtx.Done()
		s.conn.Close()
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.readLoop(runCtx, cancel)
	}()
	go func() {
		defer wg.Done()
		s.writeLoop(runCtx, cancel)
	}()
	wg.Wait()
}

// readLoop decodes framed packets into events and routes them to their
// target world, in the order they were read. Any codec or opcode error is
// per-connection fatal.
func (s *Session) readLoop(ctx context.Context, cancel context.CancelFunc) {
	for {
		if s.cfg.IdleTimeout > 0 {
			s.conn.SetReadDeadline(time.Now().Add(s.cfg.IdleTimeout))
		}
		code, body, err := readFrame(s.conn, s.inbound)
		if err != nil {
			s.log.Debug("read failed, draining", zap.Error(err))
			cancel()
			return
		}

		name, err := s.opcodes.CodeToName(code)
		if err != nil {
			s.log.Debug("unknown opcode, draining", zap.Uint16("code", code), zap.Error(err))
			cancel()
			return
		}

		ev, err := event.FromWire(s.connID, name, body)
		if err != nil {
			s.log.Debug("codec error on inbound packet, draining", zap.String("opcode", string(name)), zap.Error(err))
			cancel()
			return
		}

		if err := s.route(ctx, ev); err != nil {
			cancel()
			return
		}
	}
}

// writeLoop encodes outbound events pulled off the response channel, in
// FIFO order, and writes them to the socket.
func (s *Session) writeLoop(ctx context.Context, cancel context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.responseCh:
			if !ok {
				cancel()
				return
			}
			if _, drop := ev.(event.ResponseDropConnection); drop {
				cancel()
				return
			}
			pe, ok := ev.(event.PacketEvent)
			if !ok {
				continue
			}
			name, body, err := event.ToWire(pe)
			if err != nil {
				s.log.Error("failed to encode outbound packet, dropping response", zap.String("opcode", string(name)), zap.Error(err))
				continue
			}
			code, err := s.opcodes.NameToCode(name)
			if err != nil {
				s.log.Error("no wire code for outbound opcode, dropping response", zap.String("opcode", string(name)))
				continue
			}
			if err := writeFrame(s.conn, s.outbound, code, body); err != nil {
				s.log.Debug("write failed, draining", zap.Error(err))
				cancel()
				return
			}
		}
	}
}

func (s *Session) drainTeardown() {
	s.state.Store(int32(StateDraining))
	if s.registry != nil {
		s.registry.Remove(s.connID)
	}
	if s.responseCh != nil {
		close(s.responseCh)
	}
	s.state.Store(int32(StateClosed))
}

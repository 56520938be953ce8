package connmgr

import (
	"context"

	"go.uber.org/zap"

	"github.com/netherkeep/gameserver/internal/component"
	"github.com/netherkeep/gameserver/internal/ecs"
	"github.com/netherkeep/gameserver/internal/event"
	"github.com/netherkeep/gameserver/internal/protocol"
	"github.com/netherkeep/gameserver/internal/world"
)

// System is the global world's connection-manager system. It owns the
// Connection component store and is the only system that inserts into the
// connection registry; entries are removed by the session on teardown and
// by the world on a slow-consumer drop.
type System struct {
	ecs       *ecs.World
	conns     *ecs.Store[component.Connection]
	validator TicketValidator
	log       *zap.Logger
}

// New builds the system, tracking its Connection store in ecsWorld's
// registry so destroyed entities are cleaned up automatically.
func New(ecsWorld *ecs.World, validator TicketValidator, log *zap.Logger) *System {
	conns := ecs.NewStore[component.Connection]()
	ecsWorld.Registry.Track(conns)
	return &System{ecs: ecsWorld, conns: conns, validator: validator, log: log}
}

func (s *System) Phase() world.Phase { return world.PhaseConnection }

func (s *System) Update(w *world.World) {
	for _, e := range w.Batch() {
		switch ev := e.(type) {
		case event.RequestRegisterConnection:
			s.handleRegister(w, ev)
		case *event.RequestCheckVersion:
			s.handleCheckVersion(w, ev)
		case *event.RequestLoginArbiter:
			s.handleLoginArbiter(w, ev)
		case *event.RequestCanCreateUser:
			s.handleCanCreateUser(w, ev)
		case *event.RequestCheckUserName:
			s.handleCheckUserName(w, ev)
		case *event.RequestCreateUser:
			s.handleCreateUser(w, ev)
		default:
			// Every other event is someone else's concern.
		}
	}
}

func (s *System) handleRegister(w *world.World, ev event.RequestRegisterConnection) {
	id := s.ecs.Entities.Create()
	s.conns.Set(id, component.Connection{Channel: ev.ResponseChannel})
	w.Registry.Insert(id, ev.ResponseChannel)
	s.log.Debug("registered connection", zap.Uint64("connection", uint64(id)))
	w.Emit(event.ResponseRegisterConnection{ConnID: id})
}

func (s *System) handleCheckVersion(w *world.World, ev *event.RequestCheckVersion) {
	connID := ev.ConnID
	if len(ev.Packet.Version) != 2 {
		s.log.Error("check-version: expected 2 version entries", zap.Int("got", len(ev.Packet.Version)))
		w.Emit(&event.ResponseCheckVersion{ConnID: connID, Packet: &protocol.SCheckVersion{Ok: false}})
		return
	}

	conn, ok := s.conns.Get(connID)
	if !ok {
		s.log.Error("check-version: no connection component", zap.Uint64("connection", uint64(connID)))
		w.Emit(&event.ResponseCheckVersion{ConnID: connID, Packet: &protocol.SCheckVersion{Ok: false}})
		return
	}

	conn.VersionChecked = true
	w.Emit(&event.ResponseCheckVersion{ConnID: connID, Packet: &protocol.SCheckVersion{Ok: true}})
	if conn.Verified && conn.VersionChecked {
		s.postInit(w, connID, conn.AccountName)
	}
}

func (s *System) handleLoginArbiter(w *world.World, ev *event.RequestLoginArbiter) {
	connID := ev.ConnID
	conn, ok := s.conns.Get(connID)
	if !ok {
		s.log.Error("login-arbiter: no connection component", zap.Uint64("connection", uint64(connID)))
		w.Emit(rejectLoginArbiter(connID, ev.Packet))
		return
	}

	accepted, _, err := s.validate(ev.Packet)
	if err != nil {
		s.log.Error("login-arbiter: ticket validation failed", zap.Error(err))
	}
	if !accepted {
		w.Emit(rejectLoginArbiter(connID, ev.Packet))
		return
	}

	conn.Verified = true
	conn.AccountName = ev.Packet.MasterAccountName
	w.Emit(acceptLoginArbiter(connID, ev.Packet))
	if conn.Verified && conn.VersionChecked {
		s.postInit(w, connID, conn.AccountName)
	}
}

// handleCanCreateUser always reports availability: the account backend
// that would track used character slots is an external collaborator, out
// of this core's scope, the same stance handleLoginArbiter takes pending
// a real backend.
func (s *System) handleCanCreateUser(w *world.World, ev *event.RequestCanCreateUser) {
	w.Emit(&event.ResponseCanCreateUser{ConnID: ev.ConnID, Packet: &protocol.SCanCreateUser{Ok: true}})
}

// handleCheckUserName always reports the name available, for the same
// reason handleCanCreateUser does: no account backend lives in this core.
func (s *System) handleCheckUserName(w *world.World, ev *event.RequestCheckUserName) {
	w.Emit(&event.ResponseCheckUserName{ConnID: ev.ConnID, Packet: &protocol.SCheckUserName{Available: true}})
}

// handleCreateUser always reports success with a fixed placeholder
// character id: actual character persistence is out of scope per
// spec.md's Non-goals.
func (s *System) handleCreateUser(w *world.World, ev *event.RequestCreateUser) {
	w.Emit(&event.ResponseCreateUser{ConnID: ev.ConnID, Packet: &protocol.SCreateUser{Ok: true, CharacterID: 1}})
}

// validate defers to the configured backend, defaulting to unconditional
// acceptance when none is wired in — the spec's documented stance pending
// a real account/ticket backend.
func (s *System) validate(p *protocol.CLoginArbiter) (ok bool, status int32, err error) {
	if s.validator == nil {
		return true, 1, nil
	}
	return s.validator.Validate(context.Background(), p.MasterAccountName, p.Ticket)
}

func (s *System) postInit(w *world.World, connID ecs.EntityID, accountName string) {
	w.Emit(&event.ResponseLoadingScreenControlInfo{
		ConnID: connID,
		Packet: &protocol.SLoadingScreenControlInfo{CustomScreenEnabled: false},
	})
	w.Emit(&event.ResponseRemainPlayTime{
		ConnID: connID,
		Packet: &protocol.SRemainPlayTime{RemainingMinutes: 0},
	})
	w.Emit(&event.ResponseLoginAccountInfo{
		ConnID: connID,
		Packet: &protocol.SLoginAccountInfo{AccountName: accountName, Privilege: 0},
	})
}

func acceptLoginArbiter(connID ecs.EntityID, p *protocol.CLoginArbiter) *event.ResponseLoginArbiter {
	return &event.ResponseLoginArbiter{
		ConnID: connID,
		Packet: &protocol.SLoginArbiter{
			Success:     true,
			LoginQueue:  false,
			Status:      1,
			Region:      p.Region,
			PvpDisabled: true,
		},
	}
}

func rejectLoginArbiter(connID ecs.EntityID, p *protocol.CLoginArbiter) *event.ResponseLoginArbiter {
	return &event.ResponseLoginArbiter{
		ConnID: connID,
		Packet: &protocol.SLoginArbiter{
			Success:     false,
			LoginQueue:  false,
			Status:      0,
			Region:      p.Region,
			PvpDisabled: false,
		},
	}
}

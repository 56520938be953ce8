package event

import "github.com/netherkeep/gameserver/internal/ecs"

// RequestRegisterConnection is the only event lacking a connection id: a
// session emits it as soon as it is accepted, before an entity exists for
// it. ResponseChannel is the bounded outbound queue the session reads from.
type RequestRegisterConnection struct {
	ResponseChannel chan Event
}

func (RequestRegisterConnection) ConnectionID() (ecs.EntityID, bool) { return 0, false }
func (RequestRegisterConnection) EventTarget() Target                { return TargetGlobal }

// ResponseRegisterConnection tells the session its connection entity id,
// once the connection-manager system has inserted it into the registry.
type ResponseRegisterConnection struct {
	ConnID ecs.EntityID
}

func (e ResponseRegisterConnection) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (ResponseRegisterConnection) EventTarget() Target                  { return TargetConnection }

// ResponseDropConnection instructs the session task to terminate.
type ResponseDropConnection struct {
	ConnID ecs.EntityID
}

func (e ResponseDropConnection) ConnectionID() (ecs.EntityID, bool) { return e.ConnID, true }
func (ResponseDropConnection) EventTarget() Target                  { return TargetConnection }

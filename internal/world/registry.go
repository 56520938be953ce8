// Package world implements the tick-scheduled ECS worlds the Connection
// Manager System (and any future gameplay system) runs in: a bounded
// inbound event queue, a declared-order system runner, and end-of-tick
// dispatch of emitted events to their target.
package world

import (
	"sync"

	"github.com/netherkeep/gameserver/internal/ecs"
	"github.com/netherkeep/gameserver/internal/event"
)

// ConnectionRegistry is the global-world-owned entity id → outbound
// channel mapping. Insertion happens exactly once per entity, before
// ResponseRegisterConnection is emitted; removal happens on teardown. Every
// world looks it up so a Connection-target event emitted anywhere can be
// routed without relaying through the global world's own queue first. Only
// the connection-manager system (which owns registration) inserts; the
// session removes its own entry on teardown, and a world's dispatch removes
// an entry when it drops a slow consumer.
type ConnectionRegistry struct {
	mu   sync.RWMutex
	conn map[ecs.EntityID]chan event.Event
}

// NewConnectionRegistry returns an empty registry.
func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{conn: make(map[ecs.EntityID]chan event.Event)}
}

// Insert registers a connection entity's outbound channel. Must be called
// exactly once per entity.
func (r *ConnectionRegistry) Insert(id ecs.EntityID, ch chan event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conn[id] = ch
}

// Remove deregisters a connection entity. Must be called exactly once,
// on teardown.
func (r *ConnectionRegistry) Remove(id ecs.EntityID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conn, id)
}

// Lookup resolves a connection entity to its outbound channel.
func (r *ConnectionRegistry) Lookup(id ecs.EntityID) (chan event.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.conn[id]
	return ch, ok
}

// Len reports the number of registered connections.
func (r *ConnectionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conn)
}

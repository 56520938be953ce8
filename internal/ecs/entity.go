// Package ecs provides the minimal entity-component primitives the
// connection-manager system (and any future gameplay system) builds on:
// generational entity ids, typed component stores, and a registry for
// bulk teardown when an entity is destroyed.
package ecs

// EntityID packs a generation counter into the high 32 bits and a slot
// index into the low 32 bits. Comparing an EntityID captured before a
// slot was recycled against the pool's current generation for that slot
// is how stale references are detected.
type EntityID uint64

func newEntityID(generation uint32, index uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) generation() uint32 { return uint32(id >> 32) }
func (id EntityID) index() uint32      { return uint32(id) }

type slot struct {
	generation uint32
	alive      bool
}

// EntityPool allocates and recycles entity ids. Destroying an id bumps its
// slot's generation so any previously captured EntityID for that slot
// compares as dead.
type EntityPool struct {
	slots []slot
	free  []uint32
}

// NewEntityPool returns an empty pool.
func NewEntityPool() *EntityPool {
	return &EntityPool{}
}

// Create allocates a fresh entity, reusing a freed slot when one exists.
func (p *EntityPool) Create() EntityID {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[idx].alive = true
		return newEntityID(p.slots[idx].generation, idx)
	}
	idx := uint32(len(p.slots))
	p.slots = append(p.slots, slot{generation: 0, alive: true})
	return newEntityID(0, idx)
}

// Alive reports whether id still refers to a live entity (not destroyed,
// not a stale reference to a recycled slot).
func (p *EntityPool) Alive(id EntityID) bool {
	idx := id.index()
	if int(idx) >= len(p.slots) {
		return false
	}
	s := p.slots[idx]
	return s.alive && s.generation == id.generation()
}

// Destroy retires id's slot and bumps its generation so stale copies of id
// are no longer Alive.
func (p *EntityPool) Destroy(id EntityID) {
	if !p.Alive(id) {
		return
	}
	idx := id.index()
	p.slots[idx].alive = false
	p.slots[idx].generation++
	p.free = append(p.free, idx)
}

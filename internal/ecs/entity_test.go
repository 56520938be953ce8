package ecs

import "testing"

// TestCreateAllocatesDistinctIDs checks fresh allocations never collide and
// start at generation 0.
func TestCreateAllocatesDistinctIDs(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	b := p.Create()
	if a == b {
		t.Fatalf("expected distinct ids, got %d twice", a)
	}
	if a.generation() != 0 || b.generation() != 0 {
		t.Fatalf("fresh entities should start at generation 0: a=%d b=%d", a.generation(), b.generation())
	}
	if !p.Alive(a) || !p.Alive(b) {
		t.Fatalf("freshly created entities must be alive")
	}
}

// TestDestroyInvalidatesStaleReferences checks that a recycled slot bumps
// its generation, so an id captured before destruction compares dead even
// though its index has been reused.
func TestDestroyInvalidatesStaleReferences(t *testing.T) {
	p := NewEntityPool()
	first := p.Create()
	p.Destroy(first)
	if p.Alive(first) {
		t.Fatalf("destroyed id must not be alive")
	}

	second := p.Create()
	if second.index() != first.index() {
		t.Fatalf("expected the freed slot to be reused: first.index=%d second.index=%d", first.index(), second.index())
	}
	if second.generation() == first.generation() {
		t.Fatalf("recycled slot must bump generation: got %d twice", second.generation())
	}
	if p.Alive(first) {
		t.Fatalf("stale id must still read as dead after the slot was recycled")
	}
	if !p.Alive(second) {
		t.Fatalf("the new id for the recycled slot must be alive")
	}
}

// TestDestroyUnknownIsNoop checks destroying an id the pool never issued
// (or already destroyed) does not panic or corrupt the free list.
func TestDestroyUnknownIsNoop(t *testing.T) {
	p := NewEntityPool()
	id := EntityID(0xffff)
	p.Destroy(id) // never created, must be a silent no-op

	real := p.Create()
	p.Destroy(real)
	p.Destroy(real) // double-destroy, must also be a silent no-op

	if len(p.free) != 1 {
		t.Fatalf("free list should contain exactly one slot, got %d", len(p.free))
	}
}

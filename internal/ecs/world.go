package ecs

// World bundles an entity pool with the registry of component stores that
// must be cleaned up when an entity goes away. Destruction is deferred:
// MarkForDestruction only queues an id, and nothing is destroyed until
// FlushDestroyQueue is called. The world scheduler in internal/world does
// not call FlushDestroyQueue.
type World struct {
	Entities *EntityPool
	Registry *Registry

	destroyQueue []EntityID
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{Entities: NewEntityPool(), Registry: NewRegistry()}
}

// MarkForDestruction queues id for destruction at the next FlushDestroyQueue.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue destroys every queued entity's components and retires
// its id.
func (w *World) FlushDestroyQueue() {
	for _, id := range w.destroyQueue {
		w.Registry.RemoveAll(id)
		w.Entities.Destroy(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}

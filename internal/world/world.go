package world

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/netherkeep/gameserver/internal/event"
)

// LocalRouter delivers a Local-target event to whichever local world owns
// it. The default (nil) router just logs a warning — a deployment with no
// local worlds configured never needs one.
type LocalRouter func(e event.Event) bool

// World is one tick-scheduled ECS instance: the global world, or a
// per-region/per-zone local world. All cross-world and cross-connection
// traffic is message passing through Inbound and the connection registry
// — worlds never touch each other's entities directly.
type World struct {
	Name         string
	Inbound      chan event.Event
	Registry     *ConnectionRegistry
	GlobalQueue  chan event.Event // nil on the global world itself
	RouteLocal   LocalRouter
	TickInterval time.Duration

	log     *zap.Logger
	runner  *Runner
	batch   []event.Event
	outbox  []event.Event
}

// New constructs a world with the given bounded inbound queue capacity.
func New(name string, queueCapacity int, tickInterval time.Duration, registry *ConnectionRegistry, log *zap.Logger) *World {
	return &World{
		Name:         name,
		Inbound:      make(chan event.Event, queueCapacity),
		Registry:     registry,
		TickInterval: tickInterval,
		log:          log.With(zap.String("world", name)),
	}
}

// SetSystems installs (and phase-sorts) this world's systems. Must be
// called before Run.
func (w *World) SetSystems(systems ...System) {
	w.runner = NewRunner(systems...)
}

// Emit queues an event produced by a system during the current tick for
// end-of-tick dispatch. Systems never write directly to a channel.
func (w *World) Emit(e event.Event) {
	w.outbox = append(w.outbox, e)
}

// Batch returns the events drained into this world for the tick currently
// executing. Systems read it; they never read Inbound directly.
func (w *World) Batch() []event.Event {
	return w.batch
}

// Send enqueues an inbound event, blocking (cooperatively, via ctx) if the
// queue is full — the backpressure the session's reader applies per the
// concurrency model.
func (w *World) Send(ctx context.Context, e event.Event) error {
	select {
	case w.Inbound <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the fixed-rate tick loop until ctx is cancelled.
func (w *World) Run(ctx context.Context) {
	ticker := time.NewTicker(w.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

// Tick runs exactly one scheduling pass; exported for tests that need
// deterministic control instead of Run's wall-clock ticker.
func (w *World) Tick() {
	w.tick()
}

func (w *World) tick() {
	start := time.Now()

	w.drain()
	if w.runner != nil {
		w.runner.Tick(w)
	}
	w.dispatch()

	if elapsed := time.Since(start); elapsed > 2*w.TickInterval {
		w.log.Warn("tick slippage", zap.Duration("elapsed", elapsed), zap.Duration("interval", w.TickInterval))
	}
}

// drain pulls every event currently queued into this tick's batch without
// blocking; it does not wait for events that arrive mid-tick.
func (w *World) drain() {
	w.batch = w.batch[:0]
	for {
		select {
		case e := <-w.Inbound:
			w.batch = append(w.batch, e)
		default:
			return
		}
	}
}

// dispatch routes every event a system emitted this tick to its target,
// then clears the outbox.
func (w *World) dispatch() {
	for _, e := range w.outbox {
		switch e.EventTarget() {
		case event.TargetConnection:
			w.dispatchToConnection(e)
		case event.TargetGlobal:
			w.dispatchToGlobal(e)
		case event.TargetLocal:
			w.dispatchToLocal(e)
		}
	}
	w.outbox = w.outbox[:0]
}

func (w *World) dispatchToConnection(e event.Event) {
	connID, ok := e.ConnectionID()
	if !ok {
		w.log.Error("connection-targeted event carries no connection id")
		return
	}
	ch, ok := w.Registry.Lookup(connID)
	if !ok {
		w.log.Warn("dropping event for unknown connection", zap.Uint64("connection", uint64(connID)))
		return
	}
	select {
	case ch <- e:
		return
	default:
	}
	// Response channel full: this is a slow consumer. Evict the oldest
	// queued event to guarantee room, per the scheduler's within-one-tick
	// drop guarantee, then deliver a drop instruction instead of e.
	select {
	case <-ch:
	default:
	}
	w.Registry.Remove(connID)
	drop := event.ResponseDropConnection{ConnID: connID}
	select {
	case ch <- drop:
	default:
	}
	w.log.Warn("slow consumer, dropping connection", zap.Uint64("connection", uint64(connID)))
}

func (w *World) dispatchToGlobal(e event.Event) {
	if w.GlobalQueue == nil {
		// We are the global world: the connection-manager system runs
		// here and never needs to re-enqueue to itself within a tick.
		w.log.Error("global-targeted event emitted on the global world itself")
		return
	}
	select {
	case w.GlobalQueue <- e:
	default:
		w.log.Warn("global world queue full, applying backpressure")
		w.GlobalQueue <- e
	}
}

func (w *World) dispatchToLocal(e event.Event) {
	if w.RouteLocal == nil || !w.RouteLocal(e) {
		w.log.Warn("no local world available to route event")
	}
}

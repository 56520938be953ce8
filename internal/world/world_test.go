package world

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/netherkeep/gameserver/internal/ecs"
	"github.com/netherkeep/gameserver/internal/event"
)

// TestSlowConsumerDrop covers spec scenario 6: filling a connection's
// response channel beyond capacity while nothing drains it synthesizes a
// ResponseDropConnection and removes the registry entry, within the same
// dispatch pass (one tick).
func TestSlowConsumerDrop(t *testing.T) {
	registry := NewConnectionRegistry()
	ch := make(chan event.Event, 1)
	connID := ecs.EntityID(42)
	registry.Insert(connID, ch)

	w := New("test", 4, time.Millisecond, registry, zap.NewNop())
	w.Emit(&event.ResponseCheckVersion{ConnID: connID})
	w.Emit(&event.ResponseLoginArbiter{ConnID: connID})
	w.dispatch()

	if _, ok := registry.Lookup(connID); ok {
		t.Fatalf("registry entry should be removed after a slow-consumer drop")
	}

	select {
	case e := <-ch:
		if _, ok := e.(event.ResponseDropConnection); !ok {
			t.Fatalf("channel's surviving event = %T, want event.ResponseDropConnection", e)
		}
	default:
		t.Fatalf("expected a ResponseDropConnection queued on the channel")
	}
}

// TestDrainThenDispatch checks a round trip through Tick: an inbound event
// reaches a system's Batch and an emitted response reaches its target
// connection's channel, all within one Tick call.
func TestDrainThenDispatch(t *testing.T) {
	registry := NewConnectionRegistry()
	connID := ecs.EntityID(7)
	respCh := make(chan event.Event, 4)
	registry.Insert(connID, respCh)

	w := New("test", 4, time.Millisecond, registry, zap.NewNop())
	w.SetSystems(echoSystem{})

	w.Inbound <- &event.ResponseCheckVersion{ConnID: connID}
	w.Tick()

	select {
	case e := <-respCh:
		if _, ok := e.(*event.ResponseCheckVersion); !ok {
			t.Fatalf("got %T, want *event.ResponseCheckVersion", e)
		}
	default:
		t.Fatalf("expected the echoed event to reach the connection's channel")
	}
}

// echoSystem re-emits whatever it receives, to exercise drain -> Update ->
// dispatch without pulling in a real system package.
type echoSystem struct{}

func (echoSystem) Phase() Phase { return PhaseGameplay }
func (echoSystem) Update(w *World) {
	for _, e := range w.Batch() {
		w.Emit(e)
	}
}

package session

import (
	"context"
	"net"

	"go.uber.org/zap"

	"github.com/netherkeep/gameserver/internal/opcode"
	"github.com/netherkeep/gameserver/internal/world"
)

// Server accepts TCP connections and spawns one session task per
// connection.
type Server struct {
	listener net.Listener
	opcodes  *opcode.Table
	route    Router
	registry *world.ConnectionRegistry
	cfg      Config
	log      *zap.Logger
}

// NewServer wraps an already-bound listener.
func NewServer(ln net.Listener, opcodes *opcode.Table, route Router, registry *world.ConnectionRegistry, cfg Config, log *zap.Logger) *Server {
	return &Server{listener: ln, opcodes: opcodes, route: route, registry: registry, cfg: cfg, log: log}
}

// AcceptLoop accepts connections until ctx is cancelled or the listener
// errors. Each accepted connection gets its own session task.
func (srv *Server) AcceptLoop(ctx context.Context) {
	for {
		conn, err := srv.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			srv.log.Error("accept failed", zap.Error(err))
			continue
		}

		go func() {
			sess := New(conn, srv.opcodes, srv.route, srv.registry, srv.cfg, srv.log)
			sess.Start(ctx)
		}()
	}
}

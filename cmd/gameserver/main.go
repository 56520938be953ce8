package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/netherkeep/gameserver/internal/accountstore"
	"github.com/netherkeep/gameserver/internal/config"
	"github.com/netherkeep/gameserver/internal/connmgr"
	"github.com/netherkeep/gameserver/internal/ecs"
	"github.com/netherkeep/gameserver/internal/event"
	"github.com/netherkeep/gameserver/internal/logging"
	"github.com/netherkeep/gameserver/internal/opcode"
	"github.com/netherkeep/gameserver/internal/policy"
	"github.com/netherkeep/gameserver/internal/session"
	"github.com/netherkeep/gameserver/internal/world"
	"github.com/netherkeep/gameserver/internal/worldconfig"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/server.toml"
	if p := os.Getenv("GAMESERVER_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	validator, closeValidator, err := buildValidator(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("build ticket validator: %w", err)
	}
	if closeValidator != nil {
		defer closeValidator()
	}

	opcodes, err := opcode.Load(cfg.Network.OpcodeTablePath)
	if err != nil {
		log.Warn("opcode table not found, falling back to built-in defaults",
			zap.String("path", cfg.Network.OpcodeTablePath))
		opcodes = opcode.NewFromNames(opcode.DefaultNames)
	}

	registry := world.NewConnectionRegistry()
	ecsWorld := ecs.NewWorld()
	connmgrSys := connmgr.New(ecsWorld, validator, log)

	globalWorld := world.New("global", cfg.Network.WorldQueueCapacity, cfg.Network.TickInterval(), registry, log)
	globalWorld.SetSystems(connmgrSys)

	localEntries, err := worldconfig.Load(cfg.Network.WorldsPath)
	if err != nil {
		return fmt.Errorf("load world registry: %w", err)
	}
	locals := make(map[string]*world.World, len(localEntries))
	for _, e := range localEntries {
		w := world.New(e.Name, cfg.Network.WorldQueueCapacity, e.Interval(), registry, log)
		w.GlobalQueue = globalWorld.Inbound
		locals[e.ID] = w
	}
	if len(locals) > 0 {
		// No module yet carries a routing key to pick among local worlds —
		// a single deployed local world is the common case this core ships
		// with, so route every Local-target event there.
		globalWorld.RouteLocal = firstLocalRouter(locals)
	}

	go globalWorld.Run(ctx)
	for _, w := range locals {
		go w.Run(ctx)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Server.IP, cfg.Server.GamePort))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	sessCfg := session.Config{
		HandshakeTimeout:        cfg.Network.HandshakeTimeout(),
		IdleTimeout:             time.Duration(cfg.Network.IdleTicks) * cfg.Network.TickInterval(),
		ResponseChannelCapacity: cfg.Network.SessionChannelCapacity,
	}
	router := func(ctx context.Context, e event.Event) error {
		return globalWorld.Send(ctx, e)
	}

	srv := session.NewServer(ln, opcodes, router, registry, sessCfg, log)
	go srv.AcceptLoop(ctx)

	log.Info("gameserver listening",
		zap.String("addr", ln.Addr().String()),
		zap.Int("local_worlds", len(locals)),
	)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-shutdownCh
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	cancel()
	ln.Close()
	return nil
}

// buildValidator picks the account/ticket backend: Postgres if a DSN is
// configured, a Lua policy script if one is configured, or nil to fall
// back to connmgr's documented default-accept stance.
func buildValidator(ctx context.Context, cfg *config.Config, log *zap.Logger) (connmgr.TicketValidator, func(), error) {
	if cfg.Database.DSN != "" {
		db, err := accountstore.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		if err := accountstore.RunMigrations(ctx, db.Pool); err != nil {
			db.Close()
			return nil, nil, err
		}
		return accountstore.NewTicketRepo(db), db.Close, nil
	}
	if cfg.Policy.ScriptPath != "" {
		v, err := policy.NewLuaValidator(cfg.Policy.ScriptPath)
		if err != nil {
			return nil, nil, err
		}
		return v, v.Close, nil
	}
	return nil, nil, nil
}

// firstLocalRouter routes every Local-target event to an arbitrary, fixed
// local world chosen at startup.
func firstLocalRouter(locals map[string]*world.World) world.LocalRouter {
	var chosen *world.World
	for _, w := range locals {
		chosen = w
		break
	}
	return func(e event.Event) bool {
		if chosen == nil {
			return false
		}
		select {
		case chosen.Inbound <- e:
			return true
		default:
			return false
		}
	}
}

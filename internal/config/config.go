// Package config loads the core's startup configuration from TOML, the
// external collaborator spec.md treats as out of scope but names the
// concrete keys of.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the complete set of configuration the core's bootstrap reads.
type Config struct {
	Server  ServerConfig   `toml:"server"`
	Network NetworkConfig  `toml:"network"`
	Logging LoggingConfig  `toml:"logging"`
	Database DatabaseConfig `toml:"database"`
	Policy  PolicyConfig   `toml:"policy"`
}

// ServerConfig names the listen address.
type ServerConfig struct {
	IP       string `toml:"ip"`
	GamePort uint16 `toml:"game_port"`
}

// NetworkConfig carries the tick- and queue-level tunables spec.md §6
// enumerates. Intervals are plain-int milliseconds on the wire: BurntSushi
// /toml decodes TOML integers into Go fields with no special case for
// time.Duration (it doesn't implement encoding.TextUnmarshaler), so a
// time.Duration field here would silently decode the raw integer as a
// nanosecond count. TickInterval/HandshakeTimeout convert at point of use,
// the same pattern internal/worldconfig.Entry.Interval uses.
type NetworkConfig struct {
	TickIntervalMS         int    `toml:"tick_interval_ms"`
	HandshakeTimeoutMS     int    `toml:"handshake_timeout_ms"`
	SessionChannelCapacity int    `toml:"session_channel_capacity"`
	WorldQueueCapacity     int    `toml:"world_queue_capacity"`
	IdleTicks              int    `toml:"idle_ticks"`
	OpcodeTablePath        string `toml:"opcode_table_path"`
	WorldsPath             string `toml:"worlds_path"`
}

// TickInterval converts TickIntervalMS to a time.Duration.
func (n NetworkConfig) TickInterval() time.Duration {
	return time.Duration(n.TickIntervalMS) * time.Millisecond
}

// HandshakeTimeout converts HandshakeTimeoutMS to a time.Duration.
func (n NetworkConfig) HandshakeTimeout() time.Duration {
	return time.Duration(n.HandshakeTimeoutMS) * time.Millisecond
}

// LoggingConfig selects zap's production vs development presets.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DatabaseConfig is consumed only by the optional Postgres-backed ticket
// validator; a deployment with no account backend leaves DSN empty.
// ConnMaxLifetimeS is seconds, not a time.Duration, for the same reason
// NetworkConfig's fields are plain ints — see its doc comment.
type DatabaseConfig struct {
	DSN              string `toml:"dsn"`
	MaxOpenConns     int    `toml:"max_open_conns"`
	MaxIdleConns     int    `toml:"max_idle_conns"`
	ConnMaxLifetimeS int    `toml:"conn_max_lifetime_s"`
	MigrationsPath   string `toml:"migrations_path"`
}

// ConnMaxLifetime converts ConnMaxLifetimeS to a time.Duration.
func (d DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(d.ConnMaxLifetimeS) * time.Second
}

// PolicyConfig points at the optional Lua login/version policy script.
type PolicyConfig struct {
	ScriptPath string `toml:"script_path"`
}

// Load reads and parses a TOML config file over a defaults()-seeded
// struct, so an absent key falls back to its documented default rather
// than its Go zero value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			IP:       "0.0.0.0",
			GamePort: 2106,
		},
		Network: NetworkConfig{
			TickIntervalMS:         50,
			HandshakeTimeoutMS:     5000,
			SessionChannelCapacity: 64,
			WorldQueueCapacity:     4096,
			IdleTicks:              600,
			OpcodeTablePath:        "config/opcodes.txt",
			WorldsPath:             "config/worlds.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

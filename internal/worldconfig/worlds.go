// Package worldconfig loads the declarative list of local worlds to boot
// alongside the global world.
package worldconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry describes one local world.
type Entry struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	TickInterval int    `yaml:"tick_interval_ms"`
}

type file struct {
	Worlds []Entry `yaml:"worlds"`
}

// Load reads the local-world registry file. A missing file is not an
// error — it means "global world only" — and returns an empty list.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("worldconfig: read %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("worldconfig: parse %s: %w", path, err)
	}
	return f.Worlds, nil
}

// Interval returns the entry's tick interval, defaulting to 50ms if unset.
func (e Entry) Interval() time.Duration {
	if e.TickInterval <= 0 {
		return 50 * time.Millisecond
	}
	return time.Duration(e.TickInterval) * time.Millisecond
}

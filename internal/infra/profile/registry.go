// Package profile holds the packing intensity presets. The registry is
// loaded once at startup and read concurrently without locks afterwards.
package profile

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Registry maps profile names to quantity scaling factors.
type Registry struct {
	factors map[string]float64
}

// Default returns the built-in presets used when no profile file is present.
func Default() *Registry {
	return &Registry{factors: map[string]float64{
		"minimal": 1.0,
		"komfort": 1.2,
		"familie": 1.4,
	}}
}

// Load reads a JSON file mapping profile names to factors. A missing or
// malformed file is not fatal: the built-in defaults are used instead.
func Load(path string, logger *slog.Logger) *Registry {
	log := logger.With("component", "profile.registry")
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Info("profile file not readable, using built-in defaults", "path", path, "error", err)
		return Default()
	}

	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("profile file malformed, using built-in defaults", "path", path, "error", err)
		return Default()
	}

	factors := make(map[string]float64, len(raw))
	for name, factor := range raw {
		if factor < 0 {
			log.Warn("skipping negative profile factor", "profile", name, "factor", factor)
			continue
		}
		factors[name] = factor
	}
	log.Info("profile registry loaded", "path", path, "profiles", len(factors))
	return &Registry{factors: factors}
}

// Factor resolves the scaling factor for a profile name. Unknown names
// resolve to 1.0 rather than failing.
func (r *Registry) Factor(name string) float64 {
	if factor, ok := r.factors[name]; ok {
		return factor
	}
	return 1.0
}

// Package config exposes the host's component configuration file as a
// read-only accessor of named sections. Components parse and validate
// their own section; a missing or malformed file only disables the
// components that depend on it, never the host.
package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

type Sections struct {
	raw map[string]json.RawMessage
}

// Load reads the configuration file at path. Unreadable or malformed
// files are logged and produce an empty accessor.
func Load(path string, log *slog.Logger) Sections {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Component configuration unavailable", "path", path, "error", err)
		return Sections{}
	}
	var raw map[string]json.RawMessage
	if err = json.Unmarshal(data, &raw); err != nil {
		log.Warn("Component configuration malformed", "path", path, "error", err)
		return Sections{}
	}
	return Sections{raw: raw}
}

// FromRaw wraps already-parsed sections; used by tests.
func FromRaw(raw map[string]json.RawMessage) Sections {
	return Sections{raw: raw}
}

// Section returns the raw configuration for a named component.
func (s Sections) Section(name string) (json.RawMessage, bool) {
	raw, ok := s.raw[name]
	return raw, ok
}

package gamedata

import (
	"errors"
	"fmt"
)

// DefaultPresetID names the preset used when none is configured.
const DefaultPresetID = "caverns"

// PresetRegistry holds loaded preset definitions in file order.
type PresetRegistry struct {
	presets []PresetDef
	byID    map[string]int
}

// NewPresetRegistry creates a registry from loaded preset definitions.
// Later duplicates of an ID are ignored.
func NewPresetRegistry(presets []PresetDef) *PresetRegistry {
	registry := &PresetRegistry{
		presets: make([]PresetDef, 0, len(presets)),
		byID:    make(map[string]int, len(presets)),
	}
	for _, p := range presets {
		if _, dup := registry.byID[p.ID]; dup {
			continue
		}
		registry.byID[p.ID] = len(registry.presets)
		registry.presets = append(registry.presets, p)
	}
	return registry
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(presets), nil
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.presets[i]
}

// Lookup is GetByID with an error naming the known presets.
func (r *PresetRegistry) Lookup(id string) (*PresetDef, error) {
	if p := r.GetByID(id); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("unknown preset %q (known: %v)", id, r.IDs())
}

// Next returns the preset after id, wrapping around. An unknown id yields
// the first preset. Returns nil for an empty registry.
func (r *PresetRegistry) Next(id string) *PresetDef {
	if len(r.presets) == 0 {
		return nil
	}
	i, ok := r.byID[id]
	if !ok {
		return &r.presets[0]
	}
	return &r.presets[(i+1)%len(r.presets)]
}

// IDs returns preset identifiers in file order.
func (r *PresetRegistry) IDs() []string {
	ids := make([]string, len(r.presets))
	for i := range r.presets {
		ids[i] = r.presets[i].ID
	}
	return ids
}

// All returns all preset definitions.
func (r *PresetRegistry) All() []PresetDef {
	return r.presets
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.presets)
}

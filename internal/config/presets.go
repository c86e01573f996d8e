package config

import "sort"

// Named run configurations for common toy structures.
var presets = map[string]*Config{
	"minimal": {
		Qubits: 2, Complex: false, Shots: 256,
		TensorSize: 3, Lambda: 1.0, Seed: DefaultSeed,
	},
	"hairpin": {
		Qubits: 4, Complex: true, Shots: 1024,
		TensorSize: 5, Lambda: 1.0, Seed: DefaultSeed,
	},
	"helix": {
		Qubits: 6, Complex: true, Shots: 2048,
		TensorSize: 7, Lambda: 0.8, Seed: DefaultSeed,
	},
	"sheet": {
		Qubits: 8, Complex: true, Shots: 4096,
		TensorSize: 9, Lambda: 1.2, Seed: DefaultSeed,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

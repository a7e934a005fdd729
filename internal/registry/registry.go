// Package registry tracks the sample-source types known to the
// capability-discovery layer.
package registry

import "slices"

// Prober reports whether a source type is currently usable.
// A nil return means available; a non-nil error carries the reason
// (missing hardware, absent driver, and so on).
type Prober func() error

// probers maps source-type identifiers to their availability probes.
var probers = make(map[string]Prober)

// Register records a source type and its availability probe.
// This is called by source packages during initialization (init
// functions).
func Register(sourceType string, probe Prober) {
	probers[sourceType] = probe
}

// Get returns the prober for a source type.
// Returns nil if the source type is not registered.
func Get(sourceType string) Prober {
	return probers[sourceType]
}

// Types returns the registered source-type identifiers, sorted.
func Types() []string {
	out := make([]string, 0, len(probers))
	for name := range probers {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

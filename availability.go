package iqsource

import (
	"github.com/simonhull/iqsource/internal/registry"
)

// SourceType identifies this source to the capability-discovery layer.
const SourceType = "file"

// Usage documents the source argument format for discovery and help
// output.
const Usage = "file:<filename> - filename, raw binary or WAV, e.g. file:./capture.cf123.4.cplx.200000.16tbe"

func init() {
	// A file source has no hardware or driver to probe.
	registry.Register(SourceType, func() error { return nil })
}

// Available reports this source type's identifier and its availability.
// A nil error means available. The probe has no side effects.
func Available() (string, error) {
	if probe := registry.Get(SourceType); probe != nil {
		return SourceType, probe()
	}
	return SourceType, nil
}

// SourceTypes returns the identifiers of every registered source type,
// sorted. Other source packages register themselves the same way this
// one does, from an init function.
func SourceTypes() []string {
	return registry.Types()
}

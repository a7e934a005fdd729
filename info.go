package iqsource

import (
	"github.com/simonhull/iqsource/internal/types"
)

// StreamInfo is an alias to types.StreamInfo.
// Re-exporting from internal/types to keep the public API at the root.
type StreamInfo = types.StreamInfo

// Snapshot is an alias to types.Snapshot.
// Re-exporting from internal/types to keep the public API at the root.
type Snapshot = types.Snapshot

// MetadataOrigin is an alias to types.MetadataOrigin.
// Re-exporting from internal/types to keep the public API at the root.
type MetadataOrigin = types.MetadataOrigin

// Re-export the metadata origins.
const (
	OriginDefaults  = types.OriginDefaults
	OriginFilename  = types.OriginFilename
	OriginContainer = types.OriginContainer
)

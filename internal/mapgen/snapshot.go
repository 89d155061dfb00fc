package mapgen

import "github.com/Ko-stant/levelgen-engine/internal/protocol"

const protocolVersion = "v1"

// Snapshot converts a finished run into the wire format shared by the
// server and the CLI.
func (r *Result) Snapshot(mapID string) protocol.GridSnapshot {
	tiles := make([]int, len(r.Grid.Tiles))
	for i, t := range r.Grid.Tiles {
		tiles[i] = int(t)
	}

	centers := make([]protocol.TilePos, len(r.Regions))
	for i, reg := range r.Regions {
		centers[i] = protocol.TilePos{X: reg.Center.X, Y: reg.Center.Y}
	}

	warnings := make([]string, len(r.Diagnostics.Warnings))
	for i, w := range r.Diagnostics.Warnings {
		warnings[i] = w.String()
	}

	return protocol.GridSnapshot{
		MapID:           mapID,
		Width:           r.Grid.Width,
		Height:          r.Grid.Height,
		Seed:            r.Seed,
		RegionCount:     len(r.Regions),
		MinDistance:     r.Config.MinRegionDistance,
		Tiles:           tiles,
		RegionCenters:   centers,
		Warnings:        warnings,
		UnroutableEdges: r.Diagnostics.UnroutableEdges,
		ProtocolVersion: protocolVersion,
	}
}

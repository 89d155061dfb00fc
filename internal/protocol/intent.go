package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestGenerate asks the server for a new grid. Zero dimensions fall
// back to the server defaults; a nil Seed draws a fresh one.
type RequestGenerate struct {
	Width             int    `json:"width"`
	Height            int    `json:"height"`
	RegionCount       int    `json:"regionCount"`
	MinRegionDistance int    `json:"minRegionDistance"`
	Seed              *int64 `json:"seed,omitempty"`
}

package protocol

type TilePos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GridSnapshot is the finished-grid wire format handed to renderers and
// CLI consumers. Tiles carries the tile codes row-major: empty(0),
// path(1), region(2), regionOuter(3).
type GridSnapshot struct {
	MapID           string    `json:"mapId"`
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	Seed            int64     `json:"seed"`
	RegionCount     int       `json:"regionCount"`
	MinDistance     int       `json:"minRegionDistance"`
	Tiles           []int     `json:"tiles"`
	RegionCenters   []TilePos `json:"regionCenters"`
	Warnings        []string  `json:"warnings"`
	UnroutableEdges int       `json:"unroutableEdges"`
	ProtocolVersion string    `json:"protocolVersion"`
}

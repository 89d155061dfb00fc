package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// GridGenerated announces a fresh grid to connected clients.
type GridGenerated struct {
	Snapshot GridSnapshot `json:"snapshot"`
}

// GenerationFailed reports a rejected regeneration request (bad config or
// insufficient space) without tearing the connection down.
type GenerationFailed struct {
	Error string `json:"error"`
}

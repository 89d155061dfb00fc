package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/Ko-stant/levelgen-engine/internal/mapgen"
	"github.com/Ko-stant/levelgen-engine/internal/metrics"
	"github.com/Ko-stant/levelgen-engine/internal/protocol"
	"github.com/Ko-stant/levelgen-engine/internal/web/views"
	"github.com/Ko-stant/levelgen-engine/internal/ws"
)

func handleIndex(state *serverState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := views.IndexPage(state.current()).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func handleGrid(state *serverState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(state.current()); err != nil {
			log.Printf("failed to encode snapshot: %v", err)
		}
	}
}

// requestConfig merges a generation request with the server defaults.
func requestConfig(req protocol.RequestGenerate, defaults mapgen.Config) mapgen.Config {
	cfg := defaults
	if req.Width > 0 {
		cfg.Width = req.Width
	}
	if req.Height > 0 {
		cfg.Height = req.Height
	}
	if req.RegionCount > 0 {
		cfg.RegionCount = req.RegionCount
	}
	if req.MinRegionDistance > 0 {
		cfg.MinRegionDistance = req.MinRegionDistance
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
		cfg.SeedSet = true
	}
	return cfg
}

func regenerate(state *serverState, hub *ws.Hub, req protocol.RequestGenerate, defaults mapgen.Config) (protocol.GridSnapshot, error) {
	res, err := runGeneration(requestConfig(req, defaults))
	if err != nil {
		return protocol.GridSnapshot{}, err
	}
	snap := state.publish(res)
	log.Printf("regenerated %dx%d grid, seed=%d, %d warnings",
		snap.Width, snap.Height, snap.Seed, len(snap.Warnings))

	out := protocol.PatchEnvelope{
		Sequence: state.nextSequence(),
		Type:     "GridGenerated",
		Payload:  protocol.GridGenerated{Snapshot: snap},
	}
	if b, err := json.Marshal(out); err == nil {
		hub.Broadcast(b)
	}
	return snap, nil
}

func handleGenerate(state *serverState, hub *ws.Hub, cfg serverConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req protocol.RequestGenerate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		snap, err := regenerate(state, hub, req, cfg.Defaults)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	}
}

func handleStream(state *serverState, hub *ws.Hub, cfg serverConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)
		metrics.StreamClients.Set(float64(hub.Count()))

		hello, _ := json.Marshal(protocol.PatchEnvelope{
			Sequence: state.nextSequence(),
			Type:     "GridGenerated",
			Payload:  protocol.GridGenerated{Snapshot: state.current()},
		})
		_ = conn.Write(context.Background(), websocket.MessageText, hello)

		go func(c *websocket.Conn) {
			defer func() {
				hub.Remove(c)
				metrics.StreamClients.Set(float64(hub.Count()))
				_ = c.Close(websocket.StatusNormalClosure, "")
			}()
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				var env protocol.IntentEnvelope
				if err := json.Unmarshal(data, &env); err != nil {
					continue
				}
				switch env.Type {
				case "RequestGenerate":
					var req protocol.RequestGenerate
					if len(env.Payload) > 0 {
						if err := json.Unmarshal(env.Payload, &req); err != nil {
							continue
						}
					}
					if _, err := regenerate(state, hub, req, cfg.Defaults); err != nil {
						fail, _ := json.Marshal(protocol.PatchEnvelope{
							Sequence: state.nextSequence(),
							Type:     "GenerationFailed",
							Payload:  protocol.GenerationFailed{Error: err.Error()},
						})
						_ = c.Write(context.Background(), websocket.MessageText, fail)
					}
				default:
				}
			}
		}(conn)
	}
}

package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sebas/hfpagd/internal/hfp"
	"github.com/sebas/hfpagd/internal/hfpevents"
	"github.com/sebas/hfpagd/internal/registry"
)

// debugServer exposes read-only operational visibility into the
// registry, grounded on the teacher's services/signaling/api server.
type debugServer struct {
	reg    *registry.Manager
	bus    *hfpevents.Bus
	logger *slog.Logger
}

func newDebugServer(reg *registry.Manager, bus *hfpevents.Bus, logger *slog.Logger) *http.Server {
	ds := &debugServer{reg: reg, bus: bus, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/peers", ds.handlePeers)
	mux.HandleFunc("/debug/stats", ds.handleStats)
	mux.HandleFunc("/debug/healthz", ds.handleHealthz)
	return &http.Server{Handler: mux}
}

func (d *debugServer) handlePeers(w http.ResponseWriter, r *http.Request) {
	var views []PeerView
	d.reg.ForEach(func(peer string, m *hfp.Machine) bool {
		stats := m.Stats()
		views = append(views, PeerView{
			Peer:            peer,
			ConnectionState: m.GetConnectionState().String(),
			AudioState:      m.GetAudioState().String(),
			TransitionCount: stats.TransitionCount,
			QueueDepth:      stats.QueueDepth,
			Dump:            m.Dump(),
		})
		return true
	})
	writeJSON(w, views)
}

func (d *debugServer) handleStats(w http.ResponseWriter, r *http.Request) {
	busStats := d.bus.Stats()
	writeJSON(w, StatsView{
		ActivePeers:     d.reg.Count(),
		EventsPublished: busStats.Published,
		EventsDelivered: busStats.Delivered,
	})
}

func (d *debugServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Package registry owns the set of active PeerMachines, keyed by peer
// device address, supplying the Service collaborator surface spec §6
// assumes exists: active-device selection and SCO admission policy
// shared across every bonded peer. Grounded on the teacher's
// dialog.Manager/DialogStore — a concurrency-safe keyed store with
// ForEach/Get/Count/SetOnTerminated — re-keyed from Call-ID to peer
// address.
package registry

import (
	"log/slog"
	"sync"

	"github.com/sebas/hfpagd/internal/hfp"
)

// Store defines the interface a Manager implements, the way the
// teacher's DialogStore documents its Manager's surface for dependency
// injection in tests.
type Store interface {
	Create(peer string) (*hfp.Machine, error)
	Get(peer string) (*hfp.Machine, bool)
	Destroy(peer string)
	List() []string
	Count() int
	ForEach(fn func(peer string, m *hfp.Machine) bool)
	SetOnRemoved(fn func(peer string))
}

// Manager is the default Store implementation and also satisfies
// hfp.Service for every machine it owns.
type Manager struct {
	mu      sync.RWMutex
	peers   map[string]*hfp.Machine
	bonded  map[string]bool
	active  string
	onRemov func(peer string)

	factory func(peer string, events hfp.Publisher) *hfp.Machine
	events  hfp.Publisher
	logger  *slog.Logger

	forceScoAudio bool
}

var _ Store = (*Manager)(nil)
var _ hfp.Service = (*Manager)(nil)

// NewManager constructs an empty Manager. factory builds one Machine
// per peer, wired with whatever native/system collaborators the
// caller's daemon assembled.
func NewManager(factory func(peer string, events hfp.Publisher) *hfp.Machine, events hfp.Publisher, logger *slog.Logger) *Manager {
	return &Manager{
		peers:   make(map[string]*hfp.Machine),
		bonded:  make(map[string]bool),
		factory: factory,
		events:  events,
		logger:  logger,
	}
}

// Bond marks peer as bonded, the precondition OkToAcceptConnection and
// IsBonded check before admitting a connection or an SCO link.
func (r *Manager) Bond(peer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bonded[peer] = true
}

// Unbond removes peer's bonded status.
func (r *Manager) Unbond(peer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bonded, peer)
}

// Create builds and registers a new Machine for peer, or returns the
// existing one if already registered.
func (r *Manager) Create(peer string) (*hfp.Machine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.peers[peer]; ok {
		return m, nil
	}
	m := r.factory(peer, r.events)
	r.peers[peer] = m
	r.logger.Info("registered peer machine", "peer", peer)
	return m, nil
}

// Get retrieves the Machine for peer, if any.
func (r *Manager) Get(peer string) (*hfp.Machine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.peers[peer]
	return m, ok
}

// Destroy stops and removes peer's Machine.
func (r *Manager) Destroy(peer string) {
	r.mu.Lock()
	m, ok := r.peers[peer]
	if ok {
		delete(r.peers, peer)
		if r.active == peer {
			r.active = ""
		}
	}
	cb := r.onRemov
	r.mu.Unlock()
	if ok {
		m.Stop()
		r.logger.Info("removed peer machine", "peer", peer)
		if cb != nil {
			cb(peer)
		}
	}
}

// List returns every currently registered peer address.
func (r *Manager) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	peers := make([]string, 0, len(r.peers))
	for p := range r.peers {
		peers = append(peers, p)
	}
	return peers
}

// Count returns the number of registered machines.
func (r *Manager) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.peers)
}

// ForEach iterates registered machines, stopping early if fn returns
// false.
func (r *Manager) ForEach(fn func(peer string, m *hfp.Machine) bool) {
	r.mu.RLock()
	snapshot := make(map[string]*hfp.Machine, len(r.peers))
	for p, m := range r.peers {
		snapshot[p] = m
	}
	r.mu.RUnlock()
	for p, m := range snapshot {
		if !fn(p, m) {
			return
		}
	}
}

// SetOnRemoved registers a callback invoked after a machine is
// destroyed, mirroring the teacher's SetOnTerminated hook.
func (r *Manager) SetOnRemoved(fn func(peer string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onRemov = fn
}

// SetForceScoAudio toggles the operator override spec §4.6's
// isScoAcceptable() consults.
func (r *Manager) SetForceScoAudio(force bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forceScoAudio = force
}

// The methods below implement hfp.Service.

func (r *Manager) OnConnectionStateChanged(peer string, prev, cur hfp.ConnectionState) {
	r.logger.Debug("connection state changed", "peer", peer, "from", prev.String(), "to", cur.String())
}

func (r *Manager) OnAudioStateChanged(peer string, prev, cur hfp.AudioState) {
	r.logger.Debug("audio state changed", "peer", peer, "from", prev.String(), "to", cur.String())
}

func (r *Manager) GetActiveDevice() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

func (r *Manager) SetActiveDevice(peer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = peer
}

func (r *Manager) OkToAcceptConnection(peer string, isOutgoing bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bonded[peer]
}

func (r *Manager) GetPriority(peer string) int {
	if r.GetActiveDevice() == peer {
		return 100
	}
	return 0
}

func (r *Manager) GetAudioRouteAllowed(peer string) bool {
	return true
}

func (r *Manager) IsInbandRingingEnabled(peer string) bool {
	return true
}

func (r *Manager) GetForceScoAudio() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.forceScoAudio
}

func (r *Manager) RemoveStateMachine(peer string) {
	r.Destroy(peer)
}

func (r *Manager) SendBroadcast(peer string, intent hfp.BroadcastIntent) {
	r.logger.Debug("broadcast", "peer", peer)
}

func (r *Manager) IsBonded(peer string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bonded[peer]
}

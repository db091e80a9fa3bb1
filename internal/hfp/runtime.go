package hfp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// stateDef bundles the enter/exit/process hooks for one PeerState, the
// tagged-variant-plus-dispatch-table approach spec §9 calls out in
// place of per-state struct inheritance.
type stateDef struct {
	// enter returns false if a native collaborator call it made failed;
	// transitionTo then rolls the attempted transition back rather than
	// completing it, per spec §7.
	enter   func(m *Machine) bool
	exit    func(m *Machine)
	process func(m *Machine, msg Message) bool // true if msg was handled
}

// Stats is a point-in-time snapshot of a machine's runtime counters,
// exposed for the daemon's /debug endpoint — grounded on the teacher's
// event.BusStats/GetStats() accessor pattern.
type Stats struct {
	Peer             string
	State            PeerState
	TransitionCount  uint64
	QueueDepth       int
	LastTransitionAt time.Time
}

// Machine is the per-peer control-plane state machine: one goroutine
// drains its own FIFO queue and runs every enter/exit/process hook
// serially, so no field touched only from that goroutine needs a lock.
type Machine struct {
	peer string

	native  NativeInterface
	system  SystemInterface
	service Service
	wake    WakeLock
	events  Publisher

	cfg    Config
	logger *slog.Logger

	stateDefs map[PeerState]stateDef

	// Fields below this line are touched only by the machine's own
	// goroutine once started; no mutex guards them.
	state               PeerState
	prevState           PeerState
	connectingTimestamp time.Time
	audioParams         map[string]string
	speakerVolume       int
	micVolume           int

	virtualCallStarted       bool
	voiceRecognitionStarted  bool
	waitingForVoiceRecogResp bool
	dialingOut               bool

	telephony CallState

	deferredQueue []Message

	timerGen map[MessageKind]int
	timers   map[MessageKind]*time.Timer

	transitionCount uint64
	lastTransition  time.Time

	// Fields below this line are shared across goroutines and guarded
	// by mu: the FIFO queue plus its condition variable, and the
	// defunct flag checked by Send before enqueuing.
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Message
	stopped bool
	defunct bool

	stopOnce sync.Once
	doneCh   chan struct{}
}

// Publisher is the narrow surface internal/hfpevents implements; kept
// here as an interface so hfp never imports hfpevents (it would be a
// cycle — hfpevents only imports hfp's exported types).
type Publisher interface {
	PublishConnectionState(peer string, delta ConnectionStateDelta)
	PublishAudioState(peer string, delta AudioStateDelta)
}

// NewMachine constructs a PeerMachine for peer in StateDisconnected and
// starts its dispatch goroutine.
func NewMachine(peer string, native NativeInterface, system SystemInterface, service Service, wake WakeLock, events Publisher, cfg Config, logger *slog.Logger) *Machine {
	m := &Machine{
		peer:        peer,
		native:      native,
		system:      system,
		service:     service,
		wake:        wake,
		events:      events,
		cfg:         cfg,
		logger:      logger.With("peer", peer),
		state:       StateDisconnected,
		audioParams: make(map[string]string),
		timerGen:    make(map[MessageKind]int),
		timers:      make(map[MessageKind]*time.Timer),
		doneCh:      make(chan struct{}),
	}
	m.cond = sync.NewCond(&m.mu)
	m.stateDefs = m.buildStateDefs()
	go m.run()
	return m
}

// Send enqueues msg for processing by the machine's own goroutine. It
// never blocks on processing; it returns ErrMachineDefunct if the
// machine already aborted after an invariant violation.
func (m *Machine) Send(msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.defunct {
		return fmt.Errorf("%w: peer %s", ErrMachineDefunct, m.peer)
	}
	if m.stopped {
		return fmt.Errorf("hfp: machine for peer %s is stopped", m.peer)
	}
	m.queue = append(m.queue, msg)
	m.cond.Signal()
	return nil
}

// Stop marks the machine stopped, so Send rejects any new message, and
// waits for the dispatch goroutine to exit. Messages already in the
// queue are still dispatched (and may still transition) before it
// exits. Used by the registry on device removal.
func (m *Machine) Stop() {
	m.stopOnce.Do(func() {
		m.mu.Lock()
		m.stopped = true
		m.cond.Signal()
		m.mu.Unlock()
		<-m.doneCh
	})
}

// run is the machine's single dispatch goroutine: pop one message,
// run it through the current state's process hook (or the deferred
// replay), catching any panic so a bug in one machine never brings
// down the rest of the registry (spec §7's "abort the machine"). Once
// a panic has marked the machine defunct, no further message is
// dispatched.
func (m *Machine) run() {
	defer close(m.doneCh)
	for {
		msg, ok := m.next()
		if !ok {
			return
		}
		m.dispatchSafely(msg)
		m.mu.Lock()
		defunct := m.defunct
		m.mu.Unlock()
		if defunct {
			return
		}
	}
}

// next blocks until a message is available or the machine is stopped.
func (m *Machine) next() (Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for len(m.queue) == 0 && !m.stopped {
		m.cond.Wait()
	}
	if len(m.queue) == 0 {
		return Message{}, false
	}
	msg := m.queue[0]
	m.queue = m.queue[1:]
	return msg, true
}

func (m *Machine) dispatchSafely(msg Message) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("invariant violation recovered, machine marked defunct",
				"panic", r, "message_kind", msg.Kind.String())
			m.mu.Lock()
			m.defunct = true
			m.mu.Unlock()
			if m.service != nil {
				m.service.RemoveStateMachine(m.peer)
			}
		}
	}()
	m.dispatch(msg)
}

// dispatch runs msg through the current state's process hook. An
// unhandled message in a state that has no business seeing it is an
// invariant violation per spec §7.
func (m *Machine) dispatch(msg Message) {
	def, ok := m.stateDefs[m.state]
	if !ok {
		panic(fmt.Errorf("%w: no stateDef for %s", ErrInvariantViolation, m.state))
	}
	m.logger.Debug("dispatching message", "state", m.state.String(), "kind", msg.Kind.String())
	if def.process == nil || !def.process(m, msg) {
		panic(fmt.Errorf("%w: state %s cannot handle %s", ErrInvariantViolation, m.state, msg.Kind.String()))
	}
}

// transitionTo moves the machine from its current state to next,
// enforcing the legal-edge table, running exit/enter hooks, publishing
// ordered connection/audio broadcasts, and replaying deferred
// messages. Audio deltas are broadcast before connection deltas, per
// spec §4.2/§5.
func (m *Machine) transitionTo(next PeerState) {
	if !m.state.CanTransitionTo(next) {
		panic(fmt.Errorf("%w: %s -> %s is not a legal edge", ErrInvariantViolation, m.state, next))
	}

	prev := m.state
	prevConn := connectionStateOf(prev)
	prevAudio := audioStateOf(prev)

	if def, ok := m.stateDefs[prev]; ok && def.exit != nil {
		def.exit(m)
	}

	m.prevState = prev
	m.state = next
	m.transitionCount++
	m.lastTransition = time.Now()

	m.logger.Info("state transition", "from_state", prev.String(), "to_state", next.String())

	entered := true
	if def, ok := m.stateDefs[next]; ok && def.enter != nil {
		entered = def.enter(m)
	}

	if !entered {
		// The native collaborator call enter() made failed: spec §7
		// requires no state change take effect, only an identity-pair
		// broadcast — roll back rather than complete the transition.
		m.logger.Warn("enter hook rejected transition, reverting",
			"attempted_state", next.String(), "reverted_to", prev.String())
		m.state = prev
		m.emitIdentityAudioBroadcast()
		m.emitIdentityConnectionBroadcast()
		return
	}

	curConn := connectionStateOf(next)
	curAudio := audioStateOf(next)

	if curAudio != prevAudio || isAudioCompensatingPair(prev, next) {
		delta := AudioStateDelta{Previous: prevAudio, Current: curAudio}
		if m.events != nil {
			m.events.PublishAudioState(m.peer, delta)
		}
		if m.service != nil {
			m.service.OnAudioStateChanged(m.peer, prevAudio, curAudio)
		}
	}
	if curConn != prevConn {
		delta := ConnectionStateDelta{Previous: prevConn, Current: curConn}
		if m.events != nil {
			m.events.PublishConnectionState(m.peer, delta)
		}
		if m.service != nil {
			m.service.OnConnectionStateChanged(m.peer, prevConn, curConn)
		}
	}

	m.replayDeferred()
}

// isAudioCompensatingPair reports whether prev/next is the
// AudioDisconnecting->AudioOn edge, the one case that must still
// broadcast even though audioStateOf collapses both to
// AudioConnectedState — see DESIGN.md's spec §9 Open Question. No
// other pair of distinct states gets this treatment: a transition
// whose audio integer genuinely did not change (e.g.
// Disconnected->Connecting, or AudioOn->AudioDisconnecting) must not
// broadcast an audio delta.
func isAudioCompensatingPair(prev, next PeerState) bool {
	return prev == StateAudioDisconnecting && next == StateAudioOn
}

// emitIdentityConnectionBroadcast publishes a no-op X->X connection
// broadcast, used when a native call failure aborts an attempted
// transition in progress (spec §7).
func (m *Machine) emitIdentityConnectionBroadcast() {
	cur := connectionStateOf(m.state)
	delta := ConnectionStateDelta{Previous: cur, Current: cur}
	if m.events != nil {
		m.events.PublishConnectionState(m.peer, delta)
	}
	if m.service != nil {
		m.service.OnConnectionStateChanged(m.peer, cur, cur)
	}
}

// emitIdentityAudioBroadcast is emitIdentityConnectionBroadcast's
// audio-layer counterpart, emitted first to preserve the
// audio-before-connection ordering normal transitions use.
func (m *Machine) emitIdentityAudioBroadcast() {
	cur := audioStateOf(m.state)
	delta := AudioStateDelta{Previous: cur, Current: cur}
	if m.events != nil {
		m.events.PublishAudioState(m.peer, delta)
	}
	if m.service != nil {
		m.service.OnAudioStateChanged(m.peer, cur, cur)
	}
}

// deferMessage holds msg aside to be replayed, in order, immediately
// after the next successful transition — used by states that must
// finish an in-flight operation (e.g. AudioConnecting) before a
// queued request (e.g. Disconnect) can be considered.
func (m *Machine) deferMessage(msg Message) {
	m.deferredQueue = append(m.deferredQueue, msg)
}

// replayDeferred prepends every deferred message back onto the front
// of the shared queue, preserving their relative order, then clears
// the deferred queue. It must only be called from the machine's own
// goroutine (inside transitionTo).
func (m *Machine) replayDeferred() {
	if len(m.deferredQueue) == 0 {
		return
	}
	replay := m.deferredQueue
	m.deferredQueue = nil

	m.mu.Lock()
	m.queue = append(replay, m.queue...)
	m.cond.Signal()
	m.mu.Unlock()
}

// GetConnectionState returns the public signalling-layer state.
func (m *Machine) GetConnectionState() ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return connectionStateOf(m.state)
}

// GetAudioState returns the public audio-layer state.
func (m *Machine) GetAudioState() AudioState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return audioStateOf(m.state)
}

// Stats returns a snapshot of the machine's runtime counters.
func (m *Machine) Stats() Stats {
	m.mu.Lock()
	depth := len(m.queue)
	m.mu.Unlock()
	return Stats{
		Peer:             m.peer,
		State:            m.state,
		TransitionCount:  m.transitionCount,
		QueueDepth:       depth,
		LastTransitionAt: m.lastTransition,
	}
}

// Dump returns a human-readable snapshot of machine internals for the
// daemon's /debug endpoint, grounded on spec §6's dump() requirement.
func (m *Machine) Dump() string {
	return fmt.Sprintf("peer=%s state=%s prev=%s transitions=%d queue_depth=%d virtual_call=%t vr=%t dialing_out=%t",
		m.peer, m.state, m.prevState, m.transitionCount, len(m.queue),
		m.virtualCallStarted, m.voiceRecognitionStarted, m.dialingOut)
}

// nativeContext returns the context passed to the native
// collaborator's connect/disconnect calls; it is always
// context.Background().
func (m *Machine) nativeContext() context.Context {
	return context.Background()
}

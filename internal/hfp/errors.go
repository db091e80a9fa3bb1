package hfp

import "errors"

// ErrInvariantViolation is the error a PeerMachine panics with (and
// then logs) when it observes a condition the state model declares
// impossible: a transition that is not a legal edge, or a message the
// current state's process hook does not handle. The peer carried by a
// message is not checked against the machine's own peer.
// Per spec §7 this is a programming error, not a recoverable runtime
// condition — the owning machine is marked defunct rather than the
// process crashing.
var ErrInvariantViolation = errors.New("hfp: invariant violation")

// ErrUnknownPeer describes an address with no active PeerMachine.
// Registry lookups do not return it: registry.Manager.Get reports a
// missing peer through its boolean result.
var ErrUnknownPeer = errors.New("hfp: unknown peer")

// ErrMachineDefunct is returned when a message is enqueued on a
// machine that has already aborted after an invariant violation.
var ErrMachineDefunct = errors.New("hfp: machine is defunct")

// ErrNotConnected describes an audio/VR/virtual-call/dial-out
// operation requested while the signalling layer is not in the
// Connected* group. No function returns it: such a request reaching a
// state whose process hook does not handle it is an invariant
// violation.
var ErrNotConnected = errors.New("hfp: peer is not connected")

// ErrScoNotAcceptable describes an incoming or outgoing SCO connection
// attempt that isScoAcceptable() rejects. No function returns it:
// isScoAcceptable reports its decision as a bool, and a rejected
// ConnectAudio request is answered with an AT error response.
var ErrScoNotAcceptable = errors.New("hfp: sco connection not acceptable")

// ErrMalformedAtCommand is returned by the AT-command parser when an
// argument string cannot be split per the comma/quote rules of spec §4.3.
var ErrMalformedAtCommand = errors.New("hfp: malformed at command")

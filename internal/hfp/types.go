// Package hfp implements the per-device control plane of a Hands-Free
// Profile (HFP) Audio Gateway: the state machine that drives one remote
// handsfree peer through its signalling connection, its synchronous
// audio (SCO) connection, and the AT-command dialog of an active
// Service Level Connection.
package hfp

import "fmt"

// PeerState is the state of a PeerMachine. It spans both the
// signalling layer (Disconnected/Connecting/Disconnecting/Connected*)
// and the audio layer nested inside the Connected* group.
type PeerState int

const (
	StateDisconnected PeerState = iota
	StateConnecting
	StateDisconnecting
	StateConnected
	StateAudioConnecting
	StateAudioOn
	StateAudioDisconnecting
)

func (s PeerState) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateConnecting:
		return "Connecting"
	case StateDisconnecting:
		return "Disconnecting"
	case StateConnected:
		return "Connected"
	case StateAudioConnecting:
		return "AudioConnecting"
	case StateAudioOn:
		return "AudioOn"
	case StateAudioDisconnecting:
		return "AudioDisconnecting"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// inConnectedGroup reports whether s belongs to the composite
// Connected* group (signalling is up; the audio sub-machine applies).
func (s PeerState) inConnectedGroup() bool {
	switch s {
	case StateConnected, StateAudioConnecting, StateAudioOn, StateAudioDisconnecting:
		return true
	default:
		return false
	}
}

// ConnectionState is the public, signalling-layer-only view of a
// PeerMachine's state, exposed to the service via GetConnectionState.
type ConnectionState int

const (
	ConnectionDisconnected ConnectionState = iota
	ConnectionConnecting
	ConnectionConnected
	ConnectionDisconnecting
)

func (c ConnectionState) String() string {
	switch c {
	case ConnectionDisconnected:
		return "Disconnected"
	case ConnectionConnecting:
		return "Connecting"
	case ConnectionConnected:
		return "Connected"
	case ConnectionDisconnecting:
		return "Disconnecting"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// connectionStateOf collapses the seven PeerStates to the four-valued
// public connection state.
func connectionStateOf(s PeerState) ConnectionState {
	switch s {
	case StateDisconnected:
		return ConnectionDisconnected
	case StateConnecting:
		return ConnectionConnecting
	case StateDisconnecting:
		return ConnectionDisconnecting
	case StateConnected, StateAudioConnecting, StateAudioOn, StateAudioDisconnecting:
		return ConnectionConnected
	default:
		return ConnectionDisconnected
	}
}

// AudioState is the public, audio-layer-only view of a PeerMachine,
// exposed to the service via GetAudioState.
type AudioState int

const (
	AudioDisconnected AudioState = iota
	AudioConnectingState
	AudioConnectedState
)

func (a AudioState) String() string {
	switch a {
	case AudioDisconnected:
		return "Disconnected"
	case AudioConnectingState:
		return "Connecting"
	case AudioConnectedState:
		return "Connected"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// audioStateOf collapses PeerState to the three-valued public audio
// state. Per the Open Question recorded in DESIGN.md, AudioDisconnecting
// reports AudioConnectedState — the same integer as AudioOn — exactly
// as the source behaviour being preserved does.
func audioStateOf(s PeerState) AudioState {
	switch s {
	case StateAudioConnecting:
		return AudioConnectingState
	case StateAudioOn, StateAudioDisconnecting:
		return AudioConnectedState
	default:
		return AudioDisconnected
	}
}

// MessageKind tags every event flowing through a PeerMachine's queue.
type MessageKind int

const (
	// User requests (from the service-facing API).
	MsgConnect MessageKind = iota
	MsgDisconnect
	MsgConnectAudio
	MsgDisconnectAudio
	MsgVoiceRecognitionStart
	MsgVoiceRecognitionStop
	MsgVirtualCallStart
	MsgVirtualCallStop

	// System events.
	MsgCallStateChanged
	MsgDeviceStateChanged
	MsgIntentScoVolumeChanged
	MsgIntentConnectionAccessReply
	MsgSendClccResponse
	MsgSendVendorResult
	MsgSendBsir

	// Native stack event envelope.
	MsgStackEvent

	// Timers.
	MsgConnectTimeout
	MsgDialingOutTimeout
	MsgStartVrTimeout
	MsgClccRspTimeout
)

func (k MessageKind) String() string {
	switch k {
	case MsgConnect:
		return "Connect"
	case MsgDisconnect:
		return "Disconnect"
	case MsgConnectAudio:
		return "ConnectAudio"
	case MsgDisconnectAudio:
		return "DisconnectAudio"
	case MsgVoiceRecognitionStart:
		return "VoiceRecognitionStart"
	case MsgVoiceRecognitionStop:
		return "VoiceRecognitionStop"
	case MsgVirtualCallStart:
		return "VirtualCallStart"
	case MsgVirtualCallStop:
		return "VirtualCallStop"
	case MsgCallStateChanged:
		return "CallStateChanged"
	case MsgDeviceStateChanged:
		return "DeviceStateChanged"
	case MsgIntentScoVolumeChanged:
		return "IntentScoVolumeChanged"
	case MsgIntentConnectionAccessReply:
		return "IntentConnectionAccessReply"
	case MsgSendClccResponse:
		return "SendClccResponse"
	case MsgSendVendorResult:
		return "SendVendorResult"
	case MsgSendBsir:
		return "SendBsir"
	case MsgStackEvent:
		return "StackEvent"
	case MsgConnectTimeout:
		return "ConnectTimeout"
	case MsgDialingOutTimeout:
		return "DialingOutTimeout"
	case MsgStartVrTimeout:
		return "StartVrTimeout"
	case MsgClccRspTimeout:
		return "ClccRspTimeout"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Message is the normalized, queueable representation of every
// stimulus a PeerMachine reacts to.
type Message struct {
	Kind    MessageKind
	Peer    string
	Payload any
	Arg1    int

	// generation disambiguates timer messages from a prior arming of
	// the same MessageKind; see armTimer/cancelTimer in timers.go.
	generation int
}

// StackEventType enumerates the events the native Bluetooth stack emits.
type StackEventType int

const (
	EventConnectionStateChanged StackEventType = iota
	EventAudioStateChanged
	EventVrStateChanged
	EventAnswerCall
	EventHangupCall
	EventVolumeChanged
	EventDialCall
	EventSendDtmf
	EventNoiseReduction
	EventWbs
	EventAtChld
	EventSubscriberNumberRequest
	EventAtCind
	EventAtCops
	EventAtClcc
	EventUnknownAt
	EventKeyPressed
	EventAtBind
	EventAtBiev
	EventAtCpbs
	EventAtCpbr
	EventAtCscs
)

func (t StackEventType) String() string {
	switch t {
	case EventConnectionStateChanged:
		return "ConnectionStateChanged"
	case EventAudioStateChanged:
		return "AudioStateChanged"
	case EventVrStateChanged:
		return "VrStateChanged"
	case EventAnswerCall:
		return "AnswerCall"
	case EventHangupCall:
		return "HangupCall"
	case EventVolumeChanged:
		return "VolumeChanged"
	case EventDialCall:
		return "DialCall"
	case EventSendDtmf:
		return "SendDtmf"
	case EventNoiseReduction:
		return "NoiseReduction"
	case EventWbs:
		return "Wbs"
	case EventAtChld:
		return "AtChld"
	case EventSubscriberNumberRequest:
		return "SubscriberNumberRequest"
	case EventAtCind:
		return "AtCind"
	case EventAtCops:
		return "AtCops"
	case EventAtClcc:
		return "AtClcc"
	case EventUnknownAt:
		return "UnknownAt"
	case EventKeyPressed:
		return "KeyPressed"
	case EventAtBind:
		return "AtBind"
	case EventAtBiev:
		return "AtBiev"
	case EventAtCpbs:
		return "AtCpbs"
	case EventAtCpbr:
		return "AtCpbr"
	case EventAtCscs:
		return "AtCscs"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Low-level connection/audio indication values carried in a StackEvent's
// IntValue, mirroring the native stack's wire constants.
const (
	ConnStateDisconnected = iota
	ConnStateConnecting
	ConnStateConnected // SLC_CONNECTED
	ConnStateDisconnecting
)

const (
	AudioIndDisconnected = iota
	AudioIndConnecting
	AudioIndConnected
	AudioIndDisconnecting
)

const (
	VrIndStopped = iota
	VrIndStarted
)

// StackEvent is the tagged union the native layer emits.
type StackEvent struct {
	Type        StackEventType
	Peer        string
	IntValue    int
	IntValue2   int
	StringValue string
}

// CallStateValue is the telephony call-progress state.
type CallStateValue int

const (
	CallIdle CallStateValue = iota
	CallIncoming
	CallDialing
	CallAlerting
	CallHeld
	CallActive
)

func (c CallStateValue) String() string {
	switch c {
	case CallIdle:
		return "Idle"
	case CallIncoming:
		return "Incoming"
	case CallDialing:
		return "Dialing"
	case CallAlerting:
		return "Alerting"
	case CallHeld:
		return "Held"
	case CallActive:
		return "Active"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// CallState is a snapshot of telephony call progress, as reported by
// the SystemInterface or synthesized by the virtual-call sub-protocol.
type CallState struct {
	NumActive  int
	NumHeld    int
	State      CallStateValue
	Number     string
	NumberType int
}

package hfp

import "context"

// NativeInterface is the narrow surface a PeerMachine uses to drive the
// native Bluetooth stack: opening/closing the signalling and audio
// links and pushing AT responses/unsolicited results back down to the
// peer. Modeled on the teacher's b2bua.Leg collaborator boundary —
// everything the state machine needs from "the other side" expressed
// as a small interface, never a concrete struct.
type NativeInterface interface {
	ConnectHfp(ctx context.Context, peer string) error
	DisconnectHfp(ctx context.Context, peer string) error
	ConnectAudio(ctx context.Context, peer string) error
	DisconnectAudio(ctx context.Context, peer string) error

	SetVolume(peer string, volType VolumeType, value int) error

	AtResponseOK(peer string) error
	AtResponseError(peer string, code int) error
	AtResponseString(peer string, s string) error

	CindResponse(peer string, status DeviceStatus) error
	ClccResponse(peer string, calls []CallState, final bool) error
	CopsResponse(peer string, operator string) error
	CnumResponse(peer string, number string, numberType int) error

	PhoneStateChange(peer string, cs CallState) error
	StartVoiceRecognition(peer string) error
	StopVoiceRecognition(peer string) error
	SendBsir(peer string, inBandRinging bool) error
	NotifyDeviceStatus(peer string, status DeviceStatus) error
}

// VolumeType distinguishes the two volume channels HFP negotiates.
type VolumeType int

const (
	VolumeSpeaker VolumeType = iota
	VolumeMicrophone
)

// DeviceStatus mirrors the CIND bitmap (service/call/callsetup/
// callheld/signal/roam/battery) a CindResponse reports.
type DeviceStatus struct {
	Service    bool
	Call       bool
	CallSetup  int
	CallHeld   int
	Signal     int
	Roam       bool
	Battery    int
}

// SystemInterface is the narrow surface a PeerMachine uses to query and
// drive telephony and audio-routing state owned by the rest of the
// host process.
type SystemInterface interface {
	IsInCall() bool
	IsRinging() bool
	GetCallState() CallState

	AnswerCall() error
	HangupCall() error
	Dial(number string) error
	SendDtmf(digit byte) error
	ProcessChld(action ChldAction, index int) error
	ListCurrentCalls() []CallState
	QueryPhoneState()

	GetNetworkOperator() string
	GetSubscriberNumber() (number string, numberType int)

	SetBluetoothScoOn(on bool) error
	SetStreamVolume(volType VolumeType, value int) error

	AcquireVoiceRecognitionWakeLock()
	ReleaseVoiceRecognitionWakeLock()

	Phonebook() Phonebook
}

// ChldAction enumerates the +CHLD call-control actions (spec §4.3).
type ChldAction int

const (
	ChldReleaseHeld ChldAction = iota
	ChldReleaseActiveAcceptHeld
	ChldHoldActiveAcceptHeld
	ChldAddHeldToConference
	ChldExplicitCallTransfer
)

// Phonebook is the narrow surface for CPBR/CPBS/CSCS delegation.
type Phonebook interface {
	HandleCpbs(peer string, storage string) error
	HandleCpbr(peer string, from, to int) error
	HandleCscs(peer string, charset string) error
	LastDialledNumber() (string, error)
}

// Service is the collaborator a PeerMachine reports connection/audio
// deltas to, and consults for multi-device policy (active-device
// selection, priority, SCO acceptance). Grounded on the teacher's
// dialog.DialogStore surface, re-keyed to a single peer's perspective.
type Service interface {
	OnConnectionStateChanged(peer string, prev, cur ConnectionState)
	OnAudioStateChanged(peer string, prev, cur AudioState)

	GetActiveDevice() string
	SetActiveDevice(peer string)

	OkToAcceptConnection(peer string, isOutgoing bool) bool
	GetPriority(peer string) int
	GetAudioRouteAllowed(peer string) bool
	IsInbandRingingEnabled(peer string) bool
	GetForceScoAudio() bool

	RemoveStateMachine(peer string)
	SendBroadcast(peer string, intent BroadcastIntent)

	IsBonded(peer string) bool
}

// BroadcastIntent is the payload handed to Service.SendBroadcast,
// mirroring the Android sendBroadcast(Intent) calls the original stack
// makes on every connection/audio state delta. The Machine does not
// call SendBroadcast: it reports each delta through the Service's
// OnConnectionStateChanged/OnAudioStateChanged and through its
// Publisher (internal/hfpevents), which builds its own typed events.
type BroadcastIntent struct {
	Peer            string
	ConnectionState *ConnectionStateDelta
	AudioState      *AudioStateDelta
}

// ConnectionStateDelta captures a signalling-layer state change.
type ConnectionStateDelta struct {
	Previous ConnectionState
	Current  ConnectionState
}

// AudioStateDelta captures an audio-layer state change.
type AudioStateDelta struct {
	Previous AudioState
	Current  AudioState
}

// WakeLock is acquired for the duration the machine waits on a native
// or remote voice-recognition response, grounded on the teacher's
// resource-acquisition style in dialplan.sessionImpl's playback loop.
type WakeLock interface {
	Acquire()
	Release()
}

package hfp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

var errBoom = errors.New("boom")

// fakeNative and fakeSystem are hand-written test doubles in the
// teacher's own style (plain stdlib testing with fakes, no mocking
// library) rather than generated mocks.

type fakeNative struct {
	mu              sync.Mutex
	connectErr      error
	okCount         int
	errorCount      int
	cindCount       int
	clccCount       int
	copsCount       int
	lastVolume      int
	disconnectHfpN  int
	phoneStateCalls []CallState
	lastCind        DeviceStatus
}

func newFakeNative() *fakeNative { return &fakeNative{} }

func (f *fakeNative) ConnectHfp(ctx context.Context, peer string) error { return f.connectErr }
func (f *fakeNative) DisconnectHfp(ctx context.Context, peer string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disconnectHfpN++
	return nil
}
func (f *fakeNative) ConnectAudio(ctx context.Context, peer string) error { return nil }
func (f *fakeNative) DisconnectAudio(ctx context.Context, peer string) error {
	return nil
}

func (f *fakeNative) disconnectHfpCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.disconnectHfpN
}
func (f *fakeNative) SetVolume(peer string, volType VolumeType, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastVolume = value
	return nil
}
func (f *fakeNative) AtResponseOK(peer string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.okCount++
	return nil
}
func (f *fakeNative) AtResponseError(peer string, code int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorCount++
	return nil
}
func (f *fakeNative) AtResponseString(peer string, s string) error { return nil }
func (f *fakeNative) CindResponse(peer string, status DeviceStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cindCount++
	f.lastCind = status
	return nil
}
func (f *fakeNative) ClccResponse(peer string, calls []CallState, final bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clccCount++
	return nil
}
func (f *fakeNative) CopsResponse(peer string, operator string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.copsCount++
	return nil
}
func (f *fakeNative) CnumResponse(peer string, number string, numberType int) error { return nil }
func (f *fakeNative) PhoneStateChange(peer string, cs CallState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.phoneStateCalls = append(f.phoneStateCalls, cs)
	return nil
}
func (f *fakeNative) StartVoiceRecognition(peer string) error                   { return nil }
func (f *fakeNative) StopVoiceRecognition(peer string) error                    { return nil }
func (f *fakeNative) SendBsir(peer string, inBandRinging bool) error            { return nil }
func (f *fakeNative) NotifyDeviceStatus(peer string, status DeviceStatus) error { return nil }

func (f *fakeNative) snapshot() (ok, errs, cind, clcc, cops int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.okCount, f.errorCount, f.cindCount, f.clccCount, f.copsCount
}

func (f *fakeNative) lastCindStatus() DeviceStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastCind
}

type fakePhonebook struct{}

func (fakePhonebook) HandleCpbs(peer string, storage string) error { return nil }
func (fakePhonebook) HandleCpbr(peer string, from, to int) error   { return nil }
func (fakePhonebook) HandleCscs(peer string, charset string) error { return nil }
func (fakePhonebook) LastDialledNumber() (string, error)           { return "5551234", nil }

type fakeSystem struct {
	mu       sync.Mutex
	dialErr  error
	dialedTo string
}

func (s *fakeSystem) IsInCall() bool          { return false }
func (s *fakeSystem) IsRinging() bool         { return false }
func (s *fakeSystem) GetCallState() CallState { return CallState{State: CallIdle} }
func (s *fakeSystem) AnswerCall() error       { return nil }
func (s *fakeSystem) HangupCall() error       { return nil }
func (s *fakeSystem) Dial(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialedTo = number
	return s.dialErr
}
func (s *fakeSystem) SendDtmf(digit byte) error                           { return nil }
func (s *fakeSystem) ProcessChld(action ChldAction, index int) error      { return nil }
func (s *fakeSystem) ListCurrentCalls() []CallState                       { return nil }
func (s *fakeSystem) QueryPhoneState()                                    {}
func (s *fakeSystem) GetNetworkOperator() string                          { return "Fake Telecom" }
func (s *fakeSystem) GetSubscriberNumber() (string, int)                  { return "15551230000", 129 }
func (s *fakeSystem) SetBluetoothScoOn(on bool) error                     { return nil }
func (s *fakeSystem) SetStreamVolume(volType VolumeType, value int) error { return nil }
func (s *fakeSystem) AcquireVoiceRecognitionWakeLock()                    {}
func (s *fakeSystem) ReleaseVoiceRecognitionWakeLock()                    {}
func (s *fakeSystem) Phonebook() Phonebook                                { return fakePhonebook{} }

type fakeService struct {
	mu          sync.Mutex
	active      string
	bonded      map[string]bool
	connDeltas  []ConnectionStateDelta
	audioDeltas []AudioStateDelta
	removed     []string
	okToAccept  bool
}

func newFakeService() *fakeService {
	return &fakeService{bonded: map[string]bool{}, okToAccept: true}
}

func (s *fakeService) bond(peer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bonded[peer] = true
}

func (s *fakeService) OnConnectionStateChanged(peer string, prev, cur ConnectionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connDeltas = append(s.connDeltas, ConnectionStateDelta{Previous: prev, Current: cur})
}
func (s *fakeService) OnAudioStateChanged(peer string, prev, cur AudioState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audioDeltas = append(s.audioDeltas, AudioStateDelta{Previous: prev, Current: cur})
}
func (s *fakeService) GetActiveDevice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
func (s *fakeService) SetActiveDevice(peer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = peer
}
func (s *fakeService) OkToAcceptConnection(peer string, isOutgoing bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.okToAccept
}
func (s *fakeService) GetPriority(peer string) int             { return 0 }
func (s *fakeService) GetAudioRouteAllowed(peer string) bool   { return true }
func (s *fakeService) IsInbandRingingEnabled(peer string) bool { return true }
func (s *fakeService) GetForceScoAudio() bool                  { return false }
func (s *fakeService) RemoveStateMachine(peer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, peer)
}
func (s *fakeService) SendBroadcast(peer string, intent BroadcastIntent) {}
func (s *fakeService) IsBonded(peer string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bonded[peer]
}

type fakeWakeLock struct {
	mu       sync.Mutex
	acquired int
	released int
}

func (w *fakeWakeLock) Acquire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.acquired++
}
func (w *fakeWakeLock) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.released++
}

type fakePublisher struct {
	mu     sync.Mutex
	connN  int
	audioN int
}

func (p *fakePublisher) PublishConnectionState(peer string, delta ConnectionStateDelta) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.connN++
}
func (p *fakePublisher) PublishAudioState(peer string, delta AudioStateDelta) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.audioN++
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMachine(peer string, native *fakeNative, system *fakeSystem, service *fakeService) *Machine {
	return NewMachine(peer, native, system, service, &fakeWakeLock{}, &fakePublisher{}, DefaultConfig(), testLogger())
}

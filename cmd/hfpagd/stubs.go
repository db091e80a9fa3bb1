package main

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sebas/hfpagd/internal/hfp"
)

// stubNative and stubSystem are minimal in-process stand-ins for the
// native Bluetooth stack and telephony/audio subsystems, which spec §1
// scopes as external collaborators. They let the daemon boot and drive
// its state machines end-to-end for integration testing without a real
// radio or telephony stack attached; a production build replaces these
// with drivers over the host's actual Bluetooth/telephony interfaces.

type stubNative struct {
	logger *slog.Logger
}

func newStubNative(logger *slog.Logger) *stubNative { return &stubNative{logger: logger} }

func (n *stubNative) ConnectHfp(ctx context.Context, peer string) error {
	n.logger.Debug("stub native: connect hfp", "peer", peer)
	return nil
}
func (n *stubNative) DisconnectHfp(ctx context.Context, peer string) error {
	n.logger.Debug("stub native: disconnect hfp", "peer", peer)
	return nil
}
func (n *stubNative) ConnectAudio(ctx context.Context, peer string) error {
	n.logger.Debug("stub native: connect audio", "peer", peer)
	return nil
}
func (n *stubNative) DisconnectAudio(ctx context.Context, peer string) error {
	n.logger.Debug("stub native: disconnect audio", "peer", peer)
	return nil
}
func (n *stubNative) SetVolume(peer string, volType hfp.VolumeType, value int) error { return nil }
func (n *stubNative) AtResponseOK(peer string) error                                 { return nil }
func (n *stubNative) AtResponseError(peer string, code int) error                    { return nil }
func (n *stubNative) AtResponseString(peer string, s string) error                   { return nil }
func (n *stubNative) CindResponse(peer string, status hfp.DeviceStatus) error        { return nil }
func (n *stubNative) ClccResponse(peer string, calls []hfp.CallState, final bool) error {
	return nil
}
func (n *stubNative) CopsResponse(peer string, operator string) error           { return nil }
func (n *stubNative) CnumResponse(peer string, number string, t int) error      { return nil }
func (n *stubNative) PhoneStateChange(peer string, cs hfp.CallState) error      { return nil }
func (n *stubNative) StartVoiceRecognition(peer string) error                  { return nil }
func (n *stubNative) StopVoiceRecognition(peer string) error                   { return nil }
func (n *stubNative) SendBsir(peer string, inBandRinging bool) error           { return nil }
func (n *stubNative) NotifyDeviceStatus(peer string, status hfp.DeviceStatus) error { return nil }

type stubPhonebook struct{}

func (stubPhonebook) HandleCpbs(peer string, storage string) error   { return nil }
func (stubPhonebook) HandleCpbr(peer string, from, to int) error     { return nil }
func (stubPhonebook) HandleCscs(peer string, charset string) error   { return nil }
func (stubPhonebook) LastDialledNumber() (string, error)             { return "", nil }

type stubSystem struct {
	mu     sync.Mutex
	logger *slog.Logger
	pb     hfp.Phonebook
}

func newStubSystem(logger *slog.Logger) *stubSystem {
	return &stubSystem{logger: logger, pb: stubPhonebook{}}
}

func (s *stubSystem) IsInCall() bool                    { return false }
func (s *stubSystem) IsRinging() bool                   { return false }
func (s *stubSystem) GetCallState() hfp.CallState       { return hfp.CallState{State: hfp.CallIdle} }
func (s *stubSystem) AnswerCall() error                 { return nil }
func (s *stubSystem) HangupCall() error                 { return nil }
func (s *stubSystem) Dial(number string) error          { return nil }
func (s *stubSystem) SendDtmf(digit byte) error         { return nil }
func (s *stubSystem) ProcessChld(action hfp.ChldAction, index int) error { return nil }
func (s *stubSystem) ListCurrentCalls() []hfp.CallState { return nil }
func (s *stubSystem) QueryPhoneState()                  {}
func (s *stubSystem) GetNetworkOperator() string        { return "hfpagd" }
func (s *stubSystem) GetSubscriberNumber() (string, int) { return "", 0 }
func (s *stubSystem) SetBluetoothScoOn(on bool) error   { return nil }
func (s *stubSystem) SetStreamVolume(volType hfp.VolumeType, value int) error { return nil }
func (s *stubSystem) AcquireVoiceRecognitionWakeLock() {}
func (s *stubSystem) ReleaseVoiceRecognitionWakeLock() {}
func (s *stubSystem) Phonebook() hfp.Phonebook          { return s.pb }

type stubWakeLock struct {
	logger *slog.Logger
}

func (w stubWakeLock) Acquire() { w.logger.Debug("stub wake lock acquired") }
func (w stubWakeLock) Release() { w.logger.Debug("stub wake lock released") }

package hfp

import (
	"testing"
	"time"
)

func TestDialOutConfirmsOkOnlyAfterCallStateDialing(t *testing.T) {
	native := newFakeNative()
	system := &fakeSystem{}
	service := newFakeService()
	service.bond("peer-dial-ok")
	m := newTestMachine("peer-dial-ok", native, system, service)
	defer m.Stop()
	connectMachine(t, m)

	_ = m.Send(Message{Kind: MsgStackEvent, Payload: StackEvent{
		Type: EventDialCall, StringValue: "5557890",
	}})

	// Dial() succeeding must not itself produce an immediate OK; the
	// AT+D response is confirmed only once telephony reports Dialing.
	time.Sleep(50 * time.Millisecond)
	if ok, _, _, _, _ := native.snapshot(); ok != 0 {
		t.Fatalf("expected no OK before call state confirms dialing, got okCount=%d", ok)
	}

	_ = m.Send(Message{Kind: MsgCallStateChanged, Payload: CallState{State: CallDialing, Number: "5557890"}})

	waitForCondition(t, time.Second, func() bool {
		ok, _, _, _, _ := native.snapshot()
		return ok > 0
	})

	if service.GetActiveDevice() != "peer-dial-ok" {
		t.Fatalf("expected dial-out to promote its peer to active device, got %q", service.GetActiveDevice())
	}
}

func TestDialOutTimesOutIfNeverConfirmed(t *testing.T) {
	native := newFakeNative()
	system := &fakeSystem{}
	service := newFakeService()
	service.bond("peer-dial-timeout")
	cfg := DefaultConfig()
	cfg.DialingOutTimeout = 20 * time.Millisecond
	m := NewMachine("peer-dial-timeout", native, system, service, &fakeWakeLock{}, &fakePublisher{}, cfg, testLogger())
	defer m.Stop()
	connectMachine(t, m)

	_ = m.Send(Message{Kind: MsgStackEvent, Payload: StackEvent{
		Type: EventDialCall, StringValue: "5557890",
	}})

	waitForCondition(t, time.Second, func() bool {
		_, errs, _, _, _ := native.snapshot()
		return errs > 0
	})
}

func TestDialOutTerminatesMaskingVirtualCall(t *testing.T) {
	native := newFakeNative()
	system := &fakeSystem{}
	service := newFakeService()
	service.bond("peer-dial-vc")
	m := newTestMachine("peer-dial-vc", native, system, service)
	defer m.Stop()
	connectMachine(t, m)

	_ = m.Send(Message{Kind: MsgVirtualCallStart, Payload: "5551234"})
	waitForCondition(t, time.Second, func() bool {
		native.mu.Lock()
		defer native.mu.Unlock()
		return len(native.phoneStateCalls) >= 3
	})

	_ = m.Send(Message{Kind: MsgStackEvent, Payload: StackEvent{
		Type: EventDialCall, StringValue: "5557890",
	}})

	// handleDialCall's virtual-call teardown issues a fourth,
	// ack-free PhoneStateChange before Dial ever runs.
	waitForCondition(t, time.Second, func() bool {
		native.mu.Lock()
		defer native.mu.Unlock()
		return len(native.phoneStateCalls) >= 4
	})

	_ = m.Send(Message{Kind: MsgStackEvent, Payload: StackEvent{Type: EventAtCind}})
	waitForCondition(t, time.Second, func() bool {
		_, _, cind, _, _ := native.snapshot()
		return cind > 0
	})
	if status := native.lastCindStatus(); status.Call {
		t.Fatalf("expected the virtual call override to be cleared once it was terminated for dial-out, got %+v", status)
	}
}

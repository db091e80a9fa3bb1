package hfp

import (
	"testing"
	"time"
)

// waitForCondition polls a predicate, mirroring the teacher's polling
// pattern for the machine's single-goroutine, message-driven state.
func waitForCondition(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for condition")
}

func connectMachine(t *testing.T, m *Machine) {
	t.Helper()
	_ = m.Send(Message{Kind: MsgConnect})
	waitForConnectionState(t, m, ConnectionConnecting, time.Second)
	_ = m.Send(Message{Kind: MsgStackEvent, Payload: StackEvent{
		Type: EventConnectionStateChanged, IntValue: ConnStateConnected,
	}})
	waitForConnectionState(t, m, ConnectionConnected, time.Second)
}

type refusingSystem struct {
	fakeSystem
	inCall bool
}

func (s *refusingSystem) IsInCall() bool { return s.inCall }

func TestStartVirtualCallRefusedDuringRealCall(t *testing.T) {
	native := newFakeNative()
	system := &refusingSystem{inCall: true}
	service := newFakeService()
	service.bond("peer-vc-refuse")
	m := NewMachine("peer-vc-refuse", native, system, service, &fakeWakeLock{}, &fakePublisher{}, DefaultConfig(), testLogger())
	defer m.Stop()
	connectMachine(t, m)

	_ = m.Send(Message{Kind: MsgVirtualCallStart, Payload: ""})

	waitForCondition(t, time.Second, func() bool {
		_, errs, _, _, _ := native.snapshot()
		return errs > 0
	})
}

func TestStartVirtualCallSendsThreeStepSequence(t *testing.T) {
	native := newFakeNative()
	system := &fakeSystem{}
	service := newFakeService()
	service.bond("peer-vc-seq")
	m := newTestMachine("peer-vc-seq", native, system, service)
	defer m.Stop()
	connectMachine(t, m)

	_ = m.Send(Message{Kind: MsgVirtualCallStart, Payload: "5551234"})

	waitForCondition(t, time.Second, func() bool {
		native.mu.Lock()
		defer native.mu.Unlock()
		return len(native.phoneStateCalls) >= 3
	})

	native.mu.Lock()
	calls := append([]CallState(nil), native.phoneStateCalls...)
	native.mu.Unlock()

	if len(calls) != 3 {
		t.Fatalf("expected exactly 3 synthetic phoneStateChange calls, got %d", len(calls))
	}
	if calls[0].State != CallDialing {
		t.Fatalf("step 1: expected Dialing, got %s", calls[0].State)
	}
	if calls[1].State != CallAlerting {
		t.Fatalf("step 2: expected Alerting, got %s", calls[1].State)
	}
	if calls[2].State != CallIdle || calls[2].NumActive != 1 {
		t.Fatalf("step 3: expected (NumActive=1, Idle), got (%d, %s)", calls[2].NumActive, calls[2].State)
	}
}

func TestCindForcesCallFlagsDuringVirtualCall(t *testing.T) {
	native := newFakeNative()
	system := &fakeSystem{}
	service := newFakeService()
	service.bond("peer-vc-cind")
	m := newTestMachine("peer-vc-cind", native, system, service)
	defer m.Stop()
	connectMachine(t, m)

	_ = m.Send(Message{Kind: MsgVirtualCallStart, Payload: "5551234"})
	waitForCondition(t, time.Second, func() bool {
		native.mu.Lock()
		defer native.mu.Unlock()
		return len(native.phoneStateCalls) >= 3
	})

	// startVirtualCall's own terminal tuple is (1,0,Idle), which on its
	// own wouldn't set call=1 in cindCallSetup/DeviceStatus logic; the
	// override in handleCind must force it anyway.
	_ = m.Send(Message{Kind: MsgStackEvent, Payload: StackEvent{Type: EventAtCind}})

	waitForCondition(t, time.Second, func() bool {
		_, _, cind, _, _ := native.snapshot()
		return cind > 0
	})

	status := native.lastCindStatus()
	if !status.Call || status.CallSetup != 0 {
		t.Fatalf("expected CIND to report call=1, callsetup=0 during a virtual call, got %+v", status)
	}
}

func TestRealCallTerminatesVirtualCall(t *testing.T) {
	native := newFakeNative()
	system := &fakeSystem{}
	service := newFakeService()
	service.bond("peer-vc-real")
	m := newTestMachine("peer-vc-real", native, system, service)
	defer m.Stop()
	connectMachine(t, m)

	_ = m.Send(Message{Kind: MsgVirtualCallStart, Payload: "5551234"})
	waitForCondition(t, time.Second, func() bool {
		native.mu.Lock()
		defer native.mu.Unlock()
		return len(native.phoneStateCalls) >= 3
	})

	_ = m.Send(Message{Kind: MsgCallStateChanged, Payload: CallState{State: CallIncoming}})

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

	status := native.lastCindStatus()
	if status.CallSetup != 1 {
		t.Fatalf("expected the real incoming call (callsetup=1) to take over from the terminated virtual call, got %+v", status)
	}
}

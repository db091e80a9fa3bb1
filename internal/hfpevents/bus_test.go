package hfpevents

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/sebas/hfpagd/internal/hfp"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildSubjectHierarchy(t *testing.T) {
	got := BuildSubject("AA:BB:CC:DD:EE:FF", AudioStateChanged)
	want := "hfp.peers.AA:BB:CC:DD:EE:FF.audio_state_changed"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBusPublishDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus(testLogger())
	var mu sync.Mutex
	var received []any

	bus.Subscribe(func(e any) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e)
	})
	bus.Subscribe(func(e any) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e)
	})

	bus.Publish(NewBuilder().ConnectionState("peer-1", "Disconnected", "Connecting"))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := len(received)
		mu.Unlock()
		if n == 2 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(received))
	}
}

func TestBusHandlerPanicIsolated(t *testing.T) {
	bus := NewBus(testLogger())
	var delivered int32
	var mu sync.Mutex

	bus.Subscribe(func(e any) { panic("boom") })
	bus.Subscribe(func(e any) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	bus.Publish(NewBuilder().AudioState("peer-1", "Disconnected", "Connecting"))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		d := delivered
		mu.Unlock()
		if d == 1 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("expected the non-panicking handler to still receive the event")
}

func TestPublisherAdapterBridgesToBus(t *testing.T) {
	bus := NewBus(testLogger())
	var mu sync.Mutex
	var gotConn, gotAudio bool
	bus.Subscribe(func(e any) {
		mu.Lock()
		defer mu.Unlock()
		switch e.(type) {
		case *ConnectionStateChangedEvent:
			gotConn = true
		case *AudioStateChangedEvent:
			gotAudio = true
		}
	})

	pub := NewPublisher(bus)
	pub.PublishConnectionState("peer-1", hfp.ConnectionStateDelta{Previous: hfp.ConnectionDisconnected, Current: hfp.ConnectionConnecting})
	pub.PublishAudioState("peer-1", hfp.AudioStateDelta{Previous: hfp.AudioDisconnected, Current: hfp.AudioConnectingState})

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		ok := gotConn && gotAudio
		mu.Unlock()
		if ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("expected both connection and audio events to reach the subscriber")
}

package event

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

const deliveryTimeout = 2 * time.Second

func TestBus_PublishSubscribe(t *testing.T) {
	b := New()

	got := make(chan ProcessStarted, 1)
	unsub := Subscribe(b, func(ev ProcessStarted) {
		got <- ev
	})
	defer unsub()

	Publish(b, ProcessStarted{PID: 42, Executable: "/bin/bot", Args: []string{"1", "--method", "Plain Bob Minor"}})

	select {
	case ev := <-got:
		if ev.PID != 42 {
			t.Errorf("PID = %d, want 42", ev.PID)
		}
		if len(ev.Args) != 3 || ev.Args[2] != "Plain Bob Minor" {
			t.Errorf("Args = %v", ev.Args)
		}
	case <-time.After(deliveryTimeout):
		t.Fatal("event not delivered")
	}
}

func TestBus_RoutesByType(t *testing.T) {
	b := New()

	var started atomic.Int32
	exited := make(chan ProcessExited, 1)
	defer Subscribe(b, func(ProcessStarted) { started.Add(1) })()
	defer Subscribe(b, func(ev ProcessExited) { exited <- ev })()

	wantErr := errors.New("signal: terminated")
	Publish(b, ProcessExited{PID: 7, Err: wantErr})

	select {
	case ev := <-exited:
		if ev.PID != 7 || !errors.Is(ev.Err, wantErr) {
			t.Errorf("got %+v", ev)
		}
	case <-time.After(deliveryTimeout):
		t.Fatal("exit event not delivered")
	}
	if n := started.Load(); n != 0 {
		t.Errorf("ProcessStarted handler called %d times, want 0", n)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()

	var calls atomic.Int32
	unsub := Subscribe(b, func(ConfigReloaded) { calls.Add(1) })
	unsub()

	done := make(chan struct{}, 1)
	defer Subscribe(b, func(ConfigReloaded) { done <- struct{}{} })()

	Publish(b, ConfigReloaded{Path: "/tmp/config.toml"})

	select {
	case <-done:
	case <-time.After(deliveryTimeout):
		t.Fatal("event not delivered to remaining subscriber")
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("unsubscribed handler called %d times", n)
	}
}

func TestBus_NilIsNoop(t *testing.T) {
	var b *Bus

	// Should not panic
	Publish(b, ProcessTerminated{PID: 1})
	unsub := Subscribe(b, func(ProcessTerminated) {})
	unsub()
}

func TestEventTypesAreDistinct(t *testing.T) {
	seen := map[uint32]string{}
	for name, ev := range map[string]Event{
		"started":    ProcessStarted{},
		"terminated": ProcessTerminated{},
		"exited":     ProcessExited{},
		"reloaded":   ConfigReloaded{},
	} {
		if prev, ok := seen[ev.Type()]; ok {
			t.Errorf("%s and %s share type %d", name, prev, ev.Type())
		}
		seen[ev.Type()] = name
	}
}
